package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// Filter returns the entries matching a query, in catalog order. The query
// may be typed in Harvard-Kyoto or Devanagari; both readings are normalized
// to SLP1 and an entry matches when its code, clean form, or meaning
// contains either reading as a substring. An empty query returns everything.
func (c *Catalog) Filter(query string) []Dhatu {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.All()
	}

	needles := c.normalize(query)
	var out []Dhatu
	for _, d := range c.entries {
		for _, n := range needles {
			if strings.Contains(d.Code, n) || strings.Contains(d.Clean, n) || strings.Contains(d.Artha, n) {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// Suggest returns the n entries whose clean forms are nearest the query by
// edit distance. It backs the "no results" hint in the dhatu list and is
// never consulted by Filter itself.
func (c *Catalog) Suggest(query string, n int) []Dhatu {
	query = strings.TrimSpace(query)
	if query == "" || n <= 0 {
		return nil
	}

	needles := c.normalize(query)
	type scored struct {
		index    int
		distance int
	}
	ranked := make([]scored, 0, len(c.entries))
	for i, d := range c.entries {
		best := -1
		for _, needle := range needles {
			if dist := levenshtein.ComputeDistance(needle, d.Clean); best < 0 || dist < best {
				best = dist
			}
		}
		ranked = append(ranked, scored{index: i, distance: best})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].distance < ranked[j].distance })
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]Dhatu, 0, n)
	for _, s := range ranked[:n] {
		out = append(out, c.entries[s.index])
	}
	return out
}

// normalize renders the query in SLP1 once per supported input scheme,
// deduplicated. A query that is pure ASCII cannot be Devanagari, so the
// two readings often collapse to one.
func (c *Catalog) normalize(query string) []string {
	var needles []string
	for _, scheme := range vyakarana.FilterSchemes {
		n := c.translit.Convert(query, scheme, vyakarana.SchemeSLP1)
		if n == "" {
			continue
		}
		seen := false
		for _, prev := range needles {
			if prev == n {
				seen = true
				break
			}
		}
		if !seen {
			needles = append(needles, n)
		}
	}
	return needles
}
