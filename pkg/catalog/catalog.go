// Package catalog loads and indexes the dhatupatha: the fixed list of
// verb roots the demo offers. The catalog is immutable after Load, and
// every listing preserves the original file order.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/vyakarana-tools/rupavali/internal/lipi"
	"github.com/vyakarana-tools/rupavali/pkg/ports"
)

// ErrNotFound is returned when a dhatu code is not in the catalog.
var ErrNotFound = errors.New("dhatu not found")

// Dhatu is one dhatupatha entry. Aupadeshika is the root exactly as the
// source file spells it, svara marks included; Clean is the same form with
// the accent marks stripped, which is what searches and engine requests
// use. All text is SLP1.
type Dhatu struct {
	Code        string
	Aupadeshika string
	Clean       string
	Artha       string
}

// Catalog is the loaded dhatupatha.
type Catalog struct {
	entries  []Dhatu
	byCode   map[string]int
	translit ports.Transliterator
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithTransliterator overrides the transliterator used to normalize
// filter queries. The default is the built-in converter.
func WithTransliterator(t ports.Transliterator) Option {
	return func(c *Catalog) {
		if t != nil {
			c.translit = t
		}
	}
}

var svaraStripper = strings.NewReplacer(`\`, "", "^", "")

// Load reads a dhatupatha TSV (columns code, dhatu, artha; header row
// present). Blank lines and repeated headers are skipped. Text is
// NFC-normalized on the way in.
func Load(r io.Reader, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		byCode:   make(map[string]int),
		translit: lipi.New(),
	}
	for _, opt := range opts {
		opt(c)
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		row := strings.TrimRight(norm.NFC.String(scanner.Text()), "\r\n")
		if strings.TrimSpace(row) == "" {
			continue
		}

		fields := strings.Split(row, "\t")
		if fields[0] == "code" {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("dhatupatha line %d: want at least 2 columns, got %d", line, len(fields))
		}

		d := Dhatu{
			Code:        strings.TrimSpace(fields[0]),
			Aupadeshika: strings.TrimSpace(fields[1]),
		}
		if len(fields) > 2 {
			d.Artha = strings.TrimSpace(fields[2])
		}
		d.Clean = svaraStripper.Replace(d.Aupadeshika)

		if d.Code == "" || d.Aupadeshika == "" {
			return nil, fmt.Errorf("dhatupatha line %d: empty code or dhatu", line)
		}
		if _, dup := c.byCode[d.Code]; dup {
			return nil, fmt.Errorf("dhatupatha line %d: duplicate code %s", line, d.Code)
		}

		c.byCode[d.Code] = len(c.entries)
		c.entries = append(c.entries, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dhatupatha: %w", err)
	}
	if len(c.entries) == 0 {
		return nil, errors.New("dhatupatha has no entries")
	}
	return c, nil
}

// Get looks a dhatu up by its code.
func (c *Catalog) Get(code string) (Dhatu, error) {
	i, ok := c.byCode[code]
	if !ok {
		return Dhatu{}, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	return c.entries[i], nil
}

// All returns every entry in file order. The slice is a copy.
func (c *Catalog) All() []Dhatu {
	out := make([]Dhatu, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }
