package vyakarana

import "fmt"

// Scheme identifies a transliteration scheme for Sanskrit text.
type Scheme int

const (
	// SchemeSLP1 is the internal encoding of the whole module: one ASCII
	// rune per phoneme.
	SchemeSLP1 Scheme = iota
	// SchemeHK is Harvard-Kyoto, the ASCII scheme most people type.
	SchemeHK
	// SchemeIAST is the romanization with diacritics used in print.
	SchemeIAST
	// SchemeDevanagari is the Devanāgarī script.
	SchemeDevanagari
)

var schemeNames = [...]string{"slp1", "hk", "iast", "devanagari"}

// SchemeOrder fixes the order schemes are offered in pickers.
var SchemeOrder = []Scheme{SchemeDevanagari, SchemeIAST, SchemeSLP1, SchemeHK}

// FilterSchemes are the two input schemes a catalog query may be typed in.
var FilterSchemes = []Scheme{SchemeHK, SchemeDevanagari}

// String returns the lowercase name of the scheme.
func (s Scheme) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return schemeNames[s]
}

// Valid reports whether s is one of the defined schemes.
func (s Scheme) Valid() bool { return s >= SchemeSLP1 && s <= SchemeDevanagari }

// ParseScheme resolves a scheme from its lowercase name.
func ParseScheme(name string) (Scheme, error) {
	for i, n := range schemeNames {
		if n == name {
			return Scheme(i), nil
		}
	}
	return SchemeSLP1, fmt.Errorf("unknown scheme %q", name)
}

// Tab identifies one of the demo's views. Tabs are persisted by name, not
// ordinal, so the values are the wire strings.
type Tab string

const (
	TabDhatus   Tab = "dhatus"
	TabTinantas Tab = "tinantas"
	TabKrdantas Tab = "krdantas"
	TabAbout    Tab = "about"
)

// TabOrder fixes the order tabs are displayed in.
var TabOrder = []Tab{TabDhatus, TabTinantas, TabKrdantas, TabAbout}

// Valid reports whether t names a known tab.
func (t Tab) Valid() bool {
	switch t {
	case TabDhatus, TabTinantas, TabKrdantas, TabAbout:
		return true
	}
	return false
}
