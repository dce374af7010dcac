package ports

import "github.com/vyakarana-tools/rupavali/pkg/vyakarana"

// Transliterator converts Sanskrit text between encoding schemes. Convert
// is pure and total: runes with no mapping in the source scheme pass
// through unchanged, so it never fails.
type Transliterator interface {
	Convert(text string, from, to vyakarana.Scheme) string
}
