// Package lipi converts Sanskrit text between the schemes the demo
// understands: SLP1, Harvard-Kyoto, IAST, and Devanagari.
//
// SLP1 is the pivot. Every conversion decodes the source scheme to SLP1
// and re-encodes from there, so adding a scheme means adding one table
// pair. Conversion is pure and total: runes with no mapping in the source
// scheme are copied through unchanged.
package lipi

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// Converter implements ports.Transliterator over the built-in tables.
// The zero value is ready to use.
type Converter struct{}

// New returns a Converter.
func New() *Converter { return &Converter{} }

// Convert transliterates text between two schemes.
func (*Converter) Convert(text string, from, to vyakarana.Scheme) string {
	if from == to || text == "" {
		return text
	}
	return FromSLP1(ToSLP1(text, from), to)
}

// ToSLP1 decodes text written in the given scheme into SLP1.
func ToSLP1(text string, from vyakarana.Scheme) string {
	switch from {
	case vyakarana.SchemeHK:
		return romanToSLP1(text, hkToSLP1, hkMaxKey)
	case vyakarana.SchemeIAST:
		return romanToSLP1(norm.NFC.String(text), iastToSLP1, iastMaxKey)
	case vyakarana.SchemeDevanagari:
		return devaToSLP1(norm.NFC.String(text))
	default:
		return text
	}
}

// FromSLP1 encodes SLP1 text into the given scheme.
func FromSLP1(text string, to vyakarana.Scheme) string {
	switch to {
	case vyakarana.SchemeHK:
		return slp1ToRoman(text, slp1ToHK)
	case vyakarana.SchemeIAST:
		return slp1ToRoman(text, slp1ToIAST)
	case vyakarana.SchemeDevanagari:
		return slp1ToDeva(text)
	default:
		return text
	}
}

// romanToSLP1 tokenizes a romanized scheme greedily, longest key first.
func romanToSLP1(text string, table map[string]string, maxKey int) string {
	var b strings.Builder
	b.Grow(len(text))

	runes := []rune(text)
	for i := 0; i < len(runes); {
		matched := false
		for n := min(maxKey, len(runes)-i); n > 0; n-- {
			if out, ok := table[string(runes[i:i+n])]; ok {
				b.WriteString(out)
				i += n
				matched = true
				break
			}
		}
		if !matched {
			b.WriteRune(runes[i])
			i++
		}
	}
	return b.String()
}

func slp1ToRoman(text string, table map[rune]string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if out, ok := table[r]; ok {
			b.WriteString(out)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// devaToSLP1 decodes Devanagari. A consonant is held back until the next
// rune decides its vowel: a dependent sign replaces the inherent a, a
// virama suppresses it, anything else confirms it.
func devaToSLP1(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	var pending rune // consonant awaiting its vowel, 0 if none
	flush := func(vowel string) {
		if pending == 0 {
			return
		}
		b.WriteRune(devaConsonants[pending])
		b.WriteString(vowel)
		pending = 0
	}

	for _, r := range text {
		switch {
		case devaConsonants[r] != 0:
			flush("a")
			pending = r
		case devaVowelSigns[r] != 0:
			flush(string(devaVowelSigns[r]))
		case r == devaVirama:
			flush("")
		case devaVowels[r] != 0:
			flush("a")
			b.WriteRune(devaVowels[r])
		case devaMarks[r] != "":
			flush("a")
			b.WriteString(devaMarks[r])
		default:
			flush("a")
			b.WriteRune(r)
		}
	}
	flush("a")
	return b.String()
}

// slp1ToDeva encodes SLP1. A consonant not followed by a vowel takes a
// virama; a following a is absorbed as the inherent vowel.
func slp1ToDeva(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 3)

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if deva, ok := slp1Consonants[r]; ok {
			b.WriteRune(deva)
			if i+1 < len(runes) {
				next := runes[i+1]
				if next == 'a' {
					i++
					continue
				}
				if sign, ok := slp1VowelSigns[next]; ok {
					b.WriteRune(sign)
					i++
					continue
				}
			}
			b.WriteRune(devaVirama)
			continue
		}
		if deva, ok := slp1Vowels[r]; ok {
			b.WriteRune(deva)
			continue
		}
		if deva, ok := slp1Marks[r]; ok {
			b.WriteString(deva)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
