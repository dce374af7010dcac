package lipi

// Longest keys per romanized scheme, in runes. HK has lRR; IAST keys are
// at most one letter plus a combining-free h (after NFC).
const (
	hkMaxKey   = 3
	iastMaxKey = 2
)

// hkToSLP1 decodes Harvard-Kyoto. Note the z/S swap: HK writes the palatal
// sibilant as z and the retroflex as S, SLP1 the other way around.
var hkToSLP1 = map[string]string{
	"a": "a", "A": "A", "i": "i", "I": "I", "u": "u", "U": "U",
	"R": "f", "RR": "F", "lR": "x", "lRR": "X",
	"e": "e", "ai": "E", "o": "o", "au": "O",
	"M": "M", "H": "H",

	"k": "k", "kh": "K", "g": "g", "gh": "G", "G": "N",
	"c": "c", "ch": "C", "j": "j", "jh": "J", "J": "Y",
	"T": "w", "Th": "W", "D": "q", "Dh": "Q", "N": "R",
	"t": "t", "th": "T", "d": "d", "dh": "D", "n": "n",
	"p": "p", "ph": "P", "b": "b", "bh": "B", "m": "m",
	"y": "y", "r": "r", "l": "l", "v": "v",
	"z": "S", "S": "z", "s": "s", "h": "h",

	"'": "'",
}

var slp1ToHK = map[rune]string{
	'f': "R", 'F': "RR", 'x': "lR", 'X': "lRR",
	'E': "ai", 'O': "au",
	'K': "kh", 'G': "gh", 'N': "G",
	'C': "ch", 'J': "jh", 'Y': "J",
	'w': "T", 'W': "Th", 'q': "D", 'Q': "Dh", 'R': "N",
	'T': "th", 'D': "dh",
	'P': "ph", 'B': "bh",
	'S': "z", 'z': "S",
}

var iastToSLP1 = map[string]string{
	"a": "a", "ā": "A", "i": "i", "ī": "I", "u": "u", "ū": "U",
	"ṛ": "f", "ṝ": "F", "ḷ": "x", "ḹ": "X",
	"e": "e", "ai": "E", "o": "o", "au": "O",
	"ṃ": "M", "ḥ": "H",

	"k": "k", "kh": "K", "g": "g", "gh": "G", "ṅ": "N",
	"c": "c", "ch": "C", "j": "j", "jh": "J", "ñ": "Y",
	"ṭ": "w", "ṭh": "W", "ḍ": "q", "ḍh": "Q", "ṇ": "R",
	"t": "t", "th": "T", "d": "d", "dh": "D", "n": "n",
	"p": "p", "ph": "P", "b": "b", "bh": "B", "m": "m",
	"y": "y", "r": "r", "l": "l", "v": "v",
	"ś": "S", "ṣ": "z", "s": "s", "h": "h",

	"'": "'",
}

var slp1ToIAST = map[rune]string{
	'A': "ā", 'I': "ī", 'U': "ū",
	'f': "ṛ", 'F': "ṝ", 'x': "ḷ", 'X': "ḹ",
	'E': "ai", 'O': "au",
	'M': "ṃ", 'H': "ḥ", '~': "m̐",
	'K': "kh", 'G': "gh", 'N': "ṅ",
	'C': "ch", 'J': "jh", 'Y': "ñ",
	'w': "ṭ", 'W': "ṭh", 'q': "ḍ", 'Q': "ḍh", 'R': "ṇ",
	'T': "th", 'D': "dh",
	'P': "ph", 'B': "bh",
	'S': "ś", 'z': "ṣ",
}

const devaVirama = '्'

// devaConsonants maps a Devanagari consonant to its SLP1 letter. The
// inherent a is supplied by the decoder.
var devaConsonants = map[rune]rune{
	'क': 'k', 'ख': 'K', 'ग': 'g', 'घ': 'G', 'ङ': 'N',
	'च': 'c', 'छ': 'C', 'ज': 'j', 'झ': 'J', 'ञ': 'Y',
	'ट': 'w', 'ठ': 'W', 'ड': 'q', 'ढ': 'Q', 'ण': 'R',
	'त': 't', 'थ': 'T', 'द': 'd', 'ध': 'D', 'न': 'n',
	'प': 'p', 'फ': 'P', 'ब': 'b', 'भ': 'B', 'म': 'm',
	'य': 'y', 'र': 'r', 'ल': 'l', 'व': 'v',
	'श': 'S', 'ष': 'z', 'स': 's', 'ह': 'h',
}

// devaVowels maps independent vowel letters.
var devaVowels = map[rune]rune{
	'अ': 'a', 'आ': 'A', 'इ': 'i', 'ई': 'I', 'उ': 'u', 'ऊ': 'U',
	'ऋ': 'f', 'ॠ': 'F', 'ऌ': 'x', 'ॡ': 'X',
	'ए': 'e', 'ऐ': 'E', 'ओ': 'o', 'औ': 'O',
}

// devaVowelSigns maps dependent vowel signs (matras).
var devaVowelSigns = map[rune]rune{
	'ा': 'A', 'ि': 'i', 'ी': 'I', 'ु': 'u', 'ू': 'U',
	'ृ': 'f', 'ॄ': 'F', 'ॢ': 'x', 'ॣ': 'X',
	'े': 'e', 'ै': 'E', 'ो': 'o', 'ौ': 'O',
}

// devaMarks maps yogavahas, the avagraha, dandas, and digits.
var devaMarks = map[rune]string{
	'ं': "M", 'ः': "H", 'ँ': "~", 'ऽ': "'",
	'।': ".", '॥': "..",
	'०': "0", '१': "1", '२': "2", '३': "3", '४': "4",
	'५': "5", '६': "6", '७': "7", '८': "8", '९': "9",
}

var slp1Consonants = invertRunes(devaConsonants)
var slp1Vowels = invertRunes(devaVowels)
var slp1VowelSigns = invertRunes(devaVowelSigns)

var slp1Marks = map[rune]string{
	'M': "ं", 'H': "ः", '~': "ँ", '\'': "ऽ",
	'0': "०", '1': "१", '2': "२", '3': "३", '4': "४",
	'5': "५", '6': "६", '7': "७", '8': "८", '9': "९",
}

func invertRunes(m map[rune]rune) map[rune]rune {
	out := make(map[rune]rune, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
