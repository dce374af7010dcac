package vyakarana

// Lakara is a tense/mood category of a finite verb.
type Lakara int

const (
	Lat Lakara = iota
	Lit
	Lut
	Lrt
	Let
	Lot
	Lan
	VidhiLin
	AshirLin
	Lun
	Lrn
)

var lakaraNames = [...]string{"law", "liw", "luw", "lfw", "lew", "low", "laN", "viDiliN", "ASIrliN", "luN", "lfN"}

// LakaraOrder fixes the canonical enumeration order of all lakāras.
var LakaraOrder = []Lakara{Lat, Lit, Lut, Lrt, Let, Lot, Lan, VidhiLin, AshirLin, Lun, Lrn}

// ParadigmLakaras is the ordered list of lakāras the paradigm table
// iterates. The Vedic leṭ is omitted: the engines this demo fronts do not
// derive it.
var ParadigmLakaras = []Lakara{Lat, Lit, Lut, Lrt, Lot, Lan, VidhiLin, AshirLin, Lun, Lrn}

// String returns the SLP1 name of the lakāra.
func (l Lakara) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return lakaraNames[l]
}

// Valid reports whether l is one of the defined lakāras.
func (l Lakara) Valid() bool { return l >= Lat && l <= Lrn }

// Prayoga is the grammatical voice (diathesis) of a derivation.
type Prayoga int

const (
	Kartari Prayoga = iota
	Karmani
	Bhave
)

var prayogaNames = [...]string{"kartari", "karmaRi", "BAve"}

// PrayogaOrder fixes the canonical enumeration order of the prayogas.
var PrayogaOrder = []Prayoga{Kartari, Karmani, Bhave}

// ParadigmPrayogas is the ordered voice list the paradigm table iterates
// when no explicit prayoga option restricts it. Bhāve merges with karmaṇi
// for every dhatu the demo carries, so it is not enumerated separately.
var ParadigmPrayogas = []Prayoga{Kartari, Karmani}

// String returns the SLP1 name of the prayoga.
func (p Prayoga) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return prayogaNames[p]
}

// Valid reports whether p is one of the defined prayogas.
func (p Prayoga) Valid() bool { return p >= Kartari && p <= Bhave }

// Purusha is the grammatical person of a finite verb.
type Purusha int

const (
	Prathama Purusha = iota
	Madhyama
	Uttama
)

var purushaNames = [...]string{"praTama", "maDyama", "uttama"}

// PurushaOrder fixes the row order of a paradigm grid (person-major).
var PurushaOrder = []Purusha{Prathama, Madhyama, Uttama}

// String returns the SLP1 name of the puruṣa.
func (p Purusha) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return purushaNames[p]
}

// Valid reports whether p is one of the defined puruṣas.
func (p Purusha) Valid() bool { return p >= Prathama && p <= Uttama }

// Vacana is the grammatical number of a derivation.
type Vacana int

const (
	Eka Vacana = iota
	Dvi
	Bahu
)

var vacanaNames = [...]string{"eka", "dvi", "bahu"}

// VacanaOrder fixes the column order of a paradigm grid.
var VacanaOrder = []Vacana{Eka, Dvi, Bahu}

// String returns the SLP1 name of the vacana.
func (v Vacana) String() string {
	if !v.Valid() {
		return "unknown"
	}
	return vacanaNames[v]
}

// Valid reports whether v is one of the defined vacanas.
func (v Vacana) Valid() bool { return v >= Eka && v <= Bahu }

// DhatuPada is the subject-voice of a conjugation: whether the dhatu takes
// parasmaipada or ātmanepada endings. It is optional on a derivation
// request; unset means "whatever the dhatu allows".
type DhatuPada int

const (
	Parasmaipada DhatuPada = iota
	Atmanepada
)

var dhatuPadaNames = [...]string{"parasmEpada", "Atmanepada"}

// DhatuPadaOrder fixes the canonical enumeration order of the padas.
var DhatuPadaOrder = []DhatuPada{Parasmaipada, Atmanepada}

// String returns the SLP1 name of the pada.
func (p DhatuPada) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return dhatuPadaNames[p]
}

// Valid reports whether p is one of the defined padas.
func (p DhatuPada) Valid() bool { return p == Parasmaipada || p == Atmanepada }

// Sanadi is a derivational affix class inserted between the dhatu and its
// endings: desiderative, intensive, intensive-with-elision, or causative.
type Sanadi int

const (
	San Sanadi = iota
	Yan
	YanLuk
	Ric
)

var sanadiNames = [...]string{"san", "yaN", "yaNluk", "Ric"}

// SanadiOrder fixes the canonical enumeration order of the sanādi affixes.
var SanadiOrder = []Sanadi{San, Yan, YanLuk, Ric}

// String returns the SLP1 name of the sanādi affix.
func (s Sanadi) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return sanadiNames[s]
}

// Valid reports whether s is one of the defined sanādi affixes.
func (s Sanadi) Valid() bool { return s >= San && s <= Ric }

// Krt is a kṛt-pratyaya: an affix that derives a nominal, participle, or
// indeclinable from a dhatu. The demo carries the subset below; ordinals
// are stable and follow KrtOrder.
type Krt int

const (
	KrtGaY Krt = iota
	KrtLyuw
	KrtRvul
	KrtTfc
	KrtTavya
	KrtAnIyar
	KrtYat
	KrtRyat
	KrtKta
	KrtKtavatu
	KrtSatf
	KrtSAnac
	KrtKtvA
	KrtTumun
)

var krtNames = [...]string{
	"GaY", "lyuw", "Rvul", "tfc",
	"tavya", "anIyar", "yat", "Ryat", "kta", "ktavatu", "Satf", "SAnac",
	"ktvA", "tumun",
}

// KrtOrder fixes the canonical enumeration order of the demo's kṛt affixes.
var KrtOrder = []Krt{
	KrtGaY, KrtLyuw, KrtRvul, KrtTfc,
	KrtTavya, KrtAnIyar, KrtYat, KrtRyat, KrtKta, KrtKtavatu, KrtSatf, KrtSAnac,
	KrtKtvA, KrtTumun,
}

// The three ordered affix groups the krdanta view displays. Group
// membership mirrors the original demo: action nouns and agent nouns,
// then participles, then indeclinables.
var (
	NominalKrts    = []Krt{KrtGaY, KrtLyuw, KrtRvul, KrtTfc}
	ParticipleKrts = []Krt{KrtTavya, KrtAnIyar, KrtYat, KrtRyat, KrtKta, KrtKtavatu, KrtSatf, KrtSAnac}
	AvyayaKrts     = []Krt{KrtKtvA, KrtTumun}
)

// String returns the SLP1 name of the affix (its upadeśa form with
// anubandha letters, e.g. "GaY", "ktvA").
func (k Krt) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return krtNames[k]
}

// Valid reports whether k is one of the defined kṛt affixes.
func (k Krt) Valid() bool { return k >= KrtGaY && k <= KrtTumun }

// Upasargas is the traditional ordered list of preverbs offered by the
// option pickers. The upasarga option itself is free text; the engine is
// the authority on what it accepts.
var Upasargas = []string{
	"pra", "parA", "apa", "sam", "anu", "ava", "nis", "nir", "dus", "dur",
	"vi", "AN", "ni", "aDi", "api", "ati", "su", "ud", "aBi", "prati",
	"pari", "upa",
}
