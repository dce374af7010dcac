package prakriya

import "github.com/vyakarana-tools/rupavali/pkg/vyakarana"

// Choice is one selectable surface form paired with the descriptor that
// reproduces it. Picking a Choice is how a form becomes the session's
// active pada.
type Choice struct {
	Text string
	Pada vyakarana.Pada
}

// Cell is one purusha x vacana slot of a paradigm. Choices are ordered as
// the engine emitted them, with duplicate surface texts collapsed (the
// first occurrence keeps its descriptor).
type Cell struct {
	Purusha vyakarana.Purusha
	Vacana  vyakarana.Vacana
	Choices []Choice
}

// Paradigm is the full nine-cell grid for one lakara and prayoga,
// person-major: all three numbers of the prathama purusha, then the
// madhyama, then the uttama.
type Paradigm struct {
	Lakara  vyakarana.Lakara
	Prayoga vyakarana.Prayoga
	Cells   []Cell
}

// Cell returns the slot for a purusha and vacana.
func (p *Paradigm) Cell(purusha vyakarana.Purusha, vacana vyakarana.Vacana) Cell {
	return p.Cells[int(purusha)*len(vyakarana.VacanaOrder)+int(vacana)]
}

// LakaraTable groups the paradigms derived for one lakara, one per
// prayoga that produced a complete grid.
type LakaraTable struct {
	Lakara    vyakarana.Lakara
	Paradigms []Paradigm
}

// KrtForms lists every form one krt affix yields for the chosen dhatu,
// in engine order, duplicates included.
type KrtForms struct {
	Krt     vyakarana.Krt
	Choices []Choice
}
