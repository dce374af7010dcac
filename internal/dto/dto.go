// Package dto holds the wire representations the HTTP and MCP surfaces
// share, so both answer with the same JSON shapes. Axis values travel as
// SLP1 names; pada descriptors as their canonical JSON envelope, which a
// client can feed straight back into the activePada parameter.
package dto

import (
	"encoding/json"

	"github.com/vyakarana-tools/rupavali/pkg/catalog"
	"github.com/vyakarana-tools/rupavali/pkg/prakriya"
	"github.com/vyakarana-tools/rupavali/pkg/session"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

type Dhatu struct {
	Code        string `json:"code"`
	Aupadeshika string `json:"aupadeshika"`
	Clean       string `json:"clean"`
	Artha       string `json:"artha,omitempty"`
}

// DhatuList answers catalog searches. Suggestions ride along only when
// Dhatus came up empty for a non-empty query.
type DhatuList struct {
	Dhatus      []Dhatu `json:"dhatus"`
	Suggestions []Dhatu `json:"suggestions,omitempty"`
}

type Choice struct {
	Text string          `json:"text"`
	Pada json.RawMessage `json:"pada,omitempty"`
}

type Cell struct {
	Purusha string   `json:"purusha"`
	Vacana  string   `json:"vacana"`
	Choices []Choice `json:"choices"`
}

type Paradigm struct {
	Lakara  string `json:"lakara"`
	Prayoga string `json:"prayoga"`
	Cells   []Cell `json:"cells"`
}

type LakaraTable struct {
	Lakara    string     `json:"lakara"`
	Paradigms []Paradigm `json:"paradigms"`
}

type KrtForms struct {
	Krt     string   `json:"krt"`
	Choices []Choice `json:"choices"`
}

type Step struct {
	Rule   string `json:"rule"`
	Sutra  string `json:"sutra,omitempty"`
	Result string `json:"result"`
}

type Prakriya struct {
	Text  string `json:"text"`
	Steps []Step `json:"steps"`
}

type Options struct {
	Prayoga  string `json:"prayoga,omitempty"`
	Pada     string `json:"pada,omitempty"`
	Sanadi   string `json:"sanadi,omitempty"`
	Upasarga string `json:"upasarga,omitempty"`
}

type State struct {
	Tab        string                `json:"tab"`
	Dhatu      *Dhatu                `json:"dhatu,omitempty"`
	ActivePada json.RawMessage       `json:"activePada,omitempty"`
	Display    *vyakarana.Derivation `json:"display,omitempty"`
	Options    Options               `json:"options"`
	Script     string                `json:"script"`
	Locator    string                `json:"locator"`
}

func FromDhatu(d catalog.Dhatu) Dhatu {
	return Dhatu{
		Code:        d.Code,
		Aupadeshika: d.Aupadeshika,
		Clean:       d.Clean,
		Artha:       d.Artha,
	}
}

func FromDhatus(dhatus []catalog.Dhatu) []Dhatu {
	out := make([]Dhatu, len(dhatus))
	for i, d := range dhatus {
		out[i] = FromDhatu(d)
	}
	return out
}

func FromChoices(choices []prakriya.Choice) []Choice {
	out := make([]Choice, len(choices))
	for i, c := range choices {
		out[i] = Choice{Text: c.Text}
		if data, err := vyakarana.MarshalPada(c.Pada); err == nil {
			out[i].Pada = data
		}
	}
	return out
}

func FromParadigm(p prakriya.Paradigm) Paradigm {
	out := Paradigm{
		Lakara:  p.Lakara.String(),
		Prayoga: p.Prayoga.String(),
		Cells:   make([]Cell, len(p.Cells)),
	}
	for i, cell := range p.Cells {
		out.Cells[i] = Cell{
			Purusha: cell.Purusha.String(),
			Vacana:  cell.Vacana.String(),
			Choices: FromChoices(cell.Choices),
		}
	}
	return out
}

func FromLakaraTables(tables []prakriya.LakaraTable) []LakaraTable {
	out := make([]LakaraTable, len(tables))
	for i, table := range tables {
		mapped := LakaraTable{
			Lakara:    table.Lakara.String(),
			Paradigms: make([]Paradigm, len(table.Paradigms)),
		}
		for j, p := range table.Paradigms {
			mapped.Paradigms[j] = FromParadigm(p)
		}
		out[i] = mapped
	}
	return out
}

func FromKrtForms(forms []prakriya.KrtForms) []KrtForms {
	out := make([]KrtForms, len(forms))
	for i, f := range forms {
		out[i] = KrtForms{
			Krt:     f.Krt.String(),
			Choices: FromChoices(f.Choices),
		}
	}
	return out
}

// FromDerivation attaches rule texts to the steps of a derivation via the
// lookup, usually catalog.Sutrapatha.Text.
func FromDerivation(d vyakarana.Derivation, sutraText func(string) (string, bool)) Prakriya {
	out := Prakriya{Text: d.Text, Steps: make([]Step, 0, len(d.Steps))}
	for _, step := range d.Steps {
		mapped := Step{Rule: step.Rule, Result: step.Result}
		if sutraText != nil {
			if text, ok := sutraText(step.Rule); ok {
				mapped.Sutra = text
			}
		}
		out.Steps = append(out.Steps, mapped)
	}
	return out
}

func FromOptions(opts vyakarana.Options) Options {
	out := Options{Upasarga: opts.Upasarga}
	if opts.Prayoga != nil {
		out.Prayoga = opts.Prayoga.String()
	}
	if opts.Pada != nil {
		out.Pada = opts.Pada.String()
	}
	if opts.Sanadi != nil {
		out.Sanadi = opts.Sanadi.String()
	}
	return out
}

// FromState renders a session snapshot plus its canonical locator string.
func FromState(state session.State, locator string) State {
	out := State{
		Tab:     string(state.Tab),
		Display: state.Display,
		Options: FromOptions(state.Options),
		Script:  state.Script.String(),
		Locator: locator,
	}
	if state.Dhatu != nil {
		d := FromDhatu(*state.Dhatu)
		out.Dhatu = &d
	}
	if state.ActivePada != nil {
		if data, err := vyakarana.MarshalPada(state.ActivePada); err == nil {
			out.ActivePada = data
		}
	}
	return out
}
