// Package render draws catalog listings, paradigm grids, and prakriya
// step traces for terminal output. Table and markdown formats honor the
// caller's transliteration hook; json output stays in SLP1, the wire
// script of the HTTP API.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/vyakarana-tools/rupavali/internal/dto"
	"github.com/vyakarana-tools/rupavali/pkg/catalog"
	"github.com/vyakarana-tools/rupavali/pkg/prakriya"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// Output formats accepted by the rendering helpers.
const (
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatMarkdown = "md"
)

// Dhatus lists catalog entries.
func Dhatus(w io.Writer, dhatus []catalog.Dhatu, format string, convert func(string) string) error {
	if format == FormatJSON {
		return writeJSON(w, dto.FromDhatus(dhatus))
	}

	conv := orIdentity(convert)
	t := newTable(w)
	t.AppendHeader(table.Row{"Code", "Dhatu", "Clean", "Artha"})
	for _, d := range dhatus {
		t.AppendRow(table.Row{d.Code, conv(d.Aupadeshika), d.Clean, d.Artha})
	}
	renderTable(t, format)
	_, _ = fmt.Fprintf(w, "(%d dhatus)\n", len(dhatus))
	return nil
}

// Tinantas draws one three-by-three grid per lakara and prayoga, purushas
// down the side and vacanas across the top.
func Tinantas(w io.Writer, tables []prakriya.LakaraTable, format string, convert func(string) string) error {
	if format == FormatJSON {
		return writeJSON(w, dto.FromLakaraTables(tables))
	}

	conv := orIdentity(convert)
	for _, lt := range tables {
		for _, p := range lt.Paradigms {
			_, _ = fmt.Fprintf(w, "%s (%s)\n", p.Lakara, p.Prayoga)

			t := newTable(w)
			header := table.Row{""}
			for _, v := range vyakarana.VacanaOrder {
				header = append(header, v.String())
			}
			t.AppendHeader(header)
			for _, purusha := range vyakarana.PurushaOrder {
				row := table.Row{purusha.String()}
				for _, vacana := range vyakarana.VacanaOrder {
					row = append(row, joinChoices(p.Cell(purusha, vacana).Choices, conv))
				}
				t.AppendRow(row)
			}
			renderTable(t, format)
			_, _ = fmt.Fprintln(w)
		}
	}
	return nil
}

// Krdantas lists derived forms grouped by krt affix.
func Krdantas(w io.Writer, forms []prakriya.KrtForms, format string, convert func(string) string) error {
	if format == FormatJSON {
		return writeJSON(w, dto.FromKrtForms(forms))
	}

	conv := orIdentity(convert)
	t := newTable(w)
	t.AppendHeader(table.Row{"Krt", "Forms"})
	for _, f := range forms {
		t.AppendRow(table.Row{f.Krt.String(), joinChoices(f.Choices, conv)})
	}
	renderTable(t, format)
	return nil
}

// Prakriya renders a derivation trace as markdown through glamour.
func Prakriya(w io.Writer, p dto.Prakriya, width int) error {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "# %s\n\n", p.Text)
	b.WriteString("| Step | Rule | Sutra | Result |\n")
	b.WriteString("|------|------|-------|--------|\n")
	for i, step := range p.Steps {
		_, _ = fmt.Fprintf(&b, "| %d | %s | %s | `%s` |\n", i+1, step.Rule, step.Sutra, step.Result)
	}
	return Markdown(w, b.String(), width)
}

// Markdown renders markdown text to w, wrapped to width.
func Markdown(w io.Writer, text string, width int) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(text)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	// SLP1 is case-sensitive; the default header style upper-cases cells.
	t.Style().Format.Header = text.FormatDefault
	return t
}

func renderTable(t table.Writer, format string) {
	if format == FormatMarkdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

func joinChoices(choices []prakriya.Choice, conv func(string) string) string {
	if len(choices) == 0 {
		return "-"
	}
	texts := make([]string, len(choices))
	for i, c := range choices {
		texts[i] = conv(c.Text)
	}
	return strings.Join(texts, " / ")
}

func orIdentity(convert func(string) string) func(string) string {
	if convert != nil {
		return convert
	}
	return func(s string) string { return s }
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
