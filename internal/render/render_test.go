package render

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyakarana-tools/rupavali/internal/dto"
	"github.com/vyakarana-tools/rupavali/pkg/catalog"
	"github.com/vyakarana-tools/rupavali/pkg/prakriya"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

func testDhatus() []catalog.Dhatu {
	return []catalog.Dhatu{
		{Code: "01.0001", Aupadeshika: "BU", Clean: "BU", Artha: "sattAyAm"},
		{Code: "01.1137", Aupadeshika: "gamx~", Clean: "gam", Artha: "gatO"},
	}
}

func testTables() []prakriya.LakaraTable {
	cells := make([]prakriya.Cell, 0, 9)
	for _, purusha := range vyakarana.PurushaOrder {
		for _, vacana := range vyakarana.VacanaOrder {
			cell := prakriya.Cell{Purusha: purusha, Vacana: vacana}
			if purusha == vyakarana.Prathama && vacana == vyakarana.Eka {
				cell.Choices = []prakriya.Choice{{Text: "Bavati"}}
			}
			cells = append(cells, cell)
		}
	}
	return []prakriya.LakaraTable{{
		Lakara: vyakarana.Lat,
		Paradigms: []prakriya.Paradigm{{
			Lakara:  vyakarana.Lat,
			Prayoga: vyakarana.Kartari,
			Cells:   cells,
		}},
	}}
}

func TestDhatusTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dhatus(&buf, testDhatus(), FormatTable, nil))

	out := buf.String()
	assert.Contains(t, out, "01.0001")
	assert.Contains(t, out, "gamx~")
	assert.Contains(t, out, "(2 dhatus)")
}

func TestDhatusJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dhatus(&buf, testDhatus(), FormatJSON, nil))

	var decoded []dto.Dhatu
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "01.1137", decoded[1].Code)
}

func TestDhatusConvertAppliesToForms(t *testing.T) {
	var buf bytes.Buffer
	marked := func(s string) string { return "<" + s + ">" }
	require.NoError(t, Dhatus(&buf, testDhatus(), FormatTable, marked))

	out := buf.String()
	assert.Contains(t, out, "<gamx~>")
	// Codes and meanings are not transliterated.
	assert.Contains(t, out, "01.1137")
	assert.NotContains(t, out, "<01.1137>")
}

func TestTinantasGrid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tinantas(&buf, testTables(), FormatTable, nil))

	out := buf.String()
	assert.Contains(t, out, "law (kartari)")
	assert.Contains(t, out, "Bavati")
	for _, header := range []string{"eka", "dvi", "bahu"} {
		assert.Contains(t, out, header)
	}
	// Header cells must keep SLP1 casing, not the default upper-cased style.
	assert.NotContains(t, out, "EKA")
	for _, label := range []string{"praTama", "maDyama", "uttama"} {
		assert.Contains(t, out, label)
	}
	// Empty cells show a placeholder.
	assert.Contains(t, out, "-")
}

func TestTinantasMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tinantas(&buf, testTables(), FormatMarkdown, nil))
	assert.Contains(t, buf.String(), "| Bavati |")
}

func TestTinantasJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tinantas(&buf, testTables(), FormatJSON, nil))

	var decoded []dto.LakaraTable
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "law", decoded[0].Lakara)
}

func TestKrdantas(t *testing.T) {
	forms := []prakriya.KrtForms{
		{Krt: vyakarana.KrtTumun, Choices: []prakriya.Choice{{Text: "Bavitum"}}},
		{Krt: vyakarana.KrtKtvA, Choices: []prakriya.Choice{{Text: "BUtvA"}, {Text: "BUtvAya"}}},
	}

	var buf bytes.Buffer
	require.NoError(t, Krdantas(&buf, forms, FormatTable, nil))

	out := buf.String()
	assert.Contains(t, out, "tumun")
	assert.Contains(t, out, "Bavitum")
	assert.Contains(t, out, "BUtvA / BUtvAya")
}

func TestPrakriya(t *testing.T) {
	p := dto.Prakriya{
		Text: "Bavati",
		Steps: []dto.Step{
			{Rule: "3.2.123", Sutra: "vartamAne law", Result: "BU+la~w"},
			{Rule: "3.4.78", Result: "BU+tip"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Prakriya(&buf, p, 100))

	out := buf.String()
	assert.Contains(t, out, "Bavati")
	assert.Contains(t, out, "3.2.123")
	assert.Contains(t, out, "vartamAne law")
}

func TestMarkdownRendersAboutText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, AboutMarkdown, 80))
	assert.Contains(t, buf.String(), "rupavali")
}

func TestWidthFallsBackOffTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notatty")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, 72, Width(f, 72))
}

func TestJoinChoices(t *testing.T) {
	assert.Equal(t, "-", joinChoices(nil, orIdentity(nil)))
	got := joinChoices([]prakriya.Choice{{Text: "tudati"}, {Text: "tudate"}}, strings.ToUpper)
	assert.Equal(t, "TUDATI / TUDATE", got)
}
