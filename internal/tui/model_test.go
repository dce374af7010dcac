package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyakarana-tools/rupavali"
	"github.com/vyakarana-tools/rupavali/pkg/prakriya"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

func newTestApp(t *testing.T) *rupavali.App {
	t.Helper()
	app, err := rupavali.New(context.Background())
	require.NoError(t, err)
	return app
}

func newTestModel(t *testing.T) model {
	t.Helper()
	m := newModel(newTestApp(t), "", vyakarana.SchemeDevanagari)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 110, Height: 40})
	return next.(model)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// press feeds keys one by one and returns the final model plus the last
// command.
func press(t *testing.T, m model, keys ...string) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(model)
	}
	return m, cmd
}

// withTinantas selects the first listed dhatu and loads its grid.
func withTinantas(t *testing.T, m model) model {
	t.Helper()
	m, cmd := press(t, m, "enter")
	require.NotNil(t, cmd)
	msg, ok := cmd().(tinantasMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)
	next, _ := m.Update(msg)
	m = next.(model)
	require.NotEmpty(t, m.tables)
	return m
}

func TestInitialState(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, vyakarana.TabDhatus, m.state.Tab)
	assert.Equal(t, vyakarana.SchemeDevanagari, m.state.Script)
	assert.NotEmpty(t, m.matches)
	assert.Contains(t, m.share, "tab=dhatus")

	view := m.View()
	assert.Contains(t, view, "rupavali")
	assert.Contains(t, view, "Dhatupatha")
	assert.Contains(t, view, "01.0001")
}

func TestTabCyclingFollowsStore(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "tab")
	assert.Equal(t, vyakarana.TabTinantas, m.state.Tab)
	assert.Contains(t, m.share, "tab=tinantas")

	m, _ = press(t, m, "shift+tab")
	assert.Equal(t, vyakarana.TabDhatus, m.state.Tab)

	m, _ = press(t, m, "shift+tab")
	assert.Equal(t, vyakarana.TabAbout, m.state.Tab)
}

func TestFilterDrivesQueryAndMatches(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "/")
	assert.True(t, m.filter.Focused())

	m, _ = press(t, m, "g", "a", "m")
	assert.Equal(t, "gam", m.state.Query)
	require.Len(t, m.matches, 1)
	assert.Equal(t, "01.1137", m.matches[0].Code)

	m, _ = press(t, m, "esc")
	assert.False(t, m.filter.Focused())
}

func TestSelectDhatuDerivesTinantas(t *testing.T) {
	m := newTestModel(t)

	m, cmd := press(t, m, "enter")
	require.NotNil(t, cmd)
	require.NotNil(t, m.state.Dhatu)
	assert.Equal(t, "01.0001", m.state.Dhatu.Code)
	assert.Equal(t, vyakarana.TabTinantas, m.state.Tab)
	assert.Contains(t, m.share, "dhatu=01.0001")

	msg, ok := cmd().(tinantasMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)

	next, _ := m.Update(msg)
	m = next.(model)
	require.NotEmpty(t, m.tables)
	assert.Equal(t, vyakarana.Lat, m.tables[0].Lakara)
}

func TestEnterShowsPrakriyaAndEscClears(t *testing.T) {
	m := withTinantas(t, newTestModel(t))

	m, _ = press(t, m, "enter")
	require.NotNil(t, m.state.ActivePada)
	require.NotNil(t, m.state.Display)
	assert.Equal(t, "Bavati", m.state.Display.Text)
	assert.Contains(t, m.share, "activePada=")
	assert.Contains(t, m.View(), "3.2.123")

	m, _ = press(t, m, "esc")
	assert.Nil(t, m.state.ActivePada)
	assert.Nil(t, m.state.Display)
}

func TestOptionCyclersWalkTheAxes(t *testing.T) {
	m := withTinantas(t, newTestModel(t))

	m, cmd := press(t, m, "y")
	require.NotNil(t, m.state.Options.Prayoga)
	assert.Equal(t, vyakarana.Kartari, *m.state.Options.Prayoga)
	require.NotNil(t, cmd)
	assert.Nil(t, m.tables)

	m, _ = press(t, m, "y", "y")
	require.NotNil(t, m.state.Options.Prayoga)
	assert.Equal(t, vyakarana.Bhave, *m.state.Options.Prayoga)

	m, _ = press(t, m, "y")
	assert.Nil(t, m.state.Options.Prayoga)

	m, _ = press(t, m, "p")
	require.NotNil(t, m.state.Options.Pada)
	assert.Equal(t, vyakarana.Parasmaipada, *m.state.Options.Pada)

	m, _ = press(t, m, "s")
	require.NotNil(t, m.state.Options.Sanadi)
	assert.Equal(t, vyakarana.San, *m.state.Options.Sanadi)

	m, _ = press(t, m, "u")
	assert.Equal(t, "pra", m.state.Options.Upasarga)

	m, _ = press(t, m, "w")
	assert.Equal(t, vyakarana.SchemeIAST, m.state.Script)
}

func TestNextOptionCycle(t *testing.T) {
	first := nextOption(nil, vyakarana.PrayogaOrder)
	require.NotNil(t, first)
	assert.Equal(t, vyakarana.Kartari, *first)

	last := vyakarana.Bhave
	assert.Nil(t, nextOption(&last, vyakarana.PrayogaOrder))

	assert.Equal(t, "pra", nextUpasarga(""))
	assert.Equal(t, "", nextUpasarga(vyakarana.Upasargas[len(vyakarana.Upasargas)-1]))
}

func TestLakaraCycling(t *testing.T) {
	m := withTinantas(t, newTestModel(t))
	total := len(m.tables)
	require.Greater(t, total, 1)

	m, _ = press(t, m, "]")
	assert.Equal(t, 1, m.lakaraIdx)

	m, _ = press(t, m, "[", "[")
	assert.Equal(t, total-1, m.lakaraIdx)
}

func TestDhatuCursorClamps(t *testing.T) {
	m := newTestModel(t)
	total := len(m.matches)
	require.Greater(t, total, 1)

	for i := 0; i < total+3; i++ {
		m, _ = press(t, m, "j")
	}
	assert.Equal(t, total-1, m.cursor)

	for i := 0; i < total+3; i++ {
		m, _ = press(t, m, "k")
	}
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, 0, m.topIndex)
}

func TestKrdantaFlow(t *testing.T) {
	m := withTinantas(t, newTestModel(t))

	m, cmd := press(t, m, "tab")
	require.NotNil(t, cmd)
	msg, ok := cmd().(krdantasMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)

	next, _ := m.Update(msg)
	m = next.(model)
	require.Len(t, m.forms, len(vyakarana.KrtOrder))

	tumunRow := -1
	for i, kf := range m.forms {
		if kf.Krt == vyakarana.KrtTumun {
			tumunRow = i
			break
		}
	}
	require.GreaterOrEqual(t, tumunRow, 0)
	require.NotEmpty(t, m.forms[tumunRow].Choices)

	for i := 0; i < tumunRow; i++ {
		m, _ = press(t, m, "j")
	}
	m, _ = press(t, m, "enter")
	require.NotNil(t, m.state.Display)
	assert.Equal(t, "Bavitum", m.state.Display.Text)

	m, cmd = press(t, m, "s")
	assert.Nil(t, m.forms)
	require.NotNil(t, cmd)
}

func TestStaleDerivationDropped(t *testing.T) {
	m := newTestModel(t)
	m, cmd := press(t, m, "enter")
	require.NotNil(t, cmd)

	next, _ := m.Update(tinantasMsg{code: "01.1137", tables: []prakriya.LakaraTable{{}}})
	m = next.(model)
	assert.Nil(t, m.tables)
}

func TestRestoreFromShareString(t *testing.T) {
	m := newModel(newTestApp(t), "tab=tinantas&dhatu=01.0001", vyakarana.SchemeDevanagari)

	assert.Equal(t, vyakarana.TabTinantas, m.state.Tab)
	require.NotNil(t, m.state.Dhatu)
	assert.Equal(t, "01.0001", m.state.Dhatu.Code)

	cmd := m.Init()
	require.NotNil(t, cmd)
	msg, ok := cmd().(tinantasMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)

	next, _ := m.Update(msg)
	m = next.(model)
	assert.NotEmpty(t, m.tables)
}

func TestConfiguredScriptAppliesAtStartup(t *testing.T) {
	m := newModel(newTestApp(t), "", vyakarana.SchemeIAST)
	assert.Equal(t, vyakarana.SchemeIAST, m.state.Script)
	assert.Contains(t, m.share, "tab=dhatus")
}

func TestAboutViewRendersMarkdown(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "shift+tab")
	require.Equal(t, vyakarana.TabAbout, m.state.Tab)
	assert.Contains(t, m.View(), "rupavali")
}
