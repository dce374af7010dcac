package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/vyakarana-tools/rupavali/internal/render"
	"github.com/vyakarana-tools/rupavali/pkg/prakriya"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Background(colorMantle).
				Padding(0, 1)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Background(colorMantle)

	listBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	separatorStyle = lipgloss.NewStyle().Foreground(colorSurface2)

	shareBarStyle = lipgloss.NewStyle().
			Foreground(colorShare).
			Background(colorMantle).
			Padding(0, 2)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	cellHeaderStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true)
	gridLabelStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)

	optLabelStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	optValueStyle = lipgloss.NewStyle().Foreground(colorAccent)

	cursorStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	focusedFormStyle = lipgloss.NewStyle().Foreground(colorFocus).Underline(true)
	activeFormStyle  = lipgloss.NewStyle().Foreground(colorActive).Bold(true)

	hintStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)
	scrollStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
)

var tabTitles = map[vyakarana.Tab]string{
	vyakarana.TabDhatus:   "Dhatus",
	vyakarana.TabTinantas: "Tinantas",
	vyakarana.TabKrdantas: "Krdantas",
	vyakarana.TabAbout:    "About",
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func renderHeader(active vyakarana.Tab, width int) string {
	name := headerAppStyle.Render(appName)

	var tabs []string
	for _, tab := range vyakarana.TabOrder {
		if tab == active {
			tabs = append(tabs, activeTabStyle.Render(tabTitles[tab]))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(tabTitles[tab]))
		}
	}
	bar := tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))

	content := name + "  " + bar
	if width <= 0 {
		return headerBarStyle.Render(content)
	}
	return headerBarStyle.Width(width).Render(content)
}

func (m model) renderSection(title, content string) string {
	w := m.contentWidth()
	head := padRight(titleStyle.Render(title), w)
	separator := separatorStyle.Render(strings.Repeat("─", w))
	return listBoxStyle.Render(head + "\n" + separator + "\n" + content)
}

func (m model) renderShare() string {
	text := "share  " + m.share
	if m.width > 8 {
		text = truncate(text, m.width-4)
	}
	if m.width == 0 {
		return shareBarStyle.Render(text)
	}
	return shareBarStyle.Width(m.width).Render(text)
}

func (m model) renderStatus(text string) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	if m.width == 0 {
		return statusBarStyle.Render(flat)
	}
	return statusBarStyle.Width(m.width).Render(flat)
}

func (m model) renderFooter(bindings []key.Binding) string {
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if m.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(m.width).Render(content)
}

func (m model) placeWithFooter(body, share, status, footer string) string {
	bottom := share + "\n" + status + "\n" + footer
	if m.height == 0 {
		return body + "\n\n" + bottom
	}
	contentHeight := m.height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + bottom
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// Pad every line to full width so stale frames never show through.
	lines := strings.Split(main, "\n")
	for i, line := range lines {
		lines[i] = padRight(line, m.width)
	}
	return strings.Join(lines, "\n") + "\n" + bottom
}

// ---------------------------------------------------------------------------
// Per-tab views
// ---------------------------------------------------------------------------

func (m model) dhatusView() string {
	var b strings.Builder
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	codeW, dhatuW := 10, 16
	b.WriteString(cellHeaderStyle.Render(padRight("", 2)+padRight("Code", codeW)+padRight("Dhatu", dhatuW)+"Artha") + "\n")

	visible := m.visibleRows()
	end := m.topIndex + visible
	if end > len(m.matches) {
		end = len(m.matches)
	}
	for i := m.topIndex; i < end; i++ {
		d := m.matches[i]
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(prefix + padRight(d.Code, codeW) + padRight(m.conv(d.Aupadeshika), dhatuW) + m.conv(d.Artha) + "\n")
	}

	if len(m.matches) == 0 {
		b.WriteString(hintStyle.Render("No dhatus match this filter.") + "\n")
	} else if visible > 0 {
		b.WriteString(scrollStyle.Render(fmt.Sprintf("── showing %d-%d of %d ──", m.topIndex+1, end, len(m.matches))))
	}
	return m.renderSection("Dhatupatha", b.String())
}

func (m model) tinantasView() string {
	if m.state.Dhatu == nil {
		return m.renderSection("Tinantas", hintStyle.Render("Pick a dhatu on the Dhatus tab first."))
	}
	head := m.dhatuSummary() + "\n" + m.optionsSummary()

	if m.tables == nil {
		return m.renderSection("Tinantas", head+"\n\n"+hintStyle.Render("deriving..."))
	}
	if len(m.tables) == 0 {
		return m.renderSection("Tinantas", head+"\n\n"+hintStyle.Render("Nothing derivable with the current options."))
	}

	table := m.tables[m.lakaraIdx]
	lakaraLine := titleStyle.Render(table.Lakara.String()) +
		scrollStyle.Render(fmt.Sprintf("  lakara %d/%d", m.lakaraIdx+1, len(m.tables)))

	body := head + "\n\n" + lakaraLine + "\n\n" + m.renderGrid(table)
	if m.state.Display != nil {
		body += "\n\n" + m.renderPrakriya(*m.state.Display)
	}
	return m.renderSection("Tinantas", body)
}

func (m model) krdantasView() string {
	if m.state.Dhatu == nil {
		return m.renderSection("Krdantas", hintStyle.Render("Pick a dhatu on the Dhatus tab first."))
	}
	head := m.dhatuSummary() + "\n" + m.optionsSummary()

	if m.forms == nil {
		return m.renderSection("Krdantas", head+"\n\n"+hintStyle.Render("deriving..."))
	}

	labelW := 12
	lines := []string{cellHeaderStyle.Render(padRight("", 2) + padRight("Krt", labelW) + "Forms")}
	for i, kf := range m.forms {
		prefix := "  "
		if i == m.row {
			prefix = cursorStyle.Render("> ")
		}
		row := prefix + padRight(gridLabelStyle.Render(kf.Krt.String()), labelW)
		if len(kf.Choices) == 0 {
			row += hintStyle.Render("-")
		} else {
			parts := make([]string, 0, len(kf.Choices))
			for j, choice := range kf.Choices {
				text := m.conv(choice.Text)
				switch {
				case m.state.ActivePada != nil && choice.Pada == m.state.ActivePada:
					text = activeFormStyle.Render(text)
				case i == m.row && j == m.slot:
					text = focusedFormStyle.Render(text)
				}
				parts = append(parts, text)
			}
			row += strings.Join(parts, " / ")
		}
		lines = append(lines, row)
	}

	body := head + "\n\n" + strings.Join(lines, "\n")
	if m.state.Display != nil {
		body += "\n\n" + m.renderPrakriya(*m.state.Display)
	}
	return m.renderSection("Krdantas", body)
}

func (m model) aboutView() string {
	if m.about == "" {
		return m.renderSection("About", render.AboutMarkdown)
	}
	return m.about
}

func (m model) renderedAbout() string {
	width := m.contentWidth()
	if width > 100 {
		width = 100
	}
	var buf bytes.Buffer
	if err := render.Markdown(&buf, render.AboutMarkdown, width); err != nil {
		return render.AboutMarkdown
	}
	return buf.String()
}

// ---------------------------------------------------------------------------
// Data rendering
// ---------------------------------------------------------------------------

func (m model) dhatuSummary() string {
	d := m.state.Dhatu
	return titleStyle.Render(m.conv(d.Aupadeshika)) +
		hintStyle.Render(fmt.Sprintf("  %s  %s", d.Code, m.conv(d.Artha)))
}

func (m model) optionsSummary() string {
	opts := m.state.Options
	pair := func(label, value string) string {
		if value == "" {
			value = "-"
		}
		return optLabelStyle.Render(label+" ") + optValueStyle.Render(value)
	}

	prayoga, pada, sanadi := "", "", ""
	if opts.Prayoga != nil {
		prayoga = opts.Prayoga.String()
	}
	if opts.Pada != nil {
		pada = opts.Pada.String()
	}
	if opts.Sanadi != nil {
		sanadi = opts.Sanadi.String()
	}

	fields := []string{
		pair("prayoga", prayoga),
		pair("pada", pada),
		pair("sanadi", sanadi),
		pair("upasarga", opts.Upasarga),
		pair("script", m.state.Script.String()),
	}
	return strings.Join(fields, "   ")
}

func (m model) renderGrid(table prakriya.LakaraTable) string {
	cur := m.tinantaCursorPos()
	labelW := 10
	cellW := (m.contentWidth() - labelW - 4) / len(vyakarana.VacanaOrder)
	if cellW < 14 {
		cellW = 14
	}

	var sections []string
	for pi, paradigm := range table.Paradigms {
		lines := make([]string, 0, len(vyakarana.PurushaOrder)+2)
		lines = append(lines, titleStyle.Render(fmt.Sprintf("%s (%s)", paradigm.Lakara, paradigm.Prayoga)))

		head := padRight("", labelW+2)
		for _, vacana := range vyakarana.VacanaOrder {
			head += padRight(cellHeaderStyle.Render(vacana.String()), cellW)
		}
		lines = append(lines, head)

		for pu, purusha := range vyakarana.PurushaOrder {
			prefix := "  "
			if cur.paradigm == pi && cur.purusha == pu {
				prefix = cursorStyle.Render("> ")
			}
			row := prefix + padRight(gridLabelStyle.Render(purusha.String()), labelW)
			for _, vacana := range vyakarana.VacanaOrder {
				onCell := cur.ok && cur.paradigm == pi && cur.purusha == pu && cur.vacana == vacana
				row += padRight(m.renderCell(paradigm.Cell(purusha, vacana), onCell, cur.index), cellW)
			}
			lines = append(lines, row)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return strings.Join(sections, "\n\n")
}

func (m model) renderCell(cell prakriya.Cell, onCell bool, slotIdx int) string {
	if len(cell.Choices) == 0 {
		return hintStyle.Render("-")
	}
	parts := make([]string, 0, len(cell.Choices))
	for i, choice := range cell.Choices {
		text := m.conv(choice.Text)
		switch {
		case m.state.ActivePada != nil && choice.Pada == m.state.ActivePada:
			text = activeFormStyle.Render(text)
		case onCell && i == slotIdx:
			text = focusedFormStyle.Render(text)
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " / ")
}

func (m model) renderPrakriya(d vyakarana.Derivation) string {
	sutraW := 36
	lines := []string{
		titleStyle.Render("Prakriya") + "  " + activeFormStyle.Render(m.conv(d.Text)) +
			hintStyle.Render("  (esc to clear)"),
		cellHeaderStyle.Render(padRight("Rule", 10) + padRight("Sutra", sutraW) + "Result"),
	}
	for _, step := range d.Steps {
		sutra, _ := m.app.Sutrapatha().Text(step.Rule)
		lines = append(lines, padRight(step.Rule, 10)+
			padRight(truncate(m.conv(sutra), sutraW-2), sutraW)+m.conv(step.Result))
	}
	if len(d.Steps) == 0 {
		lines = append(lines, hintStyle.Render("The engine reported no steps for this form."))
	}
	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// String helpers
// ---------------------------------------------------------------------------

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
