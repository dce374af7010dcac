package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vyakarana-tools/rupavali"
	"github.com/vyakarana-tools/rupavali/pkg/catalog"
	"github.com/vyakarana-tools/rupavali/pkg/locator"
	"github.com/vyakarana-tools/rupavali/pkg/prakriya"
	"github.com/vyakarana-tools/rupavali/pkg/session"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

const appName = "rupavali"

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	NextTab  key.Binding
	PrevTab  key.Binding
	Move     key.Binding
	Slot     key.Binding
	Select   key.Binding
	Back     key.Binding
	Filter   key.Binding
	Lakara   key.Binding
	Prayoga  key.Binding
	Pada     key.Binding
	Sanadi   key.Binding
	Upasarga key.Binding
	Script   key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Move:     key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("j/k", "move")),
		Slot:     key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("h/l", "pick form")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "prakriya")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Lakara:   key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "lakara")),
		Prayoga:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "prayoga")),
		Pada:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pada")),
		Sanadi:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sanadi")),
		Upasarga: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upasarga")),
		Script:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "script")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type tinantasMsg struct {
	code   string
	tables []prakriya.LakaraTable
	err    error
}

type krdantasMsg struct {
	code  string
	forms []prakriya.KrtForms
	err   error
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// slotRef addresses one selectable form inside the current grid row.
type slotRef struct {
	vacana vyakarana.Vacana
	index  int
	choice prakriya.Choice
}

type model struct {
	app   *rupavali.App
	store *session.Store
	codec *locator.Codec

	keys   keyMap
	filter textinput.Model

	// state is a cell the store observer writes through. Mutations only
	// happen on the update goroutine, so reads during View are safe.
	state *session.State
	share string

	matches  []catalog.Dhatu
	cursor   int
	topIndex int

	tables    []prakriya.LakaraTable
	forms     []prakriya.KrtForms
	lakaraIdx int
	row       int
	slot      int

	about  string
	status string
	width  int
	height int
}

func newModel(app *rupavali.App, restore string, script vyakarana.Scheme) model {
	store := app.NewSession()
	state := new(session.State)
	*state = store.Snapshot()
	// Observers fire synchronously, so the cell is current the moment
	// any setter returns.
	store.OnChange(func(s session.State) { *state = s })

	if script.Valid() && script != state.Script {
		store.SetScript(script)
	}

	codec := locator.New()
	if restore != "" {
		codec.ApplyString(context.Background(), store, restore)
	}

	input := textinput.New()
	input.Placeholder = "type to filter (HK or Devanagari)"
	input.Prompt = "/ "

	m := model{
		app:     app,
		store:   store,
		codec:   codec,
		keys:    newKeyMap(),
		filter:  input,
		state:   state,
		matches: app.SearchDhatus(state.Query),
	}
	m.share = codec.EncodeString(*state)
	return m
}

// sync re-encodes the share line after a store mutation.
func (m model) sync() model {
	m.share = m.codec.EncodeString(*m.state)
	return m
}

// ---------------------------------------------------------------------------
// Bubble Tea interface: Init / Update / View
// ---------------------------------------------------------------------------

func (m model) Init() tea.Cmd {
	return m.deriveFor(m.state.Tab)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tinantasMsg:
		return m.handleTinantas(msg)
	case krdantasMsg:
		return m.handleKrdantas(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.about = m.renderedAbout()
		m.ensureCursorInWindow()
		return m, nil
	case tea.KeyMsg:
		if m.state.Tab == vyakarana.TabDhatus && m.filter.Focused() {
			return m.updateFilter(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m model) View() string {
	header := renderHeader(m.state.Tab, m.width)

	var body string
	switch m.state.Tab {
	case vyakarana.TabDhatus:
		body = m.dhatusView()
	case vyakarana.TabTinantas:
		body = m.tinantasView()
	case vyakarana.TabKrdantas:
		body = m.krdantasView()
	case vyakarana.TabAbout:
		body = m.aboutView()
	}

	share := m.renderShare()
	status := m.renderStatus(m.status)
	footer := m.renderFooter(m.footerBindings())
	return m.placeWithFooter(header+"\n\n"+body, share, status, footer)
}

// ---------------------------------------------------------------------------
// Message handlers (called from Update)
// ---------------------------------------------------------------------------

func (m model) handleTinantas(msg tinantasMsg) (tea.Model, tea.Cmd) {
	if m.state.Dhatu == nil || m.state.Dhatu.Code != msg.code {
		// Result of a superseded selection.
		return m, nil
	}
	if msg.err != nil {
		m.status = fmt.Sprintf("tinantas: %v", msg.err)
		return m, nil
	}
	m.tables = msg.tables
	if m.lakaraIdx >= len(m.tables) {
		m.lakaraIdx = 0
	}
	m.row, m.slot = 0, 0
	m.status = ""
	return m, nil
}

func (m model) handleKrdantas(msg krdantasMsg) (tea.Model, tea.Cmd) {
	if m.state.Dhatu == nil || m.state.Dhatu.Code != msg.code {
		return m, nil
	}
	if msg.err != nil {
		m.status = fmt.Sprintf("krdantas: %v", msg.err)
		return m, nil
	}
	m.forms = msg.forms
	m.row, m.slot = 0, 0
	m.status = ""
	return m, nil
}

// ---------------------------------------------------------------------------
// Key-input handlers
// ---------------------------------------------------------------------------

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		return m.cycleTab(1)
	case "shift+tab":
		return m.cycleTab(-1)
	case "w":
		return m.cycleScript()
	}

	switch m.state.Tab {
	case vyakarana.TabDhatus:
		return m.updateDhatus(msg)
	case vyakarana.TabTinantas:
		return m.updateTinantas(msg)
	case vyakarana.TabKrdantas:
		return m.updateKrdantas(msg)
	}
	return m, nil
}

func (m model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.store.SetQuery(m.filter.Value())
	m.matches = m.app.SearchDhatus(m.filter.Value())
	m.cursor, m.topIndex = 0, 0
	return m.sync(), cmd
}

func (m model) updateDhatus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.filter.Focus()
		return m, textinput.Blink
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.topIndex {
				m.topIndex--
			}
			if m.topIndex < 0 {
				m.topIndex = 0
			}
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
			visible := m.visibleRows()
			if visible <= 0 {
				visible = 1
			}
			if m.cursor >= m.topIndex+visible {
				m.topIndex++
			}
			maxTop := len(m.matches) - visible
			if maxTop < 0 {
				maxTop = 0
			}
			if m.topIndex > maxTop {
				m.topIndex = maxTop
			}
		}
		return m, nil
	case "enter":
		if m.cursor >= len(m.matches) {
			return m, nil
		}
		dhatu := m.matches[m.cursor]
		m.store.SetDhatu(dhatu.Code)
		m.store.SetTab(vyakarana.TabTinantas)
		m.tables, m.forms = nil, nil
		m.lakaraIdx, m.row, m.slot = 0, 0, 0
		m.status = "deriving..."
		return m.sync(), m.deriveTinantasCmd()
	}
	return m, nil
}

func (m model) updateTinantas(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.store.SetPrayoga(nextOption(m.state.Options.Prayoga, vyakarana.PrayogaOrder))
		return m.rederive()
	case "p":
		m.store.SetPada(nextOption(m.state.Options.Pada, vyakarana.DhatuPadaOrder))
		return m.rederive()
	case "s":
		m.store.SetSanadi(nextOption(m.state.Options.Sanadi, vyakarana.SanadiOrder))
		return m.rederive()
	case "u":
		m.store.SetUpasarga(nextUpasarga(m.state.Options.Upasarga))
		return m.rederive()
	case "esc":
		m.store.ClearActivePada()
		return m.sync(), nil
	}

	if m.state.Dhatu == nil || len(m.tables) == 0 {
		return m, nil
	}
	table := m.tables[m.lakaraIdx]
	maxRow := len(table.Paradigms)*len(vyakarana.PurushaOrder) - 1

	switch msg.String() {
	case "]":
		m.lakaraIdx = (m.lakaraIdx + 1) % len(m.tables)
		m.row, m.slot = 0, 0
	case "[":
		m.lakaraIdx = (m.lakaraIdx - 1 + len(m.tables)) % len(m.tables)
		m.row, m.slot = 0, 0
	case "up", "k":
		if m.row > 0 {
			m.row--
			m.slot = 0
		}
	case "down", "j":
		if m.row < maxRow {
			m.row++
			m.slot = 0
		}
	case "left", "h":
		if m.slot > 0 {
			m.slot--
		}
	case "right", "l":
		if n := len(m.tinantaRowSlots(m.row)); m.slot < n-1 {
			m.slot++
		}
	case "enter":
		slots := m.tinantaRowSlots(m.row)
		if m.slot >= len(slots) {
			return m, nil
		}
		return m.selectPada(slots[m.slot].choice.Pada)
	}
	return m, nil
}

func (m model) updateKrdantas(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		m.store.SetSanadi(nextOption(m.state.Options.Sanadi, vyakarana.SanadiOrder))
		return m.rederive()
	case "u":
		m.store.SetUpasarga(nextUpasarga(m.state.Options.Upasarga))
		return m.rederive()
	case "esc":
		m.store.ClearActivePada()
		return m.sync(), nil
	}

	if m.state.Dhatu == nil || len(m.forms) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.row > 0 {
			m.row--
			m.slot = 0
		}
	case "down", "j":
		if m.row < len(m.forms)-1 {
			m.row++
			m.slot = 0
		}
	case "left", "h":
		if m.slot > 0 {
			m.slot--
		}
	case "right", "l":
		if m.slot < len(m.forms[m.row].Choices)-1 {
			m.slot++
		}
	case "enter":
		choices := m.forms[m.row].Choices
		if m.slot >= len(choices) {
			return m, nil
		}
		return m.selectPada(choices[m.slot].Pada)
	}
	return m, nil
}

// selectPada materializes the prakriya for one picked form. The store
// leaves its state untouched when the engine refuses the descriptor.
func (m model) selectPada(pada vyakarana.Pada) (tea.Model, tea.Cmd) {
	if err := m.store.SetActivePada(context.Background(), pada); err != nil {
		m.status = fmt.Sprintf("prakriya: %v", err)
		return m.sync(), nil
	}
	m.status = ""
	return m.sync(), nil
}

// ---------------------------------------------------------------------------
// Store mutations with derived views
// ---------------------------------------------------------------------------

func (m model) cycleTab(step int) (tea.Model, tea.Cmd) {
	order := vyakarana.TabOrder
	next := order[(tabIndex(m.state.Tab)+step+len(order))%len(order)]
	m.store.SetTab(next)
	m.row, m.slot = 0, 0
	m = m.sync()
	cmd := m.deriveFor(next)
	if cmd != nil {
		m.status = "deriving..."
	}
	return m, cmd
}

func (m model) cycleScript() (tea.Model, tea.Cmd) {
	order := vyakarana.SchemeOrder
	for i, s := range order {
		if s == m.state.Script {
			m.store.SetScript(order[(i+1)%len(order)])
			break
		}
	}
	return m.sync(), nil
}

// rederive drops cached grids after an option change and rebuilds the
// visible tab.
func (m model) rederive() (tea.Model, tea.Cmd) {
	m.tables, m.forms = nil, nil
	m.row, m.slot = 0, 0
	m = m.sync()
	cmd := m.deriveFor(m.state.Tab)
	if cmd != nil {
		m.status = "deriving..."
	}
	return m, cmd
}

// deriveFor returns the derivation command a tab needs, or nil when its
// grid is already cached or no dhatu is selected.
func (m model) deriveFor(tab vyakarana.Tab) tea.Cmd {
	if m.state.Dhatu == nil {
		return nil
	}
	switch tab {
	case vyakarana.TabTinantas:
		if m.tables == nil {
			return m.deriveTinantasCmd()
		}
	case vyakarana.TabKrdantas:
		if m.forms == nil {
			return m.deriveKrdantasCmd()
		}
	}
	return nil
}

func (m model) deriveTinantasCmd() tea.Cmd {
	state := *m.state
	if state.Dhatu == nil {
		return nil
	}
	app, code, opts := m.app, state.Dhatu.Code, state.Options
	return func() tea.Msg {
		tables, err := app.TinantaTables(context.Background(), code, opts)
		return tinantasMsg{code: code, tables: tables, err: err}
	}
}

func (m model) deriveKrdantasCmd() tea.Cmd {
	state := *m.state
	if state.Dhatu == nil {
		return nil
	}
	app, code, opts := m.app, state.Dhatu.Code, state.Options
	return func() tea.Msg {
		forms, err := app.KrdantaForms(context.Background(), code, opts)
		return krdantasMsg{code: code, forms: forms, err: err}
	}
}

// ---------------------------------------------------------------------------
// Navigation helpers
// ---------------------------------------------------------------------------

func tabIndex(tab vyakarana.Tab) int {
	for i, t := range vyakarana.TabOrder {
		if t == tab {
			return i
		}
	}
	return 0
}

// nextOption steps nil -> first -> ... -> last -> nil.
func nextOption[T comparable](current *T, order []T) *T {
	if current == nil {
		v := order[0]
		return &v
	}
	for i, v := range order {
		if v == *current {
			if i == len(order)-1 {
				return nil
			}
			next := order[i+1]
			return &next
		}
	}
	return nil
}

// nextUpasarga steps through the upasarga list with "" as the rest state.
func nextUpasarga(current string) string {
	if current == "" {
		return vyakarana.Upasargas[0]
	}
	for i, u := range vyakarana.Upasargas {
		if u == current {
			if i == len(vyakarana.Upasargas)-1 {
				return ""
			}
			return vyakarana.Upasargas[i+1]
		}
	}
	return ""
}

func (m model) currentTable() *prakriya.LakaraTable {
	if len(m.tables) == 0 || m.lakaraIdx >= len(m.tables) {
		return nil
	}
	return &m.tables[m.lakaraIdx]
}

// tinantaRowSlots flattens one grid row into its selectable forms, in
// vacana order with cell-internal order preserved.
func (m model) tinantaRowSlots(row int) []slotRef {
	table := m.currentTable()
	if table == nil {
		return nil
	}
	n := len(vyakarana.PurushaOrder)
	if row < 0 || row >= len(table.Paradigms)*n {
		return nil
	}
	paradigm := table.Paradigms[row/n]
	purusha := vyakarana.PurushaOrder[row%n]

	var slots []slotRef
	for _, vacana := range vyakarana.VacanaOrder {
		cell := paradigm.Cell(purusha, vacana)
		for i, choice := range cell.Choices {
			slots = append(slots, slotRef{vacana: vacana, index: i, choice: choice})
		}
	}
	return slots
}

// gridCursor locates the focused form inside the rendered grid.
type gridCursor struct {
	paradigm int
	purusha  int
	vacana   vyakarana.Vacana
	index    int
	ok       bool
}

func (m model) tinantaCursorPos() gridCursor {
	n := len(vyakarana.PurushaOrder)
	cur := gridCursor{paradigm: m.row / n, purusha: m.row % n}
	slots := m.tinantaRowSlots(m.row)
	if len(slots) == 0 {
		return cur
	}
	s := m.slot
	if s >= len(slots) {
		s = len(slots) - 1
	}
	cur.vacana = slots[s].vacana
	cur.index = slots[s].index
	cur.ok = true
	return cur
}

// ---------------------------------------------------------------------------
// Layout helpers
// ---------------------------------------------------------------------------

func (m model) footerBindings() []key.Binding {
	if m.state.Tab == vyakarana.TabDhatus && m.filter.Focused() {
		return []key.Binding{m.keys.Back, m.keys.Quit}
	}
	switch m.state.Tab {
	case vyakarana.TabDhatus:
		return []key.Binding{m.keys.Filter, m.keys.Move, m.keys.Select, m.keys.NextTab, m.keys.Script, m.keys.Quit}
	case vyakarana.TabTinantas:
		return []key.Binding{m.keys.Lakara, m.keys.Move, m.keys.Slot, m.keys.Select, m.keys.Prayoga, m.keys.Pada, m.keys.Sanadi, m.keys.Upasarga, m.keys.Script, m.keys.Quit}
	case vyakarana.TabKrdantas:
		return []key.Binding{m.keys.Move, m.keys.Slot, m.keys.Select, m.keys.Sanadi, m.keys.Upasarga, m.keys.Script, m.keys.Quit}
	}
	return []key.Binding{m.keys.NextTab, m.keys.PrevTab, m.keys.Script, m.keys.Quit}
}

func (m model) visibleRows() int {
	if m.height == 0 {
		return 12
	}
	// Header, section chrome, filter line, indicator, and the three
	// bottom bars.
	available := m.height - 13
	if available < 3 {
		available = 3
	}
	if available > 24 {
		available = 24
	}
	return available
}

func (m model) contentWidth() int {
	if m.width == 0 {
		return 92
	}
	w := m.width - listBoxStyle.GetHorizontalFrameSize() - 2
	if w < 40 {
		w = 40
	}
	return w
}

func (m *model) ensureCursorInWindow() {
	visible := m.visibleRows()
	if visible <= 0 {
		return
	}
	if m.cursor < m.topIndex {
		m.topIndex = m.cursor
	} else if m.cursor >= m.topIndex+visible {
		m.topIndex = m.cursor - visible + 1
	}
	maxTop := len(m.matches) - visible
	if maxTop < 0 {
		maxTop = 0
	}
	if m.topIndex > maxTop {
		m.topIndex = maxTop
	}
	if m.topIndex < 0 {
		m.topIndex = 0
	}
}

// conv transliterates engine text into the session's display script.
func (m model) conv(text string) string {
	return m.app.Convert(text, vyakarana.SchemeSLP1, m.state.Script)
}
