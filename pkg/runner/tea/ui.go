package teaui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/pokedex/pkg/catalog"
	"tableflip.dev/pokedex/pkg/selection"
)

// Model states
type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeCommand
	modeHelp
)

type pane int

const (
	paneCategories pane = iota
	paneEntries
)

// Loader fetches the two datasets. Each load runs as its own command.
type Loader interface {
	LoadEntries(ctx context.Context) ([]catalog.Entry, error)
	LoadCategories(ctx context.Context) ([]catalog.Category, error)
}

// category item for left list
type categoryItem struct{ c catalog.Category }

func (c categoryItem) Title() string       { return c.c.Name }
func (c categoryItem) Description() string { return "" }
func (c categoryItem) FilterValue() string { return c.c.Name }

// entry item for middle list
type entryItem struct{ e catalog.Entry }

func (it entryItem) Title() string       { return fmt.Sprintf("#%03d %s", it.e.ID, it.e.Name) }
func (it entryItem) Description() string { return "" }
func (it entryItem) FilterValue() string { return it.e.Name }

// Model contains UI state
type Model struct {
	ctrl   *selection.Controller
	loader Loader
	ctx    context.Context
	mode   mode

	focus pane

	catList list.Model
	entList list.Model

	search  textinput.Model
	command textinput.Model

	status string

	termWidth  int
	termHeight int

	focusDel list.DefaultDelegate
	blurDel  list.DefaultDelegate
}

// New creates a UI model over the controller. A nil controller gets a fresh
// one without persistence.
func New(ctrl *selection.Controller, loader Loader) Model {
	if ctrl == nil {
		ctrl = selection.New(nil)
	}

	dFocus := list.NewDefaultDelegate()
	dBlur := list.NewDefaultDelegate()
	// Unfocused list should not visually highlight the selected item
	dBlur.Styles.SelectedTitle = dBlur.Styles.NormalTitle
	dBlur.Styles.SelectedDesc = dBlur.Styles.NormalDesc
	dFocus.ShowDescription = false
	dBlur.ShowDescription = false
	dFocus.SetSpacing(0)
	dBlur.SetSpacing(0)

	l1 := list.New([]list.Item{}, dFocus, 22, 20)
	l1.SetShowHelp(false)
	l1.SetShowStatusBar(false)
	l1.SetFilteringEnabled(false)
	l1.DisableQuitKeybindings()

	l2 := list.New([]list.Item{}, dBlur, 30, 20)
	l2.SetShowHelp(false)
	l2.SetShowStatusBar(false)
	l2.SetFilteringEnabled(false)
	l2.DisableQuitKeybindings()

	si := textinput.New()
	si.Placeholder = "search pokémon and types"
	si.CharLimit = 64
	si.Prompt = "/ "

	ci := textinput.New()
	ci.Placeholder = "command"
	ci.CharLimit = 32
	ci.Prompt = ":"

	m := Model{
		ctrl:     ctrl,
		loader:   loader,
		ctx:      context.Background(),
		mode:     modeNormal,
		focus:    paneCategories,
		catList:  l1,
		entList:  l2,
		search:   si,
		command:  ci,
		status:   "Loading…",
		focusDel: dFocus,
		blurDel:  dBlur,
	}
	m.updateFocusHeaders()
	return m
}

// Init loads both datasets concurrently.
func (m Model) Init() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	return tea.Batch(m.loadEntries(), m.loadCategories())
}

func (m *Model) loadEntries() tea.Cmd {
	loader, ctx := m.loader, m.ctx
	return func() tea.Msg {
		entries, err := loader.LoadEntries(ctx)
		if err != nil {
			return loadFailedMsg{dataset: selection.DatasetEntries, err: err}
		}
		return entriesLoadedMsg{entries}
	}
}

func (m *Model) loadCategories() tea.Cmd {
	loader, ctx := m.loader, m.ctx
	return func() tea.Msg {
		categories, err := loader.LoadCategories(ctx)
		if err != nil {
			return loadFailedMsg{dataset: selection.DatasetCategories, err: err}
		}
		return categoriesLoadedMsg{categories}
	}
}

// messages
type loadFailedMsg struct {
	dataset selection.Dataset
	err     error
}
type entriesLoadedMsg struct{ entries []catalog.Entry }
type categoriesLoadedMsg struct{ categories []catalog.Category }

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case loadFailedMsg:
		m.ctrl.LoadFailed(msg.dataset, msg.err)
		m.status = "Load failed"
		m.sync(&cmds)
	case entriesLoadedMsg:
		m.ctrl.SetEntries(msg.entries)
		m.afterLoad(&cmds)
	case categoriesLoadedMsg:
		m.ctrl.SetCategories(msg.categories)
		m.afterLoad(&cmds)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeSearch:
			m.handleSearchKey(msg, &cmds)
		case modeCommand:
			m.handleCommandKey(msg, &cmds)
		case modeNormal:
			m.handleNormalKey(msg, &cmds)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) afterLoad(cmds *[]tea.Cmd) {
	if m.ctrl.Status() == selection.StatusReady {
		m.status = "Ready"
		if e, ok := m.ctrl.SelectedEntry(); ok {
			m.status = "Restored " + e.Name
		}
	}
	m.sync(cmds)
}

func (m *Model) handleSearchKey(msg tea.KeyMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "tab":
		m.mode = modeNormal
		m.search.Blur()
		return
	}
	prev := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	*cmds = append(*cmds, cmd)
	if v := m.search.Value(); v != prev {
		m.ctrl.OnSearchTextChanged(v)
		m.sync(cmds)
	}
}

func (m *Model) handleCommandKey(msg tea.KeyMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		input := strings.TrimSpace(m.command.Value())
		switch input {
		case "q", "quit", "exit":
			*cmds = append(*cmds, tea.Quit)
		case "clear":
			m.clearSearch(cmds)
			m.status = "Search cleared"
		case "":
			// nothing
		default:
			m.status = fmt.Sprintf("Unknown command: %s", input)
		}
		m.mode = modeNormal
		m.command.Reset()
		m.command.Blur()
	case "esc":
		m.mode = modeNormal
		m.command.Reset()
		m.command.Blur()
		m.status = "Command cancelled"
	default:
		var cmd tea.Cmd
		m.command, cmd = m.command.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case ":":
		m.mode = modeCommand
		m.command.Reset()
		*cmds = append(*cmds, m.command.Focus(), textinput.Blink)
		m.status = "COMMAND: :q quit, :clear reset search"
	case "/":
		m.mode = modeSearch
		m.search.CursorEnd()
		*cmds = append(*cmds, m.search.Focus(), textinput.Blink)
	case "esc":
		if m.search.Value() != "" {
			m.clearSearch(cmds)
			m.status = "Search cleared"
		}

	// pane focus
	case "h", "left":
		m.focus = paneCategories
		m.updateFocusHeaders()
	case "l", "right", "tab":
		m.focus = paneEntries
		m.updateFocusHeaders()

	// movement
	case "j", "down":
		m.focused().CursorDown()
	case "k", "up":
		m.focused().CursorUp()
	case "g", "home":
		m.focused().Select(0)
	case "G", "end":
		l := m.focused()
		l.Select(len(l.Items()) - 1)

	// selection
	case "enter", " ":
		m.selectCurrent(cmds)

	case "?":
		m.mode = modeHelp
	case "q":
		m.status = "Use :q or ctrl+c to quit"
	}
}

func (m *Model) focused() *list.Model {
	if m.focus == paneCategories {
		return &m.catList
	}
	return &m.entList
}

func (m *Model) selectCurrent(cmds *[]tea.Cmd) {
	switch m.focus {
	case paneCategories:
		it, ok := m.catList.SelectedItem().(categoryItem)
		if !ok {
			return
		}
		m.ctrl.OnCategorySelected(it.c)
		if cat, ok := m.ctrl.SelectedCategory(); ok {
			m.status = "Type " + cat.Name
		}
	case paneEntries:
		it, ok := m.entList.SelectedItem().(entryItem)
		if !ok {
			return
		}
		m.ctrl.OnEntrySelected(it.e)
		m.status = "Selected " + it.e.Name
	}
	m.sync(cmds)
}

func (m *Model) clearSearch(cmds *[]tea.Cmd) {
	m.search.Reset()
	m.ctrl.OnSearchTextChanged("")
	m.sync(cmds)
}

// sync rebuilds both lists from the controller's derived views and keeps the
// cursors on the selected category and entry when they are visible.
func (m *Model) sync(cmds *[]tea.Cmd) {
	cats := m.ctrl.FilteredCategories()
	catItems := make([]list.Item, 0, len(cats))
	catIdx := -1
	selCat, hasCat := m.ctrl.SelectedCategory()
	for i, c := range cats {
		catItems = append(catItems, categoryItem{c: c})
		if hasCat && c.ID == selCat.ID && catIdx < 0 {
			catIdx = i
		}
	}
	*cmds = append(*cmds, m.catList.SetItems(catItems))
	if catIdx >= 0 {
		m.catList.Select(catIdx)
	} else if m.catList.Index() >= len(catItems) {
		m.catList.Select(0)
	}

	entries := m.ctrl.FilteredEntries()
	entItems := make([]list.Item, 0, len(entries))
	entIdx := -1
	selEntry, hasEntry := m.ctrl.SelectedEntry()
	for i, e := range entries {
		entItems = append(entItems, entryItem{e: e})
		if hasEntry && e.ID == selEntry.ID && entIdx < 0 {
			entIdx = i
		}
	}
	*cmds = append(*cmds, m.entList.SetItems(entItems))
	if entIdx >= 0 {
		m.entList.Select(entIdx)
	} else if m.entList.Index() >= len(entItems) {
		m.entList.Select(0)
	}
	m.updateFocusHeaders()
}

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")).Padding(0, 1)
	detailStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the two lists, the detail panel and the footer
func (m Model) View() string {
	gap := lipgloss.NewStyle().Padding(0, 1).Render
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.catList.View(), gap(" "), m.entList.View(), gap(" "), m.detailView())

	if m.ctrl.Status() == selection.StatusFailed {
		body = bannerStyle.Render("Load failed: "+errString(m.ctrl.Err())) + "\n\n" + body
	}

	switch m.mode {
	case modeCommand:
		body += "\n\n" + m.command.View()
	case modeHelp:
		help := "Keys: ←/→ switch panes, ↑/↓ move, g/G top/bottom, enter select, / search, esc clear search, :clear, :q quit"
		body += "\n\n" + lipgloss.NewStyle().Italic(true).Render(help)
	default:
		body += "\n\n" + m.search.View()
	}

	modeStr := map[mode]string{modeNormal: "NORMAL", modeSearch: "SEARCH", modeCommand: "CMD", modeHelp: "HELP"}[m.mode]
	status := faintStyle.Render(fmt.Sprintf("[%s] %s (%s)", modeStr, m.status, m.ctrl.Status()))
	return body + "\n\n" + status
}

func (m Model) detailView() string {
	width := m.detailWidth()
	e, ok := m.ctrl.SelectedEntry()
	if !ok {
		return detailStyle.Width(width).Render(faintStyle.Render("No pokémon selected"))
	}
	dir := m.ctrl.Directory()
	lines := []string{
		labelStyle.Render(fmt.Sprintf("#%03d %s", e.ID, e.Name)),
		"",
		labelStyle.Render("Types:   ") + strings.Join(dir.CategoryNames(e), ", "),
		labelStyle.Render("Attack:  ") + e.Attack,
		labelStyle.Render("Defense: ") + e.Defense,
		labelStyle.Render("HP:      ") + fmt.Sprintf("%d (%s)", e.HP, catalog.Level(e.HP)),
	}
	if desc := strings.TrimSpace(e.Description); desc != "" {
		lines = append(lines, "", wordwrap.String(desc, width-4))
	}
	if e.ImageURL != "" {
		lines = append(lines, "", faintStyle.Render(e.ImageURL))
	}
	return detailStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func errString(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// Run launches the program and blocks until it exits.
func Run(ctrl *selection.Controller, loader Loader) error {
	p := tea.NewProgram(New(ctrl, loader), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// applySizes recalculates list sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	// Leave room for search and status lines
	height := m.termHeight - 6
	if height < 5 {
		height = 5
	}
	m.catList.SetSize(22, height)
	m.entList.SetSize(30, height)
}

func (m Model) detailWidth() int {
	width := m.termWidth - 22 - 30 - 8
	if width < 30 {
		width = 30
	}
	return width
}

// updateFocusHeaders updates pane titles to reflect which pane is focused.
func (m *Model) updateFocusHeaders() {
	// Use fixed-width 2-char prefix to avoid layout shift when focus changes.
	const on = "» "
	const off = "  "
	catTitle := "Types"
	if cat, ok := m.ctrl.SelectedCategory(); ok {
		catTitle = "Types [" + cat.Name + "]"
	}
	entTitle := fmt.Sprintf("Pokémon (%d)", len(m.entList.Items()))
	if m.focus == paneCategories {
		m.catList.Title = on + catTitle
		m.entList.Title = off + entTitle
		m.catList.SetDelegate(m.focusDel)
		m.entList.SetDelegate(m.blurDel)
	} else {
		m.catList.Title = off + catTitle
		m.entList.Title = on + entTitle
		m.catList.SetDelegate(m.blurDel)
		m.entList.SetDelegate(m.focusDel)
	}
}
