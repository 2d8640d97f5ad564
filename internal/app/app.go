package app

import (
	"fmt"
	"log"

	"github.com/avitaltamir/focuswrap/internal/components/button"
	"github.com/avitaltamir/focuswrap/internal/components/container"
	"github.com/avitaltamir/focuswrap/internal/components/flex"
	"github.com/avitaltamir/focuswrap/internal/components/space"
	"github.com/avitaltamir/focuswrap/internal/components/text"
	"github.com/avitaltamir/focuswrap/internal/components/textfield"
	"github.com/avitaltamir/focuswrap/internal/inspect"
	"github.com/avitaltamir/focuswrap/internal/layout"
	"github.com/avitaltamir/focuswrap/internal/state"
	"github.com/avitaltamir/focuswrap/internal/theme"
	"github.com/avitaltamir/focuswrap/internal/widget"
	"github.com/avitaltamir/focuswrap/internal/widget/focuswrap"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Version is the application version, set at build time via ldflags
var Version = "dev"

// TextInputID names the text field for focus operations.
const TextInputID = "text_input"

const (
	padding = 1
	spacing = 1

	// minInspectorWidth is the narrowest inspector panel worth showing.
	minInspectorWidth = 24
)

// Model is the root application model.
type Model struct {
	// Application data
	text    string
	focused bool

	// Retained widget state, kept between frames
	tree      *widget.Tree
	cursor    widget.Cursor
	renderer  *widget.Renderer
	clipboard widget.Clipboard

	keys KeyMap
	help help.Model

	// State persistence
	prefs     state.State
	statePath string
	watcher   *state.Watcher

	// Status bar
	status    string
	statusErr bool

	// Window dimensions
	width  int
	height int
	ready  bool
}

// Option configures a Model.
type Option func(*Model)

// WithStatePath stores preferences at path instead of the default location.
func WithStatePath(path string) Option {
	return func(m *Model) {
		m.statePath = path
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(cb widget.Clipboard) Option {
	return func(m *Model) {
		m.clipboard = cb
	}
}

// New creates a new application model.
func New(opts ...Option) Model {
	m := Model{
		renderer: widget.NewRenderer(layout.Size{}),
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	if widget.SystemClipboardSupported() {
		m.clipboard = widget.SystemClipboard{}
	} else {
		m.clipboard = &widget.MemoryClipboard{}
	}
	for _, opt := range opts {
		opt(&m)
	}

	if m.statePath == "" {
		if path, err := state.Path(); err == nil {
			m.statePath = path
		}
	}
	if m.statePath != "" {
		m.prefs = state.LoadFrom(m.statePath)
		w, err := state.NewWatcher(m.statePath)
		if err != nil {
			log.Printf("app: %v", err)
		} else {
			m.watcher = w
		}
	} else {
		m.prefs = state.DefaultState()
	}

	// Apply saved theme
	theme.SetThemeIndex(m.prefs.ThemeIndex)

	m.tree = widget.NewTree(m.root())
	return m
}

// Init focuses the text field and starts following the state file.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{operate(widget.Focus(TextInputID))}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.Next())
	}
	return tea.Batch(cmds...)
}

func operate(op widget.Operation) tea.Cmd {
	return func() tea.Msg {
		return operateMsg{op: op}
	}
}

// Update handles host messages and dispatches everything else to the widgets.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m = m.saveState()
			m.close()
			return m, tea.Quit

		case key.Matches(msg, m.keys.FocusNext):
			return m, operate(widget.FocusNext())

		case key.Matches(msg, m.keys.FocusPrev):
			return m, operate(widget.FocusPrevious())

		case key.Matches(msg, m.keys.Unfocus):
			return m, operate(widget.Unfocus())

		case key.Matches(msg, m.keys.NextTheme):
			t := theme.NextTheme()
			m.prefs.ThemeIndex = theme.CurrentThemeIndex()
			m.status = "Theme: " + t.Name
			m.statusErr = false
			m = m.saveState()
			return m, nil

		case key.Matches(msg, m.keys.Inspector):
			m.prefs.ShowInspector = !m.prefs.ShowInspector
			m = m.saveState()
			return m, nil
		}
		return m.dispatch(msg)

	case operateMsg:
		return m.runOperation(msg.op)

	case state.ChangedMsg:
		var cmd tea.Cmd
		if m.watcher != nil {
			cmd = m.watcher.Next()
		}
		if msg.Err != nil {
			m.status = msg.Err.Error()
			m.statusErr = true
			return m, cmd
		}
		m.prefs = msg.State
		theme.SetThemeIndex(m.prefs.ThemeIndex)
		return m, cmd

	case TextInputMsg, TextInputFocusedMsg, ClearMsg, FocusMsg, StatusMsg, ErrorMsg:
		return m.apply(msg)
	}

	return m.dispatch(msg)
}

// apply handles the application messages published by widgets.
func (m Model) apply(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TextInputMsg:
		m.text = msg.Value

	case TextInputFocusedMsg:
		log.Printf("app: text field focused=%t", msg.Focused)
		m.focused = msg.Focused

	case ClearMsg:
		m.text = ""

	case FocusMsg:
		return m, operate(widget.Focus(TextInputID))

	case StatusMsg:
		m.status = msg.Text
		m.statusErr = false

	case ErrorMsg:
		m.status = msg.Err.Error()
		m.statusErr = true
	}
	return m, nil
}

// build reconciles the retained tree with the view of the current model.
func (m Model) build() *widget.UserInterface {
	ui := widget.Build(m.root(), m.canvasSize(), m.tree, m.renderer)
	ui.SetCursor(m.cursor)
	return ui
}

// dispatch feeds the events to the widget tree and applies every message
// the widgets published, in order.
func (m Model) dispatch(events ...widget.Event) (Model, tea.Cmd) {
	ui := m.build()
	_, msgs, cmd := ui.Update(events, m.clipboard)
	m.tree = ui.Tree()
	m.cursor = ui.Cursor()

	cmds := []tea.Cmd{cmd}
	for _, msg := range msgs {
		var c tea.Cmd
		m, c = m.apply(msg)
		cmds = append(cmds, c)
	}
	return m, tea.Batch(cmds...)
}

// runOperation applies op and lets the widgets observe its effect.
func (m Model) runOperation(op widget.Operation) (Model, tea.Cmd) {
	ui := m.build()
	ui.Operate(op)
	m.tree = ui.Tree()
	return m.dispatch(widget.OperatedMsg{})
}

// root builds the widget tree for the current model.
func (m Model) root() widget.Element {
	label := "Would you please focus?"
	if m.focused {
		label = fmt.Sprintf("Character count: %d", len(m.text))
	}

	field := textfield.New(m.prefs.Placeholder, m.text).
		ID(TextInputID).
		OnInput(func(s string) tea.Msg { return TextInputMsg{Value: s} })
	wrapped := focuswrap.Wrap(field.Element(),
		func(focused bool) tea.Msg { return TextInputFocusedMsg{Focused: focused} },
		focuswrap.WithLogger(log.Default()))

	buttons := flex.Row(
		space.Horizontal(layout.Fill).Element(),
		button.New("Focus").OnPress(FocusMsg{}).Element(),
		button.New("Clear").OnPress(ClearMsg{}).Element(),
	).Spacing(spacing).WithWidth(layout.Fill)

	column := flex.Column(
		text.New(label).Element(),
		wrapped.Element(),
		buttons.Element(),
	).Spacing(spacing).WithWidth(layout.Fill)

	return container.New(column.Element()).
		Padding(padding).
		WithWidth(layout.Fill).
		WithHeight(layout.Fill).
		Background().
		Element()
}

// inspectorWidth returns the width of the inspector panel, or 0 when hidden.
func (m Model) inspectorWidth() int {
	if !m.prefs.ShowInspector {
		return 0
	}
	w := m.width / 2
	if w < minInspectorWidth {
		return 0
	}
	return w
}

// canvasSize returns the room left for the widget tree.
func (m Model) canvasSize() layout.Size {
	return layout.Size{
		Width:  max(m.width-m.inspectorWidth(), 0),
		Height: max(m.height-1, 0),
	}
}

// View renders the widget tree, the inspector and the status bar.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	th := theme.CurrentTheme()
	ui := m.build()
	view := ui.Draw(th, widget.Style{Foreground: th.Colors.TextPrimary})

	if w := m.inspectorWidth(); w > 0 {
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, m.renderInspector(ui, w))
	}

	return lipgloss.JoinVertical(lipgloss.Left, view, m.renderStatusBar())
}

// renderInspector renders the collected widget tree inside a panel.
func (m Model) renderInspector(ui *widget.UserInterface, width int) string {
	body, err := inspect.Render(ui, lipgloss.ColorProfile() != termenv.Ascii)
	if err != nil {
		body = theme.StatusBarError.Render(err.Error())
	}

	// Border takes two columns and two rows.
	style := theme.InspectorPanel.
		Width(width - 2).
		Height(max(m.height-3, 0)).
		MaxHeight(max(m.height-1, 0))
	return style.Render(theme.InspectorTitle.Render("Widget tree") + "\n" + body)
}

// renderStatusBar renders the status bar.
func (m Model) renderStatusBar() string {
	style := theme.StatusBarStyle.Width(m.width)
	right := theme.StatusBarHighlight.Render(theme.CurrentTheme().Name) + " │ " + Version

	var left string
	switch {
	case m.status != "" && m.statusErr:
		left = " " + theme.StatusBarError.Render(m.status)
	case m.status != "":
		left = " " + theme.StatusBarHighlight.Render(m.status)
	default:
		h := m.help
		h.Width = max(m.width-lipgloss.Width(right)-3, 0)
		h.Styles.ShortKey = theme.HelpKeyStyle
		h.Styles.ShortDesc = theme.HelpDescStyle
		h.Styles.ShortSeparator = theme.HelpSepStyle
		left = " " + h.View(m.keys)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 0 {
		gap = 0
	}

	return style.Render(left + lipgloss.NewStyle().Width(gap).Render("") + right)
}

// saveState persists the current preferences, reporting failures in the
// status bar.
func (m Model) saveState() Model {
	if m.statePath == "" {
		return m
	}
	if err := state.SaveTo(m.statePath, m.prefs); err != nil {
		log.Printf("app: %v", err)
		m.status = err.Error()
		m.statusErr = true
	}
	return m
}

func (m Model) close() {
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
}

// Text returns the current text field value.
func (m Model) Text() string {
	return m.text
}

// Focused returns the focus last reported by the focus wrapper.
func (m Model) Focused() bool {
	return m.focused
}
