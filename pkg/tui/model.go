// Package tui hosts the survey in a Bubble Tea terminal program.
package tui

import (
	"strings"

	"DesiresAfterDuties/pkg/animation"
	"DesiresAfterDuties/pkg/survey"
	"DesiresAfterDuties/pkg/text"
	"DesiresAfterDuties/pkg/ui"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// frameMsg advances the title gradient by one step.
type frameMsg struct{}

// surface counts repaint requests from the controller. Bubble Tea redraws
// after every Update, so the count is all it needs to keep.
type surface struct {
	revisions int
}

func (s *surface) RequestRepaint() { s.revisions++ }

// Options configures the host.
type Options struct {
	// CellWidth is the pixel width assumed for one terminal column when
	// mapping the window to a title size tier.
	CellWidth int
	// LogTail returns the last n lines of the log for the console panel.
	LogTail func(n int) string
}

// Model is the Bubble Tea model for the survey screen.
type Model struct {
	controller *survey.Controller
	gradient   *animation.Gradient
	surface    *surface
	console    *console
	confirm    *confirmDialog

	keys      keyMap
	help      help.Model
	focus     int
	width     int
	height    int
	cellWidth int
}

// NewModel attaches a new surface to controller and returns the model
// rendering it. The gradient should be the controller's title sink.
func NewModel(controller *survey.Controller, gradient *animation.Gradient, opts Options) Model {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 10
	}

	m := Model{
		controller: controller,
		gradient:   gradient,
		surface:    &surface{},
		console:    newConsole(opts.LogTail),
		confirm:    newConfirmDialog(func() tea.Cmd { return tea.Quit }),
		keys:       newKeyMap(),
		help:       help.New(),
		cellWidth:  opts.CellWidth,
	}
	controller.Attach(m.surface)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(text.Title)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.console.SetSize(msg.Width, msg.Height)
		m.controller.OnViewportResize(msg.Width * m.cellWidth)
		return m, nil

	case frameMsg:
		if m.gradient != nil {
			m.gradient.Advance()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.confirm.IsActive() {
		return m, m.confirm.Update(msg)
	}
	if m.console.IsActive() {
		return m, m.console.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		if m.inProgress() {
			m.confirm.Show(m.controller.Language())
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.toggleLang):
		m.controller.SetLanguageIndex(m.controller.Language().Other().SelectorIndex())
		m.clampFocus()

	case key.Matches(msg, m.keys.english):
		m.controller.SetLanguage(text.EN)
		m.clampFocus()

	case key.Matches(msg, m.keys.bangla):
		m.controller.SetLanguage(text.BN)
		m.clampFocus()

	case key.Matches(msg, m.keys.up):
		m.moveFocus(-1)

	case key.Matches(msg, m.keys.down):
		m.moveFocus(1)

	case key.Matches(msg, m.keys.activate):
		m.activate()

	case key.Matches(msg, m.keys.console):
		m.console.Open()

	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// inProgress reports whether quitting would drop unfinished answers.
func (m Model) inProgress() bool {
	return m.controller.Page() == survey.PageQuestionnaire &&
		m.controller.Questionnaire() != nil &&
		!m.controller.Completed()
}

func (m *Model) moveFocus(delta int) {
	n := len(ui.Buttons(m.controller.Content()))
	if n == 0 {
		m.focus = 0
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

func (m *Model) clampFocus() {
	n := len(ui.Buttons(m.controller.Content()))
	if m.focus >= n {
		m.focus = 0
	}
}

// activate runs the focused button. Questionnaire buttons change the
// questionnaire's own state, so the controller is refreshed afterwards to
// pick up its new root content.
func (m *Model) activate() {
	buttons := ui.Buttons(m.controller.Content())
	if m.focus >= len(buttons) {
		return
	}

	live := m.controller.Page() == survey.PageQuestionnaire && m.controller.Questionnaire() != nil
	buttons[m.focus].Activate()
	if live {
		m.controller.Refresh()
	}
	m.focus = 0
}

// Focus returns the index of the focused button.
func (m Model) Focus() int {
	return m.focus
}

// Revisions returns how many repaints the controller has requested.
func (m Model) Revisions() int {
	return m.surface.revisions
}

// View implements tea.Model.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = DefaultWidth
	}

	if m.confirm.IsActive() {
		return m.place(m.confirm.View())
	}
	if m.console.IsActive() {
		return m.place(m.console.View())
	}

	var sections []string

	title := text.Title
	if m.gradient != nil {
		title = m.gradient.Render(title)
	}
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, m.selectorView()))

	cw := contentWidth(width)
	card := CardStyle.Width(cw + CardChrome).Render(renderNodes(m.controller.Content(), cw, m.focus))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	sections = append(sections, HelpStyle.Render(m.help.View(m.keys)))

	return strings.Join(sections, "\n")
}

// selectorView draws the two-segment language selector.
func (m Model) selectorView() string {
	segments := make([]string, 0, len(text.Languages))
	for _, lang := range text.Languages {
		style := SegmentStyle
		if lang == m.controller.Language() {
			style = ActiveSegmentStyle
		}
		segments = append(segments, style.Render(lang.SelectorLabel()))
	}
	return SelectorBorderStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, segments...))
}

func (m Model) place(s string) string {
	if m.width <= 0 || m.height <= 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}
