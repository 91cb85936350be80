package tui

import (
	"DesiresAfterDuties/pkg/text"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmText struct {
	title   string
	message string
}

// Answers only live in memory, so leaving mid-survey loses them.
var leaveText = map[text.Language]confirmText{
	text.EN: {
		title:   "Leave the survey?",
		message: "Your answers are not saved.",
	},
	text.BN: {
		title:   "জরিপ ছেড়ে যাবেন?",
		message: "আপনার উত্তর সংরক্ষণ করা হয়নি।",
	},
}

// confirmDialog asks before quitting an unfinished questionnaire.
type confirmDialog struct {
	active    bool
	lang      text.Language
	onConfirm func() tea.Cmd
	keys      confirmKeyMap
}

type confirmKeyMap struct {
	confirm key.Binding
	cancel  key.Binding
}

func newConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		confirm: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y/enter", "leave")),
		cancel:  key.NewBinding(key.WithKeys("n", "esc", "q"), key.WithHelp("n/esc", "stay")),
	}
}

func newConfirmDialog(onConfirm func() tea.Cmd) *confirmDialog {
	return &confirmDialog{
		onConfirm: onConfirm,
		keys:      newConfirmKeyMap(),
	}
}

// Show opens the dialog in lang.
func (d *confirmDialog) Show(lang text.Language) {
	d.lang = lang
	d.active = true
}

func (d *confirmDialog) Hide() {
	d.active = false
}

func (d *confirmDialog) IsActive() bool {
	return d.active
}

// Update handles keys while the dialog is open.
func (d *confirmDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.active {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, d.keys.confirm):
		d.Hide()
		if d.onConfirm != nil {
			return d.onConfirm()
		}
	case key.Matches(keyMsg, d.keys.cancel):
		d.Hide()
	}
	return nil
}

func (d *confirmDialog) View() string {
	if !d.active {
		return ""
	}

	t, ok := leaveText[d.lang]
	if !ok {
		t = leaveText[text.EN]
	}

	dialogStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ErrorColor).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().
		Foreground(ErrorColor).
		Bold(true).
		MarginBottom(1)

	content := titleStyle.Render(t.title) + "\n"
	content += t.message + "\n\n"
	content += HelpStyle.Render(d.keys.confirm.Help().Key + " " + d.keys.confirm.Help().Desc +
		" • " + d.keys.cancel.Help().Key + " " + d.keys.cancel.Help().Desc)

	return dialogStyle.Render(content)
}
