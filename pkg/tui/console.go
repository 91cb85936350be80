package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// consoleLines is how much of the log tail the console reads on open.
const consoleLines = 200

// LogEntry is one parsed line of the survey log.
type LogEntry struct {
	Timestamp string
	Level     string
	Logger    string
	Source    string
	Message   string
}

// console is the log viewer behind the "check the console" hint shown when
// the questionnaire fails to load.
type console struct {
	table  table.Model
	active bool
	tail   func(n int) string
	logs   []LogEntry
	keys   consoleKeyMap
}

type consoleKeyMap struct {
	close    key.Binding
	up       key.Binding
	down     key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	reload   key.Binding
}

func (k consoleKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.close, k.up, k.down, k.reload}
}

func (k consoleKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.close, k.up, k.down},
		{k.pageUp, k.pageDown, k.reload},
	}
}

func newConsoleKeyMap() consoleKeyMap {
	return consoleKeyMap{
		close:    key.NewBinding(key.WithKeys("esc", "q", "c"), key.WithHelp("esc/q", "close")),
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		pageUp:   key.NewBinding(key.WithKeys("pgup", "u"), key.WithHelp("pgup/u", "page up")),
		pageDown: key.NewBinding(key.WithKeys("pgdown", "d"), key.WithHelp("pgdn/d", "page down")),
		reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

func newConsole(tail func(n int) string) *console {
	t := table.New(
		table.WithColumns(consoleColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(PrimaryColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(TextPrimary).
		Background(PrimaryColor).
		Bold(false)
	t.SetStyles(s)

	return &console{
		table: t,
		tail:  tail,
		keys:  newConsoleKeyMap(),
	}
}

func consoleColumns(width int) []table.Column {
	msgWidth := width - 10 - 7 - 24 - 8
	if msgWidth < 20 {
		msgWidth = 20
	}
	return []table.Column{
		{Title: "Time", Width: 10},
		{Title: "Level", Width: 7},
		{Title: "Source", Width: 24},
		{Title: "Message", Width: msgWidth},
	}
}

// Open reloads the log tail and shows the console.
func (c *console) Open() {
	c.reload()
	c.active = true
}

// Close hides the console.
func (c *console) Close() {
	c.active = false
}

// IsActive returns whether the console is shown.
func (c *console) IsActive() bool {
	return c.active
}

// Entries returns the parsed log lines currently loaded.
func (c *console) Entries() []LogEntry {
	return c.logs
}

// SetSize fits the table into a width x height terminal.
func (c *console) SetSize(width, height int) {
	w := width - 6
	if w < 60 {
		w = 60
	}
	c.table.SetColumns(consoleColumns(w))

	h := height - 10
	if h < 5 {
		h = 5
	}
	c.table.SetHeight(h)
}

func (c *console) reload() {
	c.logs = nil
	if c.tail != nil {
		c.logs = ParseLogLines(c.tail(consoleLines))
	}

	rows := make([]table.Row, 0, len(c.logs))
	for _, entry := range c.logs {
		levelStyle := lipgloss.NewStyle()
		switch entry.Level {
		case "ERROR", "DPANIC", "PANIC", "FATAL":
			levelStyle = levelStyle.Foreground(ErrorColor)
		case "WARN":
			levelStyle = levelStyle.Foreground(AccentColor)
		case "INFO":
			levelStyle = levelStyle.Foreground(SuccessColor)
		case "DEBUG":
			levelStyle = levelStyle.Foreground(MutedColor)
		}
		rows = append(rows, table.Row{
			entry.Timestamp,
			levelStyle.Render(entry.Level),
			entry.Source,
			entry.Message,
		})
	}
	c.table.SetRows(rows)
	c.table.GotoBottom()
}

// Update handles keys while the console is shown.
func (c *console) Update(msg tea.Msg) tea.Cmd {
	if !c.active {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, c.keys.close):
			c.Close()
			return nil
		case key.Matches(msg, c.keys.reload):
			c.reload()
			return nil
		}
	}

	var cmd tea.Cmd
	c.table, cmd = c.table.Update(msg)
	return cmd
}

// View renders the console box.
func (c *console) View() string {
	if !c.active {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		MarginBottom(1)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(0, 1)

	content := titleStyle.Render("Console") + "\n"
	if len(c.logs) == 0 {
		content += HelpStyle.Render("No log entries yet.")
	} else {
		content += c.table.View()
	}

	var hints []string
	for _, b := range c.keys.ShortHelp() {
		hints = append(hints, b.Help().Key+" "+b.Help().Desc)
	}
	content += "\n" + HelpStyle.Render(strings.Join(hints, " • "))

	return boxStyle.Render(content)
}

// ParseLogLines splits console-encoded zap output into entries. Named
// loggers add a name column between level and caller. Lines that do not
// start a record (stack traces) become rows with only a message.
func ParseLogLines(s string) []LogEntry {
	var entries []LogEntry
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 4 || !isLevel(parts[1]) {
			entries = append(entries, LogEntry{Message: strings.TrimSpace(line)})
			continue
		}

		entry := LogEntry{
			Timestamp: shortTime(parts[0]),
			Level:     parts[1],
		}
		rest := parts[2:]
		if len(rest) >= 3 && !isCaller(rest[0]) && isCaller(rest[1]) {
			entry.Logger = rest[0]
			rest = rest[1:]
		}
		entry.Source = rest[0]
		entry.Message = strings.Join(rest[1:], " ")
		entries = append(entries, entry)
	}
	return entries
}

// isCaller matches zap's short caller form, "dir/file.go:42".
func isCaller(s string) bool {
	i := strings.LastIndex(s, ".go:")
	if i <= 0 {
		return false
	}
	line := s[i+len(".go:"):]
	if line == "" {
		return false
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isLevel(s string) bool {
	switch s {
	case "DEBUG", "INFO", "WARN", "ERROR", "DPANIC", "PANIC", "FATAL":
		return true
	}
	return false
}

// shortTime reduces an ISO8601 timestamp to its clock part.
func shortTime(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i >= 0 && len(ts) >= i+9 {
		return ts[i+1 : i+9]
	}
	return ts
}
