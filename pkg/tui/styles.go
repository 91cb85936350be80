package tui

import "github.com/charmbracelet/lipgloss"

// Theme colors - "Blue Grey" palette matching the survey card
var (
	PrimaryColor   = lipgloss.Color("#6366F1") // Indigo 500
	SecondaryColor = lipgloss.Color("#90A4AE") // Blue Grey 300
	AccentColor    = lipgloss.Color("#F59E0B") // Amber 500
	SuccessColor   = lipgloss.Color("#10B981") // Emerald 500
	ErrorColor     = lipgloss.Color("#EF4444") // Red 500
	MutedColor     = lipgloss.Color("#64748B") // Slate 500

	BgBase   = lipgloss.Color("#000000")
	BgCard   = lipgloss.Color("#ECEFF1") // Blue Grey 50
	BgButton = lipgloss.Color("#B0BEC5") // Blue Grey 200

	TextPrimary = lipgloss.Color("#F8FAFC") // Slate 50
	TextCard    = lipgloss.Color("#263238") // Blue Grey 900
	TextSubtle  = lipgloss.Color("#607D8B") // Blue Grey 500
	TextMuted   = lipgloss.Color("#475569") // Slate 600
)

var (
	// Content card
	CardStyle = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(TextCard).
			Padding(1, 2)

	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextCard)

	SubheadingStyle = lipgloss.NewStyle().
			Foreground(TextSubtle)

	ParagraphStyle = lipgloss.NewStyle().
			Foreground(TextCard)

	IconLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextCard)

	DividerStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextCard).
			Background(BgButton).
			Padding(0, 2)

	FocusedButtonStyle = ButtonStyle.
				Foreground(TextPrimary).
				Background(PrimaryColor).
				Bold(true)

	ErrorMsgStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Language selector
	SegmentStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Padding(0, 2)

	ActiveSegmentStyle = SegmentStyle.
				Foreground(BgBase).
				Background(SecondaryColor).
				Bold(true)

	SelectorBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(SecondaryColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)
