package tui

// Layout constants for the survey screen
const (
	MinContentWidth = 20
	MaxContentWidth = 72
	CardChrome      = 4 // CardStyle horizontal padding
	DefaultWidth    = 80
	DefaultHeight   = 24
)

// contentWidth returns the text width inside the card for a terminal that
// is cols wide.
func contentWidth(cols int) int {
	if cols <= 0 {
		cols = DefaultWidth
	}
	w := cols - 2*CardChrome
	if w < MinContentWidth {
		w = MinContentWidth
	}
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	return w
}
