package ui

// Tier is a title font-size category derived from the viewport width.
type Tier int

const (
	TierSmall Tier = iota
	TierMedium
	TierLarge
)

// Viewport widths, in pixels, at which the next tier starts.
const (
	MediumMinWidth = 600
	LargeMinWidth  = 900
)

// TierForWidth maps a viewport width to a tier. Non-positive widths are
// treated as the smallest tier.
func TierForWidth(width int) Tier {
	switch {
	case width >= LargeMinWidth:
		return TierLarge
	case width >= MediumMinWidth:
		return TierMedium
	default:
		return TierSmall
	}
}

// FontSize is the title point size for the tier.
func (t Tier) FontSize() int {
	switch t {
	case TierLarge:
		return 50
	case TierMedium:
		return 40
	default:
		return 25
	}
}

func (t Tier) String() string {
	switch t {
	case TierLarge:
		return "large"
	case TierMedium:
		return "medium"
	default:
		return "small"
	}
}
