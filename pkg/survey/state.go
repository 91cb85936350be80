package survey

import "DesiresAfterDuties/pkg/ui"

// Page is the controller's current view.
type Page int

const (
	PageIntro Page = iota
	PageQuestionnaire
)

func (p Page) String() string {
	switch p {
	case PageIntro:
		return "intro"
	case PageQuestionnaire:
		return "questionnaire"
	}
	return "unknown"
}

// Surface is the display the controller is attached to.
type Surface interface {
	RequestRepaint()
}

// TitleSizer receives the title size tier on viewport changes.
type TitleSizer interface {
	SetTier(tier ui.Tier)
}
