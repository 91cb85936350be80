package survey

import (
	"fmt"

	"DesiresAfterDuties/pkg/text"
	"DesiresAfterDuties/pkg/ui"
)

// Questionnaire is the question flow shown once the survey has started.
// It owns its own sub-states; the controller only forwards language changes
// and displays its root content.
type Questionnaire interface {
	UpdateLanguage(lang text.Language)
	RootContent() ui.Node
}

// Factory builds a questionnaire in lang. onComplete must be invoked once
// when the respondent finishes.
type Factory func(lang text.Language, onComplete func()) (Questionnaire, error)

// ConstructionError reports that the questionnaire could not be built.
type ConstructionError struct {
	Language text.Language
	Err      error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("build questionnaire (%s): %v", e.Language, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
