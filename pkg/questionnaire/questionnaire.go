// Package questionnaire implements the general information question flow
// shown after the survey's intro page.
package questionnaire

import (
	"fmt"

	"DesiresAfterDuties/pkg/logger"
	"DesiresAfterDuties/pkg/survey"
	"DesiresAfterDuties/pkg/text"
	"DesiresAfterDuties/pkg/ui"
	"DesiresAfterDuties/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/text/message"
)

// Questionnaire walks the respondent through a bank of multiple-choice
// questions. Answers are kept in memory only.
type Questionnaire struct {
	bank       *Bank
	lang       text.Language
	current    int
	answers    map[string]int
	done       bool
	onComplete func()
	log        *zap.Logger
}

var _ survey.Questionnaire = (*Questionnaire)(nil)

// New creates a questionnaire over bank in lang. It fails if the bank is
// empty or incomplete for lang.
func New(bank *Bank, lang text.Language, onComplete func()) (*Questionnaire, error) {
	if bank == nil {
		return nil, ErrEmptyBank
	}
	if err := bank.Validate(lang); err != nil {
		return nil, err
	}
	return &Questionnaire{
		bank:       bank,
		lang:       lang,
		answers:    make(map[string]int, len(bank.Questions)),
		onComplete: onComplete,
		log:        logger.Named("questionnaire"),
	}, nil
}

// NewFactory returns a survey.Factory that loads the bank from path (the
// embedded bank when empty) on every construction, so a retry picks up a
// fixed file.
func NewFactory(path string, retry utils.RetryConfig) survey.Factory {
	return func(lang text.Language, onComplete func()) (survey.Questionnaire, error) {
		bank, err := LoadBank(path, retry)
		if err != nil {
			return nil, err
		}
		q, err := New(bank, lang, onComplete)
		if err != nil {
			return nil, err
		}
		return q, nil
	}
}

// UpdateLanguage switches the display language, keeping progress. Strings
// missing in lang fall back to English.
func (q *Questionnaire) UpdateLanguage(lang text.Language) {
	q.lang = lang
}

// Language returns the display language.
func (q *Questionnaire) Language() text.Language {
	return q.lang
}

// Progress returns the zero-based index of the current question and the
// number of questions.
func (q *Questionnaire) Progress() (int, int) {
	return q.current, len(q.bank.Questions)
}

// Done reports whether every question has been answered.
func (q *Questionnaire) Done() bool {
	return q.done
}

// Answers returns the chosen option index per question id.
func (q *Questionnaire) Answers() map[string]int {
	out := make(map[string]int, len(q.answers))
	for k, v := range q.answers {
		out[k] = v
	}
	return out
}

// Answer records option for the current question and advances. Answering
// the last question completes the questionnaire.
func (q *Questionnaire) Answer(option int) error {
	if q.done {
		return fmt.Errorf("questionnaire already complete")
	}
	question := q.bank.Questions[q.current]
	if option < 0 || option >= len(question.Options) {
		return fmt.Errorf("question %q has no option %d", question.ID, option)
	}

	q.answers[question.ID] = option
	if q.current < len(q.bank.Questions)-1 {
		q.current++
		return nil
	}

	q.done = true
	if q.onComplete != nil {
		q.onComplete()
	}
	return nil
}

// Back returns to the previous question.
func (q *Questionnaire) Back() {
	if q.done || q.current == 0 {
		return
	}
	q.current--
}

// RootContent renders the current question, or the closing message.
func (q *Questionnaire) RootContent() ui.Node {
	msgs := q.bank.Messages
	if q.done {
		return ui.Column(ui.Heading(msgs.Thanks.Get(q.lang)))
	}

	question := q.bank.Questions[q.current]
	p := message.NewPrinter(q.lang.Tag())

	children := []ui.Node{
		ui.Subheading(p.Sprintf(msgs.Progress.Get(q.lang), q.current+1, len(q.bank.Questions))),
		ui.Heading(question.Prompt.Get(q.lang)),
		ui.Divider(),
	}
	for i, opt := range question.Options {
		i := i
		children = append(children, ui.Button(opt.Get(q.lang), func() {
			if err := q.Answer(i); err != nil {
				q.log.Warn("answer rejected", zap.String("question", question.ID), zap.Error(err))
			}
		}))
	}
	if q.current > 0 {
		children = append(children, ui.Divider(), ui.Button(msgs.Back.Get(q.lang), q.Back))
	}
	return ui.Column(children...)
}
