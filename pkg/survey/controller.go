// Package survey implements the page-state controller behind the survey
// screen: the intro page, the questionnaire page and the language switch.
package survey

import (
	"errors"
	"fmt"

	"DesiresAfterDuties/pkg/text"
	"DesiresAfterDuties/pkg/ui"

	"go.uber.org/zap"
)

// Fallback content shown when the questionnaire cannot be built.
const (
	LoadErrorMessage = "Error loading survey. Please check the console for details."
	RetryLabel       = "Retry"
)

var errNoFactory = errors.New("no questionnaire factory configured")

// Option configures a Controller.
type Option func(*Controller)

// WithLanguage sets the starting language.
func WithLanguage(lang text.Language) Option {
	return func(c *Controller) {
		c.language = lang
	}
}

// WithFactory sets how the questionnaire is built.
func WithFactory(f Factory) Option {
	return func(c *Controller) {
		c.factory = f
	}
}

// WithTitle sets the element that receives the title size tier.
func WithTitle(t TitleSizer) Option {
	return func(c *Controller) {
		c.title = t
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller owns the survey's page state and rebuilds the visible content
// whenever the page or language changes. All methods must be called from
// the host's event loop.
type Controller struct {
	language      text.Language
	page          Page
	completed     bool
	questionnaire Questionnaire
	initialized   bool

	surface Surface
	content []ui.Node
	tier    ui.Tier
	lastErr error

	factory Factory
	title   TitleSizer
	log     *zap.Logger
}

// New creates a controller on the intro page. Content is built right away
// but no repaint is requested until Attach.
func New(opts ...Option) *Controller {
	c := &Controller{
		language: text.Default,
		page:     PageIntro,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if !c.language.Valid() {
		panic(fmt.Sprintf("survey: invalid language %d", int(c.language)))
	}
	c.Refresh()
	return c
}

// Attach binds the controller to its display surface and renders. Only
// the first call has any effect.
func (c *Controller) Attach(surface Surface) {
	if c.initialized || surface == nil {
		return
	}
	c.surface = surface
	c.initialized = true
	c.log.Debug("survey attached", zap.Stringer("page", c.page), zap.Stringer("language", c.language))
	c.Refresh()
}

// SetLanguage switches the display language and refreshes the current
// page. The page and an existing questionnaire are kept.
func (c *Controller) SetLanguage(lang text.Language) {
	if !lang.Valid() {
		panic(fmt.Sprintf("survey: invalid language %d", int(lang)))
	}
	c.language = lang
	c.log.Info("language changed", zap.Stringer("language", lang), zap.Stringer("page", c.page))
	c.Refresh()
}

// SetLanguageIndex applies a selection from the language selector, whose
// segments carry "0" (English) and "1" (Bengali). Other values are ignored.
func (c *Controller) SetLanguageIndex(idx string) bool {
	lang, ok := text.FromSelectorIndex(idx)
	if !ok {
		c.log.Warn("ignoring unknown language selector value", zap.String("value", idx))
		return false
	}
	c.SetLanguage(lang)
	return true
}

// StartSurvey moves to the questionnaire page. An existing questionnaire
// is reused.
func (c *Controller) StartSurvey() {
	if c.page != PageIntro {
		c.log.Debug("start requested outside intro page", zap.Stringer("page", c.page))
	}
	c.page = PageQuestionnaire
	c.log.Info("survey started", zap.Stringer("language", c.language))
	c.Refresh()
}

// OnSurveyComplete is handed to the questionnaire as its completion
// callback. The page does not change.
func (c *Controller) OnSurveyComplete() {
	if c.completed {
		return
	}
	c.completed = true
	c.log.Info("survey completed", zap.Stringer("language", c.language))
}

// OnViewportResize picks the title size tier for a viewport width in
// pixels, applies it to the title and requests a repaint.
func (c *Controller) OnViewportResize(width int) ui.Tier {
	c.tier = ui.TierForWidth(width)
	if c.title != nil {
		c.title.SetTier(c.tier)
	}
	c.repaint()
	return c.tier
}

// Refresh clears and rebuilds the content for the current page.
func (c *Controller) Refresh() {
	c.content = c.content[:0]
	switch c.page {
	case PageIntro:
		c.content = append(c.content, c.introContent()...)
	case PageQuestionnaire:
		c.content = append(c.content, c.questionnaireContent()...)
	}
	c.repaint()
}

func (c *Controller) repaint() {
	if c.initialized {
		c.surface.RequestRepaint()
	}
}

func (c *Controller) introContent() []ui.Node {
	t := text.Lookup(c.language)
	return []ui.Node{
		ui.Heading(t.Welcome),
		ui.Subheading(t.Request),
		ui.Justified(t.Description),
		ui.IconRow(
			ui.IconLabel{Icon: ui.IconTimer, Label: t.Time},
			ui.IconLabel{Icon: ui.IconEncryption, Label: t.Anonymous},
		),
		ui.Divider(),
		ui.Button(t.Button, c.StartSurvey),
	}
}

func (c *Controller) questionnaireContent() []ui.Node {
	if c.questionnaire != nil {
		c.questionnaire.UpdateLanguage(c.language)
		return []ui.Node{c.questionnaire.RootContent()}
	}

	q, err := c.buildQuestionnaire()
	if err != nil {
		c.lastErr = err
		c.log.Error("error loading questionnaire", zap.Error(err))
		return []ui.Node{
			ui.Error(LoadErrorMessage),
			ui.Button(RetryLabel, c.Refresh),
		}
	}
	c.lastErr = nil
	c.questionnaire = q
	return []ui.Node{q.RootContent()}
}

// buildQuestionnaire calls the factory, turning errors and panics into a
// ConstructionError.
func (c *Controller) buildQuestionnaire() (q Questionnaire, err error) {
	defer func() {
		if r := recover(); r != nil {
			q = nil
			err = &ConstructionError{Language: c.language, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if c.factory == nil {
		return nil, &ConstructionError{Language: c.language, Err: errNoFactory}
	}
	q, err = c.factory(c.language, c.OnSurveyComplete)
	if err != nil {
		return nil, &ConstructionError{Language: c.language, Err: err}
	}
	if q == nil {
		return nil, &ConstructionError{Language: c.language, Err: errors.New("factory returned nil questionnaire")}
	}
	return q, nil
}

// Language returns the current display language.
func (c *Controller) Language() text.Language { return c.language }

// Page returns the current page.
func (c *Controller) Page() Page { return c.page }

// Completed reports whether the questionnaire has signalled completion.
func (c *Controller) Completed() bool { return c.completed }

// Initialized reports whether Attach has been called.
func (c *Controller) Initialized() bool { return c.initialized }

// Questionnaire returns the questionnaire, or nil before the survey starts
// or while construction is failing.
func (c *Controller) Questionnaire() Questionnaire { return c.questionnaire }

// Tier returns the last applied title size tier.
func (c *Controller) Tier() ui.Tier { return c.tier }

// Err returns the last questionnaire construction error, if the current
// content is the retry fallback.
func (c *Controller) Err() error { return c.lastErr }

// Content returns a copy of the current child content list.
func (c *Controller) Content() []ui.Node {
	out := make([]ui.Node, len(c.content))
	copy(out, c.content)
	return out
}
