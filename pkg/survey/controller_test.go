package survey

import (
	"errors"
	"testing"

	"DesiresAfterDuties/pkg/text"
	"DesiresAfterDuties/pkg/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeSurface struct {
	repaints int
}

func (s *fakeSurface) RequestRepaint() { s.repaints++ }

type fakeTitle struct {
	tiers []ui.Tier
}

func (t *fakeTitle) SetTier(tier ui.Tier) { t.tiers = append(t.tiers, tier) }

type fakeQuestionnaire struct {
	lang       text.Language
	updates    []text.Language
	onComplete func()
}

func (q *fakeQuestionnaire) UpdateLanguage(lang text.Language) {
	q.lang = lang
	q.updates = append(q.updates, lang)
}

func (q *fakeQuestionnaire) RootContent() ui.Node {
	return ui.Column(ui.Paragraph("question in " + q.lang.Code()))
}

// countingFactory records every construction.
type countingFactory struct {
	built []*fakeQuestionnaire
	fail  error
}

func (f *countingFactory) build(lang text.Language, onComplete func()) (Questionnaire, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	q := &fakeQuestionnaire{lang: lang, onComplete: onComplete}
	f.built = append(f.built, q)
	return q, nil
}

func newAttached(t *testing.T, opts ...Option) (*Controller, *fakeSurface) {
	t.Helper()
	c := New(opts...)
	s := &fakeSurface{}
	c.Attach(s)
	return c, s
}

func TestInitialState(t *testing.T) {
	c := New()

	assert.Equal(t, PageIntro, c.Page())
	assert.False(t, c.Completed())
	assert.Nil(t, c.Questionnaire())
	assert.Equal(t, text.BN, c.Language())
	assert.False(t, c.Initialized())
}

func TestNoRepaintBeforeAttach(t *testing.T) {
	c := New()
	s := &fakeSurface{}

	c.SetLanguage(text.EN)
	c.OnViewportResize(1000)
	c.Refresh()
	assert.Equal(t, text.EN, c.Language(), "mutations are allowed before attach")
	assert.NotEmpty(t, c.Content())

	c.Attach(s)
	assert.Equal(t, 1, s.repaints, "attach renders once")
	assert.True(t, c.Initialized())
}

func TestAttachOnlyOnce(t *testing.T) {
	c, first := newAttached(t)
	second := &fakeSurface{}

	c.Attach(second)
	c.Refresh()

	assert.Equal(t, 2, first.repaints)
	assert.Zero(t, second.repaints)
}

func TestIntroContentOrder(t *testing.T) {
	c, _ := newAttached(t, WithLanguage(text.EN))
	strs := text.Lookup(text.EN)

	content := c.Content()
	require.Len(t, content, 6)

	assert.Equal(t, ui.KindHeading, content[0].Kind)
	assert.Equal(t, strs.Welcome, content[0].Text)
	assert.Equal(t, ui.KindSubheading, content[1].Kind)
	assert.Equal(t, strs.Request, content[1].Text)
	assert.Equal(t, ui.KindParagraph, content[2].Kind)
	assert.True(t, content[2].Justify)
	assert.Equal(t, strs.Description, content[2].Text)

	require.Equal(t, ui.KindIconRow, content[3].Kind)
	assert.Equal(t, []ui.IconLabel{
		{Icon: ui.IconTimer, Label: strs.Time},
		{Icon: ui.IconEncryption, Label: strs.Anonymous},
	}, content[3].Icons)

	assert.Equal(t, ui.KindDivider, content[4].Kind)
	assert.Equal(t, ui.KindButton, content[5].Kind)
	assert.Equal(t, strs.Button, content[5].Text)
}

func TestStartButtonStartsSurvey(t *testing.T) {
	f := &countingFactory{}
	c, _ := newAttached(t, WithFactory(f.build))

	buttons := ui.Buttons(c.Content())
	require.Len(t, buttons, 1)
	require.True(t, buttons[0].Activate())

	assert.Equal(t, PageQuestionnaire, c.Page())
	assert.Len(t, f.built, 1)
}

func TestStartSurveyCreatesOneQuestionnaire(t *testing.T) {
	f := &countingFactory{}
	c, s := newAttached(t, WithFactory(f.build))

	c.StartSurvey()
	require.Equal(t, PageQuestionnaire, c.Page())
	require.Len(t, f.built, 1)
	first := c.Questionnaire()
	assert.Same(t, f.built[0], first)
	assert.Equal(t, text.BN, f.built[0].lang)

	c.StartSurvey()
	assert.Len(t, f.built, 1, "second start must not rebuild")
	assert.Same(t, first, c.Questionnaire())
	assert.Equal(t, 3, s.repaints)

	content := c.Content()
	require.Len(t, content, 1)
	assert.Equal(t, first.RootContent().Children[0].Text, content[0].Children[0].Text)
}

func TestSetLanguageOnIntro(t *testing.T) {
	f := &countingFactory{}
	c, s := newAttached(t, WithFactory(f.build))
	require.Equal(t, text.Lookup(text.BN).Welcome, c.Content()[0].Text)

	c.SetLanguage(text.EN)

	assert.Equal(t, text.Lookup(text.EN).Welcome, c.Content()[0].Text)
	assert.Equal(t, text.Lookup(text.EN).Button, c.Content()[5].Text)
	assert.Equal(t, PageIntro, c.Page())
	assert.Nil(t, c.Questionnaire())
	assert.Empty(t, f.built)
	assert.Equal(t, 2, s.repaints)
}

func TestSetLanguageSameValueStillRenders(t *testing.T) {
	c, s := newAttached(t)
	before := ui.ShapeOf(c.Content())

	c.SetLanguage(text.BN)

	assert.Equal(t, 2, s.repaints)
	assert.Equal(t, before, ui.ShapeOf(c.Content()))
}

func TestSetLanguageOnQuestionnaireForwards(t *testing.T) {
	f := &countingFactory{}
	c, _ := newAttached(t, WithFactory(f.build))
	c.StartSurvey()
	q := f.built[0]

	c.SetLanguage(text.EN)

	require.Len(t, f.built, 1, "language change must not rebuild")
	assert.Same(t, q, c.Questionnaire())
	assert.Equal(t, text.EN, q.updates[len(q.updates)-1])
	assert.Equal(t, PageQuestionnaire, c.Page())
	assert.Equal(t, "question in en", c.Content()[0].Children[0].Text)
}

func TestSetLanguageIndex(t *testing.T) {
	c, _ := newAttached(t)

	assert.True(t, c.SetLanguageIndex("0"))
	assert.Equal(t, text.EN, c.Language())
	assert.True(t, c.SetLanguageIndex("1"))
	assert.Equal(t, text.BN, c.Language())
	assert.False(t, c.SetLanguageIndex("7"))
	assert.Equal(t, text.BN, c.Language())
}

func TestSetLanguageInvalidPanics(t *testing.T) {
	c, _ := newAttached(t)
	assert.Panics(t, func() { c.SetLanguage(text.Language(9)) })
}

func TestOnSurveyComplete(t *testing.T) {
	f := &countingFactory{}
	c, _ := newAttached(t, WithFactory(f.build))
	c.StartSurvey()

	f.built[0].onComplete()

	assert.True(t, c.Completed())
	assert.Equal(t, PageQuestionnaire, c.Page())

	f.built[0].onComplete()
	assert.True(t, c.Completed())
}

func TestOnViewportResize(t *testing.T) {
	title := &fakeTitle{}
	c, s := newAttached(t, WithTitle(title))

	tests := []struct {
		width int
		want  ui.Tier
	}{
		{500, ui.TierSmall},
		{700, ui.TierMedium},
		{1000, ui.TierLarge},
		{0, ui.TierSmall},
		{-1, ui.TierSmall},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, c.OnViewportResize(tt.width), "width %d", tt.width)
		assert.Equal(t, tt.want, c.Tier())
	}

	assert.Equal(t, []ui.Tier{ui.TierSmall, ui.TierMedium, ui.TierLarge, ui.TierSmall, ui.TierSmall}, title.tiers)
	assert.Equal(t, 1+len(tests), s.repaints)
	assert.Equal(t, PageIntro, c.Page())
}

func TestConstructionFailureShowsRetry(t *testing.T) {
	cause := errors.New("missing bn prompts")
	f := &countingFactory{fail: cause}
	c, _ := newAttached(t, WithFactory(f.build))

	require.NotPanics(t, c.StartSurvey)

	assert.Equal(t, PageQuestionnaire, c.Page())
	assert.Nil(t, c.Questionnaire())

	var cerr *ConstructionError
	require.ErrorAs(t, c.Err(), &cerr)
	assert.ErrorIs(t, c.Err(), cause)
	assert.Equal(t, text.BN, cerr.Language)

	content := c.Content()
	require.Len(t, content, 2)
	assert.Equal(t, ui.KindError, content[0].Kind)
	assert.Equal(t, LoadErrorMessage, content[0].Text)
	assert.Equal(t, RetryLabel, content[1].Text)

	// Retry succeeds once the collaborator recovers.
	f.fail = nil
	require.True(t, content[1].Activate())

	require.Len(t, f.built, 1)
	assert.NotNil(t, c.Questionnaire())
	assert.NoError(t, c.Err())
	_, hasErr := ui.Find(c.Content(), ui.KindError)
	assert.False(t, hasErr)
}

func TestConstructionFailureLoggedOnce(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))

	f := &countingFactory{fail: errors.New("bank unreadable")}
	c, _ := newAttached(t, WithFactory(f.build), WithLogger(log))
	c.StartSurvey()

	entries := logs.FilterMessage("error loading questionnaire").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Contains(t, fields, "error")
	assert.NotContains(t, fields, "stack")
	// The trace comes from the logger's own stacktrace option.
	assert.NotEmpty(t, entries[0].Stack)
}

func TestRetryReattemptsConstruction(t *testing.T) {
	attempts := 0
	factory := func(lang text.Language, onComplete func()) (Questionnaire, error) {
		attempts++
		return nil, errors.New("still broken")
	}
	c, _ := newAttached(t, WithFactory(factory))
	c.StartSurvey()
	require.Equal(t, 1, attempts)

	retry := ui.Buttons(c.Content())[0]
	retry.Activate()
	retry.Activate()

	assert.Equal(t, 3, attempts)
	_, hasErr := ui.Find(c.Content(), ui.KindError)
	assert.True(t, hasErr)
}

func TestPanickingFactoryIsContained(t *testing.T) {
	factory := func(lang text.Language, onComplete func()) (Questionnaire, error) {
		panic("index out of range")
	}
	c, _ := newAttached(t, WithFactory(factory))

	require.NotPanics(t, c.StartSurvey)

	var cerr *ConstructionError
	require.ErrorAs(t, c.Err(), &cerr)
	assert.Contains(t, cerr.Error(), "index out of range")
	assert.Nil(t, c.Questionnaire())
}

func TestMissingFactory(t *testing.T) {
	c, _ := newAttached(t)
	c.StartSurvey()

	assert.ErrorIs(t, c.Err(), errNoFactory)
	_, hasErr := ui.Find(c.Content(), ui.KindError)
	assert.True(t, hasErr)
}

func TestNilQuestionnaireIsAnError(t *testing.T) {
	factory := func(lang text.Language, onComplete func()) (Questionnaire, error) {
		return nil, nil
	}
	c, _ := newAttached(t, WithFactory(factory))
	c.StartSurvey()

	assert.Error(t, c.Err())
	assert.Nil(t, c.Questionnaire())
}

func TestRefreshIsIdempotent(t *testing.T) {
	f := &countingFactory{}
	c, _ := newAttached(t, WithFactory(f.build))

	c.Refresh()
	first := ui.ShapeOf(c.Content())
	c.Refresh()
	assert.Equal(t, first, ui.ShapeOf(c.Content()))

	c.StartSurvey()
	c.Refresh()
	first = ui.ShapeOf(c.Content())
	c.Refresh()
	assert.Equal(t, first, ui.ShapeOf(c.Content()))
	assert.Len(t, f.built, 1)
}

func TestContentReturnsCopy(t *testing.T) {
	c, _ := newAttached(t)
	content := c.Content()
	content[0].Text = "mutated"

	assert.NotEqual(t, "mutated", c.Content()[0].Text)
}
