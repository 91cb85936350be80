package questionnaire

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"DesiresAfterDuties/pkg/logger"
	"DesiresAfterDuties/pkg/survey"
	"DesiresAfterDuties/pkg/text"
	"DesiresAfterDuties/pkg/ui"
	"DesiresAfterDuties/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const smallBank = `
messages:
  progress: {en: "Question %d of %d", bn: "প্রশ্ন %d / %d"}
  back: {en: "Back", bn: "পিছনে"}
  thanks: {en: "Thanks!", bn: "ধন্যবাদ!"}
questions:
  - id: q1
    prompt: {en: "First?", bn: "প্রথম?"}
    options:
      - {en: "Yes", bn: "হ্যাঁ"}
      - {en: "No", bn: "না"}
  - id: q2
    prompt: {en: "Second?", bn: "দ্বিতীয়?"}
    options:
      - {en: "A", bn: "ক"}
`

var fastRetry = utils.RetryConfig{MaxRetries: 1, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond}

func parse(t *testing.T, src string) *Bank {
	t.Helper()
	b, err := ParseBank([]byte(src))
	require.NoError(t, err)
	return b
}

func TestDefaultBankValidForAllLanguages(t *testing.T) {
	b, err := DefaultBank()
	require.NoError(t, err)
	require.NotEmpty(t, b.Questions)

	for _, lang := range text.Languages {
		assert.NoErrorf(t, b.Validate(lang), "language %s", lang)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		lang text.Language
		ok   bool
	}{
		{"complete", smallBank, text.BN, true},
		{"empty", "questions: []", text.EN, false},
		{"missing bn prompt", `
messages: {progress: {en: "%d/%d"}, back: {en: "b"}, thanks: {en: "t"}}
questions:
  - id: q
    prompt: {en: "Q?"}
    options: [{en: "x"}]
`, text.BN, false},
		{"english only is fine in english", `
messages: {progress: {en: "%d/%d"}, back: {en: "b"}, thanks: {en: "t"}}
questions:
  - id: q
    prompt: {en: "Q?"}
    options: [{en: "x"}]
`, text.EN, true},
		{"no options", `
messages: {progress: {en: "%d/%d"}, back: {en: "b"}, thanks: {en: "t"}}
questions:
  - id: q
    prompt: {en: "Q?"}
`, text.EN, false},
		{"duplicate id", `
messages: {progress: {en: "%d/%d"}, back: {en: "b"}, thanks: {en: "t"}}
questions:
  - {id: q, prompt: {en: "a"}, options: [{en: "x"}]}
  - {id: q, prompt: {en: "b"}, options: [{en: "x"}]}
`, text.EN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parse(t, tt.src).Validate(tt.lang)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNewFailsOnIncompleteBank(t *testing.T) {
	_, err := New(parse(t, "questions: []"), text.EN, nil)
	assert.ErrorIs(t, err, ErrEmptyBank)

	_, err = New(nil, text.EN, nil)
	assert.ErrorIs(t, err, ErrEmptyBank)

	b := parse(t, smallBank)
	delete(b.Questions[1].Prompt, "bn")
	_, err = New(b, text.BN, nil)
	assert.ErrorIs(t, err, ErrMissingTranslation)
}

func TestFlowCompletesOnce(t *testing.T) {
	completed := 0
	q, err := New(parse(t, smallBank), text.EN, func() { completed++ })
	require.NoError(t, err)

	cur, total := q.Progress()
	assert.Equal(t, 0, cur)
	assert.Equal(t, 2, total)

	require.NoError(t, q.Answer(1))
	require.NoError(t, q.Answer(0))

	assert.True(t, q.Done())
	assert.Equal(t, 1, completed)
	assert.Equal(t, map[string]int{"q1": 1, "q2": 0}, q.Answers())

	assert.Error(t, q.Answer(0))
	assert.Equal(t, 1, completed)

	root := q.RootContent()
	require.Len(t, root.Children, 1)
	assert.Equal(t, "Thanks!", root.Children[0].Text)
}

func TestAnswerOutOfRange(t *testing.T) {
	q, err := New(parse(t, smallBank), text.EN, nil)
	require.NoError(t, err)

	assert.Error(t, q.Answer(5))
	assert.Error(t, q.Answer(-1))
	cur, _ := q.Progress()
	assert.Equal(t, 0, cur)
}

func TestRootContentButtonsAnswer(t *testing.T) {
	q, err := New(parse(t, smallBank), text.EN, nil)
	require.NoError(t, err)

	root := q.RootContent()
	assert.Equal(t, "Question 1 of 2", root.Children[0].Text)
	assert.Equal(t, "First?", root.Children[1].Text)

	buttons := ui.Buttons([]ui.Node{root})
	require.Len(t, buttons, 2, "no back button on the first question")
	buttons[1].Activate()

	assert.Equal(t, 1, q.Answers()["q1"])
	root = q.RootContent()
	assert.Equal(t, "Second?", root.Children[1].Text)

	buttons = ui.Buttons([]ui.Node{root})
	require.Len(t, buttons, 2)
	assert.Equal(t, "Back", buttons[1].Text)
	buttons[1].Activate()

	cur, _ := q.Progress()
	assert.Equal(t, 0, cur)
}

func TestStaleButtonLogsRejectedAnswer(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.SetLogger(zap.New(core))
	defer logger.SetLogger(nil)

	q, err := New(parse(t, smallBank), text.EN, nil)
	require.NoError(t, err)

	stale := ui.Buttons([]ui.Node{q.RootContent()})
	require.NoError(t, q.Answer(0))
	require.NoError(t, q.Answer(0))
	require.True(t, q.Done())

	stale[0].Activate()

	entries := logs.FilterMessage("answer rejected").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "questionnaire", entries[0].LoggerName)
	assert.Equal(t, "q1", entries[0].ContextMap()["question"])
	assert.Contains(t, entries[0].ContextMap(), "error")
}

func TestUpdateLanguageKeepsProgress(t *testing.T) {
	q, err := New(parse(t, smallBank), text.EN, nil)
	require.NoError(t, err)
	require.NoError(t, q.Answer(0))

	q.UpdateLanguage(text.BN)

	assert.Equal(t, text.BN, q.Language())
	cur, _ := q.Progress()
	assert.Equal(t, 1, cur)
	assert.Equal(t, "দ্বিতীয়?", q.RootContent().Children[1].Text)
}

func TestUpdateLanguageFallsBackToEnglish(t *testing.T) {
	b := parse(t, smallBank)
	delete(b.Questions[0].Prompt, "bn")
	q, err := New(b, text.EN, nil)
	require.NoError(t, err)

	q.UpdateLanguage(text.BN)

	assert.Equal(t, "First?", q.RootContent().Children[1].Text)
}

func TestLoadBankFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallBank), 0644))

	b, err := LoadBank(path, fastRetry)
	require.NoError(t, err)
	assert.Len(t, b.Questions, 2)
}

func TestLoadBankErrors(t *testing.T) {
	_, err := LoadBank(filepath.Join(t.TempDir(), "missing.yaml"), fastRetry)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("questions: [unclosed"), 0644))
	_, err = LoadBank(path, fastRetry)
	assert.Error(t, err)
}

func TestFactoryWithController(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("questions: ["), 0644))

	c := survey.New(survey.WithLanguage(text.EN), survey.WithFactory(NewFactory(path, fastRetry)))
	c.StartSurvey()

	_, failed := ui.Find(c.Content(), ui.KindError)
	require.True(t, failed)
	require.Nil(t, c.Questionnaire())

	// Fix the file and retry.
	require.NoError(t, os.WriteFile(path, []byte(smallBank), 0644))
	ui.Buttons(c.Content())[0].Activate()

	require.NotNil(t, c.Questionnaire())
	_, failed = ui.Find(c.Content(), ui.KindError)
	assert.False(t, failed)

	// Answer everything through the rendered buttons.
	for i := 0; i < 2; i++ {
		ui.Buttons(c.Content())[0].Activate()
		c.Refresh()
	}
	assert.True(t, c.Completed())
	assert.Equal(t, survey.PageQuestionnaire, c.Page())
}

func TestDefaultFactory(t *testing.T) {
	f := NewFactory("", fastRetry)
	q, err := f(text.BN, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, q.RootContent().Children)
}
