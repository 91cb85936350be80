package questionnaire

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"DesiresAfterDuties/pkg/text"
	"DesiresAfterDuties/pkg/utils"

	"gopkg.in/yaml.v3"
)

//go:embed bank.yaml
var defaultBank []byte

var (
	ErrEmptyBank          = errors.New("question bank has no questions")
	ErrMissingTranslation = errors.New("missing translation")
)

// Translations maps a language code ("en", "bn") to a string.
type Translations map[string]string

// Get returns the string for lang, falling back to English.
func (t Translations) Get(lang text.Language) string {
	if s, ok := t[lang.Code()]; ok && s != "" {
		return s
	}
	return t[text.EN.Code()]
}

// Question is one multiple-choice question.
type Question struct {
	ID      string         `yaml:"id"`
	Prompt  Translations   `yaml:"prompt"`
	Options []Translations `yaml:"options"`
}

// Messages holds the questionnaire's own interface strings. Progress is a
// format with the current question number and the total.
type Messages struct {
	Progress Translations `yaml:"progress"`
	Back     Translations `yaml:"back"`
	Thanks   Translations `yaml:"thanks"`
}

// Bank is an ordered set of questions.
type Bank struct {
	Messages  Messages   `yaml:"messages"`
	Questions []Question `yaml:"questions"`
}

// ParseBank decodes a YAML question bank.
func ParseBank(data []byte) (*Bank, error) {
	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	return &b, nil
}

// DefaultBank returns the embedded question bank.
func DefaultBank() (*Bank, error) {
	return ParseBank(defaultBank)
}

// LoadBank reads a bank from path, or the embedded bank when path is
// empty. Read failures are retried; malformed YAML is not.
func LoadBank(path string, retry utils.RetryConfig) (*Bank, error) {
	if path == "" {
		return DefaultBank()
	}

	var bank *Bank
	err := utils.ExecuteWithRetry(func() error {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return utils.Permanent(err)
			}
			return err
		}
		b, err := ParseBank(data)
		if err != nil {
			return utils.Permanent(err)
		}
		bank = b
		return nil
	}, retry)
	if err != nil {
		return nil, fmt.Errorf("load question bank %s: %w", path, err)
	}
	return bank, nil
}

// Validate checks that the bank is usable in lang.
func (b *Bank) Validate(lang text.Language) error {
	if len(b.Questions) == 0 {
		return ErrEmptyBank
	}

	code := lang.Code()
	missing := func(what string, t Translations) error {
		if t[code] == "" {
			return fmt.Errorf("%w: %s has no %q text", ErrMissingTranslation, what, code)
		}
		return nil
	}

	if err := missing("progress message", b.Messages.Progress); err != nil {
		return err
	}
	if err := missing("back message", b.Messages.Back); err != nil {
		return err
	}
	if err := missing("thanks message", b.Messages.Thanks); err != nil {
		return err
	}

	seen := make(map[string]bool, len(b.Questions))
	for i, q := range b.Questions {
		if q.ID == "" {
			return fmt.Errorf("question %d has no id", i+1)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		if err := missing("question "+q.ID, q.Prompt); err != nil {
			return err
		}
		if len(q.Options) == 0 {
			return fmt.Errorf("question %q has no options", q.ID)
		}
		for j, opt := range q.Options {
			if err := missing(fmt.Sprintf("question %s option %d", q.ID, j+1), opt); err != nil {
				return err
			}
		}
	}
	return nil
}
