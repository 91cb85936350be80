// Package text holds the static, localized strings shown on the intro screen.
package text

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the two supported UI languages.
type Language int

const (
	EN Language = iota
	BN
)

// Languages lists every supported language in selector order.
var Languages = []Language{EN, BN}

// Default is the language the survey opens in.
const Default = BN

var tags = map[Language]language.Tag{
	EN: language.English,
	BN: language.Bengali,
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Bengali})

// Code returns the short language code ("en" or "bn").
func (l Language) Code() string {
	base, _ := l.Tag().Base()
	return base.String()
}

// Tag returns the BCP 47 tag for the language.
func (l Language) Tag() language.Tag {
	tag, ok := tags[l]
	if !ok {
		panic(fmt.Sprintf("text: unknown language %d", int(l)))
	}
	return tag
}

func (l Language) String() string {
	if _, ok := tags[l]; !ok {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return l.Code()
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	_, ok := tags[l]
	return ok
}

// Other returns the language the selector toggles to.
func (l Language) Other() Language {
	if l == EN {
		return BN
	}
	return EN
}

// ParseLanguage resolves a language code or tag such as "en", "bn-BD" or
// "Bengali" to a supported language.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "english", "eng":
		return EN, nil
	case "bengali", "bangla", "বাংলা":
		return BN, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("parse language %q: %w", s, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return 0, fmt.Errorf("unsupported language %q", s)
	}
	return Languages[idx], nil
}

// FromSelectorIndex maps the selector segment value ("0" or "1") to a
// language.
func FromSelectorIndex(idx string) (Language, bool) {
	switch idx {
	case "0":
		return EN, true
	case "1":
		return BN, true
	}
	return 0, false
}

// SelectorIndex is the inverse of FromSelectorIndex.
func (l Language) SelectorIndex() string {
	if l == EN {
		return "0"
	}
	return "1"
}

// SelectorLabel is the caption shown on the language selector segment.
func (l Language) SelectorLabel() string {
	if l == EN {
		return "Eng"
	}
	return "বাংলা"
}

// Strings is the intro screen copy for one language.
type Strings struct {
	Welcome     string
	Request     string
	Description string
	Time        string
	Anonymous   string
	Button      string
}

// Fields returns the record as name/value pairs in display order.
func (s Strings) Fields() [][2]string {
	return [][2]string{
		{"welcome", s.Welcome},
		{"request", s.Request},
		{"description", s.Description},
		{"time", s.Time},
		{"anonymous", s.Anonymous},
		{"button", s.Button},
	}
}

// Title is the decorative heading shown above the selector.
const Title = "Desires After Duties"

var startText = map[Language]Strings{
	EN: {
		Welcome: "Welcome!",
		Request: "Please take a moment to share your thoughts",
		Description: "This survey explores how people balance the duties they owe to " +
			"family, work and society with the things they personally wish for. " +
			"There are no right or wrong answers. Please answer honestly; your " +
			"responses help us understand what remains of our desires once our " +
			"duties are done.",
		Time:      "About 5 minutes",
		Anonymous: "Completely anonymous",
		Button:    "Start Survey",
	},
	BN: {
		Welcome: "স্বাগতম!",
		Request: "অনুগ্রহ করে কিছু সময় নিয়ে আপনার মতামত জানান",
		Description: "এই জরিপটি জানতে চায় মানুষ কীভাবে পরিবার, কর্মক্ষেত্র ও সমাজের " +
			"প্রতি দায়িত্বের সাথে নিজের ব্যক্তিগত ইচ্ছার ভারসাম্য রক্ষা করে। " +
			"এখানে কোনো সঠিক বা ভুল উত্তর নেই। অনুগ্রহ করে সৎভাবে উত্তর দিন; " +
			"আপনার উত্তর আমাদের বুঝতে সাহায্য করবে দায়িত্ব শেষে আমাদের ইচ্ছার কী অবশিষ্ট থাকে।",
		Time:      "প্রায় ৫ মিনিট",
		Anonymous: "সম্পূর্ণ বেনামী",
		Button:    "জরিপ শুরু করুন",
	},
}

// Lookup returns the intro strings for lang. An unsupported language is a
// programming error and panics.
func Lookup(lang Language) Strings {
	s, ok := startText[lang]
	if !ok {
		panic(fmt.Sprintf("text: no strings for language %d", int(lang)))
	}
	return s
}
