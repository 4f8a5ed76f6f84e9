package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/TemirB/rsrvd-site/internal/domain"
)

type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
	Chinese Language = "zh"
)

const Default = English

var Supported = []Language{English, Spanish, French, Chinese}

func (l Language) Valid() bool {
	for _, s := range Supported {
		if l == s {
			return true
		}
	}
	return false
}

// Parse accepts a supported language code, case-insensitively.
func Parse(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("language %q: %w", s, domain.ErrInvalidPreference)
	}
	return l, nil
}

// Negotiate picks the first supported base language from an Accept-Language
// header, in preference order. Anything unusable yields Default.
func Negotiate(acceptLanguage string) Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return Default
	}
	for _, tag := range tags {
		base, conf := tag.Base()
		if conf == language.No {
			continue
		}
		if l := Language(base.String()); l.Valid() {
			return l
		}
	}
	return Default
}
