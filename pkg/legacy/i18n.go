package legacy

import "strings"

// Message keys resolved through the Translator.
const (
	KeyCopyButton              = "legacy.copy-button"
	KeyDisclaimerSourceLicense = "legacy.disclaimer.source-license"
	KeyDisclaimerArticleBrand  = "legacy.disclaimer.article-brand"
)

// Translator resolves fixed page literals for a locale. Disclaimer messages
// keep two %s verbs, filled with the article link and the license or brand
// link.
type Translator interface {
	Translate(locale, key string) (string, error)
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(locale, key string) (string, error)

// Translate implements Translator.
func (f TranslatorFunc) Translate(locale, key string) (string, error) {
	return f(locale, key)
}

// MissingTranslationHandler decides the literal used when translation fails.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

var englishLiterals = map[string]string{
	KeyCopyButton:              "Copy",
	KeyDisclaimerSourceLicense: "This page contains content from %s, available under a %s license.",
	KeyDisclaimerArticleBrand:  "See %s for more details, videos, pictures and attribution. Courtesy of %s, where anyone can easily learn how to do anything.",
}

func translate(locale, key string, t Translator, onMissing MissingTranslationHandler) string {
	fallback := englishLiterals[key]
	if t == nil {
		return fallback
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	if onMissing != nil {
		return onMissing(locale, key, fallback, err)
	}
	return fallback
}
