// Package locale holds the closed set of site languages and the rules that
// map a request path onto one of them.
package locale

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

type Locale string

const (
	PT Locale = "pt"
	EN Locale = "en"
	FR Locale = "fr"
)

// Default is served when a path carries no locale prefix.
const Default = PT

var all = []Locale{PT, EN, FR}

var labels = map[Locale]string{
	PT: "Português",
	EN: "English",
	FR: "Français",
}

var tags = []language.Tag{language.Portuguese, language.English, language.French}

// plausible matches segments shaped like a language tag ("de", "es-ES",
// "en_us"). Such segments are never treated as logical routes.
var plausible = regexp.MustCompile(`^[A-Za-z]{2,3}([-_][A-Za-z0-9]{2,4})?$`)

// All returns the supported locales, default first.
func All() []Locale {
	return slices.Clone(all)
}

// Parse returns the locale for code. Matching is exact: "PT" and "pt-BR" are
// not supported codes.
func Parse(code string) (Locale, bool) {
	loc := Locale(code)
	if slices.Contains(all, loc) {
		return loc, true
	}

	return "", false
}

func (l Locale) String() string {
	return string(l)
}

// Label is the language name shown in the language switcher.
func (l Locale) Label() string {
	return labels[l]
}

// Tag returns the BCP 47 tag used for the html lang attribute.
func (l Locale) Tag() language.Tag {
	idx := slices.Index(all, l)
	if idx < 0 {
		return language.Und
	}

	return tags[idx]
}

// Detect picks the best supported locale for an Accept-Language header,
// falling back to fallback when nothing matches.
func Detect(acceptLanguage string, fallback Locale) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}

	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return fallback
	}

	_, idx, confidence := language.NewMatcher(tags).Match(prefs...)
	if confidence == language.No {
		return fallback
	}

	return all[idx]
}
