// Package i18n resolves the display language and holds the label tables for
// screens and receipts.
package i18n

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the kiosk's language choice.
	LangCookieName = "checkin_lang"
)

// Supported display languages, default first.
var supported = []language.Tag{
	language.Spanish,
	language.English,
	language.French,
	language.Italian,
	language.German,
	language.Portuguese,
}

var matcher = language.NewMatcher(supported)

// Supported returns the base codes of every display language.
func Supported() []string {
	out := make([]string, 0, len(supported))
	for _, tag := range supported {
		out = append(out, Code(tag))
	}
	return out
}

// Code returns the two-letter base of tag ("es", "en", ...).
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// Match returns the supported code closest to raw, and whether raw matched
// with at least high confidence.
func Match(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return "", false
	}
	return Code(supported[idx]), true
}

// Normalize coerces raw to a supported code, or def when unknown.
func Normalize(raw, def string) string {
	if code, ok := Match(raw); ok {
		return code
	}
	if code, ok := Match(def); ok {
		return code
	}
	return Code(supported[0])
}

// Resolve picks the language from the explicit query value, then the
// cookie, then Accept-Language, then def.
func Resolve(query, cookie, acceptLanguage, def string) string {
	if code, ok := Match(query); ok {
		return code
	}
	if code, ok := Match(cookie); ok {
		return code
	}
	if accept := strings.TrimSpace(acceptLanguage); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return Code(supported[idx])
			}
		}
	}
	return Normalize(def, "")
}

// Printer returns a number/message printer for code.
func Printer(code string) *message.Printer {
	return message.NewPrinter(language.Make(Normalize(code, "")))
}

// FormatAmount renders a whole currency amount with the language's digit
// grouping, e.g. "1,000 MXN" or "1.000 MXN".
func FormatAmount(code string, amount int64, currency string) string {
	s := Printer(code).Sprintf("%d", amount)
	if currency = strings.TrimSpace(currency); currency != "" {
		s += " " + currency
	}
	return s
}

// Fold case-folds s for case-insensitive comparisons. Casers keep state,
// so each call gets its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ContainsFold reports whether needle occurs in haystack ignoring case.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
