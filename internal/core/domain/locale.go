package domain

import "strings"

// Locale is the output language code for AI responses and fallback strings.
// The caller resolves it (from config or environment); the core never looks
// at cookies or headers.
type Locale string

// Supported locales.
const (
	LocaleEnglish  Locale = "en"
	LocaleRomanian Locale = "ro"
)

// DefaultLocale is used when the caller supplies no locale.
const DefaultLocale = LocaleEnglish

// OrDefault returns the locale, or DefaultLocale when unset.
func (l Locale) OrDefault() Locale {
	if strings.TrimSpace(string(l)) == "" {
		return DefaultLocale
	}
	return l
}

// isRomanian matches "ro" and regional variants like "ro-RO".
func (l Locale) isRomanian() bool {
	return strings.HasPrefix(strings.ToLower(string(l)), "ro")
}

// KeywordMatchExplanation is the fixed explanation attached to lexical
// fallback matches. It is not customized per pair.
func (l Locale) KeywordMatchExplanation() string {
	if l.isRomanian() {
		return "Conținut similar identificat pe cuvinte cheie."
	}
	return "Similar content based on shared keywords."
}

// NoOverlapExplanation is the fixed explanation for proposals the model did
// not score.
func (l Locale) NoOverlapExplanation() string {
	if l.isRomanian() {
		return "Nu a fost identificată o suprapunere clară."
	}
	return "No clear overlap identified."
}
