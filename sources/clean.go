package sources

import (
	"html"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NotApplicable ist der kanonische Ausgabe-Marker für "nicht anwendbar".
const NotApplicable = "Not applicable"

// IsBlank prüft, ob ein Feldwert leer ist (nach Trimmen).
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotApplicable prüft auf den Nicht-anwendbar-Marker der Quelldaten.
func IsNotApplicable(s string) bool {
	t := strings.TrimSpace(s)
	return strings.EqualFold(t, "N/A") || strings.EqualFold(t, NotApplicable)
}

// Absent fasst leer und nicht-anwendbar zusammen.
func Absent(s string) bool {
	return IsBlank(s) || IsNotApplicable(s)
}

// StripQuotes entfernt ein umschließendes Anführungszeichen-Paar.
func StripQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

// Unescape löst HTML-Entities im Feldwert auf (z.B. &amp; oder &#39;).
func Unescape(s string) string {
	return html.UnescapeString(s)
}

var titleCaser = cases.Title(language.English)

// TitleWords normalisiert die Groß-/Kleinschreibung wortweise ("MALE, FEMALE" -> "Male, Female").
func TitleWords(s string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(s)))
}

// dateLayouts sind die im Export beobachteten Datumsformate.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2 January 2006",
}

// ParseDate versucht, einen Datumswert in einem der bekannten Formate zu lesen.
func ParseDate(s string) (time.Time, bool) {
	t := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, t); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// phaseValues bildet römische und arabische Phasen-Token auf kanonische
// Ziffern-Strings ab.
var phaseValues = map[string]string{
	"I": "1", "II": "2", "III": "3", "IV": "4",
	"1": "1", "2": "2", "3": "3", "4": "4",
}

// CanonicalPhase liefert den kanonischen Phasenwert für ein Token ("III" -> "3").
func CanonicalPhase(token string) (string, bool) {
	v, ok := phaseValues[strings.ToUpper(strings.TrimSpace(token))]
	return v, ok
}
