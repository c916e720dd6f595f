package sources

import (
	"fmt"
	"strings"
)

// Header bildet Spaltennamen auf ihre Position in der Zeile ab.
type Header map[string]int

// ReadHeader baut die Spaltenzuordnung aus der Kopfzeile auf. Ein Byte-Order-Mark
// am ersten Eintrag wird entfernt. Fehlen Pflichtspalten, schlägt der gesamte
// Lauf fehl; spätere Feldzugriffe verlassen sich darauf, dass diese Prüfung
// bereits gelaufen ist.
func ReadHeader(record []string, required []string) (Header, error) {
	h := make(Header, len(record))
	for i, name := range record {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		h[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := h[name]; !ok {
			return nil, fmt.Errorf("required column %q missing in header", name)
		}
	}
	return h, nil
}

// Row kapselt den Feldzugriff per Spaltenname inklusive Wert-Bereinigung.
type Row struct {
	Header  Header
	Fields  []string
	Cleaner ValueCleaner
}

// Value liefert den bereinigten Wert der benannten Spalte. Ein unbekannter
// Spaltenname ist ein Programmierfehler: alle verwendeten Spalten müssen beim
// Aufbau des Headers als Pflichtspalten deklariert worden sein.
func (r Row) Value(column string) string {
	idx, ok := r.Header[column]
	if !ok {
		panic(fmt.Sprintf("column %q was not declared as required", column))
	}
	if idx >= len(r.Fields) {
		return ""
	}
	return r.Cleaner.Clean(r.Fields[idx])
}
