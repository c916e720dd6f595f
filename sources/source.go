package sources

import (
	"context"
	"io"

	"trial-hand/models"
)

// Source ist das Interface, das jede Registry-Quelle (z.B. CTIS) implementieren muss.
type Source interface {
	// Convert liest einen kompletten Roh-Export und gibt die finalen kanonischen
	// Datensätze zurück. Fehler einzelner Zeilen werden intern behandelt; nur
	// Stream-Fehler brechen den Lauf ab.
	Convert(ctx context.Context, r io.Reader) ([]*models.Study, error)

	// Name gibt den eindeutigen Namen der Quelle zurück (z.B. "ctis").
	Name() string
}

// ValueCleaner bereinigt rohe Feldwerte eines bestimmten Quellformats. Jede
// Quelle bringt ihre eigene Implementierung mit, die Zeilen- und Feldzugriffe
// bleiben dadurch quellenunabhängig.
type ValueCleaner interface {
	Clean(raw string) string
}
