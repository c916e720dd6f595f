package ctis

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"trial-hand/models"
	"trial-hand/sources"
)

// Converter wandelt den öffentlichen CTIS-Export in kanonische Studien um.
// Er implementiert sources.Source.
type Converter struct {
	log     *zap.Logger
	maxRows int
}

// New erstellt einen neuen CTIS-Konverter. maxRows > 0 begrenzt den Lauf für
// Debug-Zwecke auf die ersten Zeilen des Exports.
func New(log *zap.Logger, maxRows int) *Converter {
	return &Converter{log: log, maxRows: maxRows}
}

// Name gibt den Namen der Quelle zurück.
func (c *Converter) Name() string {
	return "ctis"
}

// Convert konsumiert den Export zeilenweise. Fehlerhafte Zeilen werden geloggt
// und übersprungen; nur Header- und Stream-Fehler brechen den Lauf ab.
func (c *Converter) Convert(ctx context.Context, r io.Reader) ([]*models.Study, error) {
	reader := csv.NewReader(r)

	headerRecord, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("ctis: reading header row: %w", err)
	}
	header, err := sources.ReadHeader(headerRecord, requiredColumns)
	if err != nil {
		return nil, fmt.Errorf("ctis: %w", err)
	}

	s := newSession(c.log, header)

	rows := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// Genau eine logische Zeile überspringen, der Reader
				// synchronisiert sich selbst wieder.
				c.log.Warn("Fehlerhafte Exportzeile übersprungen",
					zap.Int("line", parseErr.Line),
					zap.Error(err))
				continue
			}
			return nil, fmt.Errorf("ctis: reading export stream: %w", err)
		}

		s.convertRow(record)

		rows++
		if c.maxRows > 0 && rows >= c.maxRows {
			c.log.Info("Debug-Limit erreicht, Lauf wird beendet", zap.Int("rows", rows))
			break
		}
	}

	return s.flush(), nil
}

// session hält den Zustand eines Konvertierungslaufs: die Identity-Map mit der
// höchsten gesehenen Resubmissionsnummer je Basis-Identifier und den
// Staging-Cache mit den aktuell gehaltenen Datensätzen. Jeder Lauf bekommt
// eine frische Session; es gibt keinen globalen Zustand.
type session struct {
	log     *zap.Logger
	cleaner sources.ValueCleaner
	header  sources.Header

	resubmissions map[string]int
	staged        map[string]*models.Study
	order         []string
}

func newSession(log *zap.Logger, header sources.Header) *session {
	return &session{
		log:           log,
		cleaner:       cleaner{},
		header:        header,
		resubmissions: make(map[string]int),
		staged:        make(map[string]*models.Study),
	}
}

// convertRow verarbeitet eine Exportzeile: Identitätsauflösung, Aufbau des
// Datensatzes, Staging. Abgelehnte Zeilen verändern den Staging-Cache nicht.
func (s *session) convertRow(fields []string) {
	row := sources.Row{Header: s.header, Fields: fields, Cleaner: s.cleaner}

	base, suffix, ok := s.resolveIdentity(row.Value(colTrialNumber))
	if !ok {
		return
	}

	study := s.assemble(row, base, suffix)

	// Das Überschreiben ersetzt einen verdrängten Datensatz vollständig.
	if _, seen := s.staged[base]; !seen {
		s.order = append(s.order, base)
	}
	s.staged[base] = study
}

// flush gibt alle gehaltenen Datensätze in stabiler Erst-Auftritts-Reihenfolge
// frei. Wird genau einmal am Stream-Ende aufgerufen.
func (s *session) flush() []*models.Study {
	studies := make([]*models.Study, 0, len(s.staged))
	for _, base := range s.order {
		if study, ok := s.staged[base]; ok {
			studies = append(studies, study)
		}
	}
	return studies
}
