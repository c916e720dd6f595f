package ctis

import (
	"go.uber.org/zap"

	"trial-hand/models"
	"trial-hand/sources"
)

// addSponsors verbindet die parallel geführten Listen der Sponsor-Namen und
// Sponsor-Typen positionsweise. Bei abweichender Länge ist keine verlässliche
// Zuordnung möglich und das Feld wird komplett verworfen. Doppelte Namen
// behalten den zuerst genannten Typ.
func (s *session) addSponsors(log *zap.Logger, study *models.Study, rawNames, rawTypes string) {
	if sources.Absent(rawNames) {
		return
	}

	names := splitList(rawNames)
	types := splitList(rawTypes)
	if len(names) != len(types) {
		log.Warn("Sponsorlisten ungleich lang, Feld verworfen",
			zap.Int("names", len(names)),
			zap.Int("types", len(types)))
		return
	}

	seen := make(map[string]bool)
	for i, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		study.Organisations = append(study.Organisations, models.Organisation{
			Name: name,
			Role: roleSponsor,
			Type: types[i],
		})
	}
}
