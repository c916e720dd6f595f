package ctis

import (
	"strings"

	"go.uber.org/zap"

	"trial-hand/models"
	"trial-hand/sources"
)

// addCountries liest die Spalte "Countries and recruitment status". Das Format
// ist eine Doppelpunkt-Kette: "Austria: Ongoing, Belgium: Ended, France:
// Ongoing". Die Landesnamen nach dem ersten Paar hängen jeweils am Ende des
// vorherigen Status-Segments und werden am letzten Komma abgetrennt.
func (s *session) addCountries(log *zap.Logger, study *models.Study, raw string) {
	if sources.Absent(raw) {
		return
	}

	segments := strings.Split(raw, ":")
	if len(segments) < 2 {
		log.Warn("Länderliste ohne Status-Trennzeichen", zap.String("value", raw))
		return
	}

	country := strings.TrimSpace(segments[0])
	for i := 1; i < len(segments); i++ {
		segment := segments[i]

		if i == len(segments)-1 {
			s.appendCountry(study, country, strings.TrimSpace(segment))
			break
		}

		// Mittlere Segmente enthalten "Status, Nächstes Land".
		cut := strings.LastIndex(segment, ",")
		if cut < 0 {
			log.Warn("Länderliste nicht lesbar, Segment übersprungen",
				zap.String("segment", segment),
				zap.String("value", raw))
			country = strings.TrimSpace(segment)
			continue
		}
		s.appendCountry(study, country, strings.TrimSpace(segment[:cut]))
		country = strings.TrimSpace(segment[cut+1:])
	}
}

func (s *session) appendCountry(study *models.Study, country, status string) {
	if country == "" {
		return
	}
	study.Countries = append(study.Countries, models.CountryStatus{
		Country: country,
		Status:  status,
	})
}
