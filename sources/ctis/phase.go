package ctis

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"trial-hand/models"
	"trial-hand/sources"
)

// Phasen-Token in römischer oder arabischer Schreibweise. Die längeren
// römischen Ziffern stehen vorn, damit "Phase III" nicht als "Phase I" matcht.
var phaseRE = regexp.MustCompile(`(?i)phase\s+(IV|III|II|I|[1-4])`)

// addPhase extrahiert bis zu zwei Phasen-Token aus dem Freitext der
// Phasen-Spalte ("Therapeutic confirmatory trial (Phase III)", "Phase II and
// Phase III Integrated"). Zwei Treffer werden mit "/" verbunden.
func (s *session) addPhase(log *zap.Logger, study *models.Study, raw string) {
	if sources.Absent(raw) {
		return
	}

	matches := phaseRE.FindAllStringSubmatch(raw, 2)
	if matches == nil {
		log.Warn("Phasenangabe nicht lesbar", zap.String("value", raw))
		return
	}

	values := make([]string, 0, len(matches))
	for _, m := range matches {
		v, ok := sources.CanonicalPhase(m[1])
		if !ok {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return
	}

	study.Features = append(study.Features, models.Feature{
		Type:  featurePhase,
		Value: strings.Join(values, "/"),
	})
}
