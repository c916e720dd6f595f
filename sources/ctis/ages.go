package ctis

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"trial-hand/models"
	"trial-hand/sources"
)

const (
	inUteroMarker = "In utero"
	pretermMarker = "Preterm newborn (gestational age < 37 weeks)"
)

var (
	// "0 days - 17 years": beide Grenzen mit eigener Einheit.
	ageMultiRE = regexp.MustCompile(`^(<?)(\d+)\s*([A-Za-z]+)\s*-\s*(\d+)(\+?)\s*([A-Za-z]+)$`)
	// "18-64 years", "85+ years", "<37 weeks": eine gemeinsame Einheit.
	ageSingleRE = regexp.MustCompile(`^(<?)(\d+)(\+?)(?:\s*-\s*(\d+)(\+?))?\s*([A-Za-z]+)$`)
	// Teilbereiche der Altersgruppen-Spalte: "0-27 days", "65+ years".
	ageGroupRE = regexp.MustCompile(`^(\d+)(?:\s*-\s*(\d+))?(\+?)\s*([A-Za-z]+)$`)
)

// parseAges setzt die vier Altersfelder der Studie. Bevorzugt wird der
// Sekundär-Identifier gelesen; fehlt er, wird die Altersgruppen-Spalte
// aggregiert. Fehlen beide Quellen, sind alle vier Felder nicht anwendbar.
func (s *session) parseAges(log *zap.Logger, study *models.Study, secondary, group string) {
	if !sources.Absent(secondary) {
		s.parseAgeRange(log, study, secondary)
		return
	}
	if !sources.Absent(group) {
		s.aggregateAgeGroups(log, study, group)
		return
	}
	study.MinAge = sources.NotApplicable
	study.MinAgeUnit = sources.NotApplicable
	study.MaxAge = sources.NotApplicable
	study.MaxAgeUnit = sources.NotApplicable
}

// parseAgeRange liest den Sekundär-Identifier ("18-64 years", "0 days - 17
// years", "85+ years", "<37 weeks"). Unlesbare Werte werden geloggt und lassen
// die Felder ungesetzt.
func (s *session) parseAgeRange(log *zap.Logger, study *models.Study, raw string) {
	value := strings.TrimSpace(raw)

	if m := ageMultiRE.FindStringSubmatch(value); m != nil {
		open, min, minUnit, max, plus, maxUnit := m[1], m[2], m[3], m[4], m[5], m[6]
		if open == "" {
			study.MinAge = min
			study.MinAgeUnit = minUnit
		}
		if plus == "" {
			study.MaxAge = max
			study.MaxAgeUnit = maxUnit
		} else {
			study.MaxAgeUnit = sources.NotApplicable
		}
		return
	}

	m := ageSingleRE.FindStringSubmatch(value)
	if m == nil {
		log.Warn("Altersbereich nicht lesbar", zap.String("value", raw))
		return
	}
	open, min, minPlus, max, maxPlus, unit := m[1], m[2], m[3], m[4], m[5], m[6]

	switch {
	case open != "":
		// "<37 weeks": nach unten offen, Obergrenze ist die Frühgeborenen-Marke.
		study.MaxAge = pretermMarker
		study.MaxAgeUnit = sources.NotApplicable
	case minPlus != "":
		// "85+ years": nach oben offen.
		study.MinAge = min
		study.MinAgeUnit = unit
		study.MaxAgeUnit = sources.NotApplicable
	case max != "":
		study.MinAge = min
		study.MinAgeUnit = unit
		if maxPlus == "" {
			study.MaxAge = max
			study.MaxAgeUnit = unit
		} else {
			study.MaxAgeUnit = sources.NotApplicable
		}
	default:
		// Eine einzelne Zahl ohne Modifikator ist kein Bereich.
		log.Warn("Altersbereich nicht lesbar", zap.String("value", raw))
	}
}

// aggregateAgeGroups faltet die kommagetrennten Teilbereiche der
// Altersgruppen-Spalte zu einem Gesamtbereich zusammen. "In utero" verdrängt
// jede numerische Untergrenze; ein "+" macht den Bereich nach oben offen.
func (s *session) aggregateAgeGroups(log *zap.Logger, study *models.Study, raw string) {
	var (
		minInUtero bool
		minSet     bool
		minVal     int
		minUnit    string
		maxSet     bool
		maxOpen    bool
		maxVal     int
		maxUnit    string
	)

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.EqualFold(part, "in utero") {
			minInUtero = true
			continue
		}

		m := ageGroupRE.FindStringSubmatch(part)
		if m == nil {
			log.Warn("Altersgruppe nicht lesbar", zap.String("value", part))
			continue
		}
		lo, hi, plus, unit := m[1], m[2], m[3], m[4]
		if !strings.EqualFold(unit, "years") {
			log.Debug("Altersgruppe mit abweichender Einheit", zap.String("value", part))
		}

		loVal, err := strconv.Atoi(lo)
		if err != nil {
			log.Warn("Altersgruppe nicht lesbar", zap.String("value", part))
			continue
		}

		if plus != "" {
			if !maxOpen {
				maxOpen = true
				maxUnit = unit
			}
			// Ein offener Teilbereich setzt die Untergrenze nur, wenn noch
			// keine etabliert ist; er nimmt nicht am laufenden Minimum teil.
			if !minSet {
				minSet = true
				minVal = loVal
				minUnit = unit
			}
			continue
		}

		if !minSet || loVal < minVal {
			minSet = true
			minVal = loVal
			minUnit = unit
		}
		if hi == "" {
			continue
		}
		hiVal, err := strconv.Atoi(hi)
		if err != nil {
			log.Warn("Altersgruppe nicht lesbar", zap.String("value", part))
			continue
		}
		if !maxSet || hiVal > maxVal {
			maxSet = true
			maxVal = hiVal
			maxUnit = unit
		}
	}

	switch {
	case minInUtero:
		study.MinAge = inUteroMarker
		study.MinAgeUnit = sources.NotApplicable
	case minSet:
		study.MinAge = strconv.Itoa(minVal)
		study.MinAgeUnit = minUnit
	}

	switch {
	case maxOpen:
		study.MaxAgeUnit = maxUnit
	case maxSet:
		study.MaxAge = strconv.Itoa(maxVal)
		study.MaxAgeUnit = maxUnit
	}
}
