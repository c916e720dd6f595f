package ctis

import (
	"strconv"

	"go.uber.org/zap"
)

const (
	// EUCT-Nummern haben die Form JJJJ-NNNNNN-LL-RR: 14 Zeichen Basis,
	// ein Trennzeichen, zwei Ziffern Resubmissionsnummer.
	trialNumberLength = 17
	baseIDLength      = 14
)

// resolveIdentity zerlegt die EUCT-Nummer in Basis-Identifier und
// Resubmissionsnummer und entscheidet, ob die Zeile einen bereits gehaltenen
// Datensatz ersetzt. Die Entscheidung ist reihenfolgeunabhängig: am Ende
// gewinnt immer die höchste Resubmissionsnummer.
func (s *session) resolveIdentity(raw string) (string, int, bool) {
	if len(raw) != trialNumberLength {
		s.log.Warn("EUCT-Nummer hat unerwartete Länge, Zeile verworfen",
			zap.String("trial_id", raw),
			zap.Int("length", len(raw)))
		return "", 0, false
	}

	suffix, err := strconv.Atoi(raw[baseIDLength+1:])
	if err != nil {
		s.log.Warn("Resubmissions-Suffix ist nicht numerisch, Zeile verworfen",
			zap.String("trial_id", raw),
			zap.Error(err))
		return "", 0, false
	}

	base := raw[:baseIDLength]
	if current, seen := s.resubmissions[base]; seen {
		if suffix == current {
			s.log.Warn("Doppelte Resubmission, Zeile verworfen",
				zap.String("trial_id", base),
				zap.Int("resubmission", suffix))
			return "", 0, false
		}
		if suffix < current {
			s.log.Warn("Veraltete Resubmission, Zeile verworfen",
				zap.String("trial_id", base),
				zap.Int("resubmission", suffix),
				zap.Int("retained", current))
			return "", 0, false
		}
	}

	s.resubmissions[base] = suffix
	return base, suffix, true
}
