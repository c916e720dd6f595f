package ctis

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"trial-hand/models"
	"trial-hand/sources"
)

const topicVocabulary = "MeSH tree"

// Einträge der Form "Diseases [C] - Nervous System Diseases [C10]".
var topicPairRE = regexp.MustCompile(`^(.+?)\s*\[([^\[\]]+)\]\s*-\s*(.+?)\s*\[([^\[\]]+)\]$`)

// addTopics liest die Therapiegebiete. Jeder Eintrag trägt Eltern- und
// Kind-Knoten des Vokabularbaums samt Codes; beide Knoten werden gespeichert,
// dedupliziert über den Code über die gesamte Zeile hinweg.
func (s *session) addTopics(log *zap.Logger, study *models.Study, raw string) {
	if sources.Absent(raw) {
		return
	}

	seen := make(map[string]bool)
	appendTopic := func(value, code string) {
		if seen[code] {
			return
		}
		seen[code] = true
		study.Topics = append(study.Topics, models.Topic{
			Value:      value,
			Vocabulary: topicVocabulary,
			Code:       code,
		})
	}

	for _, part := range strings.Split(raw, ",") {
		part = sources.StripQuotes(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if strings.EqualFold(part, "not possible to specify") {
			continue
		}

		m := topicPairRE.FindStringSubmatch(part)
		if m == nil {
			log.Warn("Therapiegebiet nicht lesbar, Eintrag übersprungen",
				zap.String("value", part))
			continue
		}
		appendTopic(m[1], m[2])
		appendTopic(m[3], m[4])
	}
}
