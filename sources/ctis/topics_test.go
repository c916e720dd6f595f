package ctis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trial-hand/models"
)

func topicCodes(topics []models.Topic) []string {
	codes := make([]string, 0, len(topics))
	for _, topic := range topics {
		codes = append(codes, topic.Code)
	}
	return codes
}

func TestAddTopicsEmitsParentAndChild(t *testing.T) {
	s := testSession()
	study := &models.Study{}
	s.addTopics(s.log, study, "Diseases [C] - Nervous System Diseases [C10]")

	require.Len(t, study.Topics, 2)
	assert.Equal(t, "Diseases", study.Topics[0].Value)
	assert.Equal(t, "C", study.Topics[0].Code)
	assert.Equal(t, topicVocabulary, study.Topics[0].Vocabulary)
	assert.Equal(t, "Nervous System Diseases", study.Topics[1].Value)
	assert.Equal(t, "C10", study.Topics[1].Code)
}

func TestAddTopicsDeduplicatesByCodeAcrossRow(t *testing.T) {
	s := testSession()
	study := &models.Study{}
	s.addTopics(s.log, study, "Diseases [C] - Nervous System Diseases [C10], Diseases [C] - Neoplasms [C04], Diseases [C] - Nervous System Diseases [C10]")

	// Der gemeinsame Eltern-Knoten und das doppelte Kind erscheinen nur einmal.
	assert.Equal(t, []string{"C", "C10", "C04"}, topicCodes(study.Topics))
}

func TestAddTopicsNotPossibleToSpecify(t *testing.T) {
	s := testSession()
	study := &models.Study{}
	s.addTopics(s.log, study, "Not possible to specify")

	assert.Empty(t, study.Topics)
}

func TestAddTopicsSkipsUnreadableEntries(t *testing.T) {
	s := testSession()
	study := &models.Study{}
	s.addTopics(s.log, study, "kaputter Eintrag, Diseases [C] - Neoplasms [C04]")

	assert.Equal(t, []string{"C", "C04"}, topicCodes(study.Topics))
}
