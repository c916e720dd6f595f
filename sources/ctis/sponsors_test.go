package ctis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trial-hand/models"
)

func TestAddSponsorsAlignsLists(t *testing.T) {
	s := testSession()
	study := &models.Study{}
	s.addSponsors(s.log, study, "Acme Pharma, Uni Graz", "Pharmaceutical company, Academic institution")

	require.Len(t, study.Organisations, 2)
	assert.Equal(t, "Acme Pharma", study.Organisations[0].Name)
	assert.Equal(t, "Pharmaceutical company", study.Organisations[0].Type)
	assert.Equal(t, roleSponsor, study.Organisations[0].Role)
	assert.Equal(t, "Uni Graz", study.Organisations[1].Name)
	assert.Equal(t, "Academic institution", study.Organisations[1].Type)
}

func TestAddSponsorsLengthMismatchDropsField(t *testing.T) {
	s := testSession()
	study := &models.Study{}
	s.addSponsors(s.log, study, "Acme Pharma, Uni Graz", "Pharmaceutical company, Academic institution, Hospital")

	assert.Empty(t, study.Organisations)
}

func TestAddSponsorsDuplicateNameKeepsFirstType(t *testing.T) {
	s := testSession()
	study := &models.Study{}
	s.addSponsors(s.log, study, "Acme Pharma, Acme Pharma", "Pharmaceutical company, Hospital")

	require.Len(t, study.Organisations, 1)
	assert.Equal(t, "Pharmaceutical company", study.Organisations[0].Type)
}

func TestAddSponsorsAbsent(t *testing.T) {
	s := testSession()
	study := &models.Study{}
	s.addSponsors(s.log, study, "N/A", "N/A")

	assert.Empty(t, study.Organisations)
}
