package ctis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trial-hand/models"
)

func TestAddCountriesWalksColonChain(t *testing.T) {
	s := testSession()
	study := &models.Study{}
	s.addCountries(s.log, study, "Austria: Ongoing, Belgium: Ended, France: Ongoing")

	require.Len(t, study.Countries, 3)
	assert.Equal(t, models.CountryStatus{Country: "Austria", Status: "Ongoing"}, stripIDs(study.Countries[0]))
	assert.Equal(t, models.CountryStatus{Country: "Belgium", Status: "Ended"}, stripIDs(study.Countries[1]))
	assert.Equal(t, models.CountryStatus{Country: "France", Status: "Ongoing"}, stripIDs(study.Countries[2]))
}

func TestAddCountriesSinglePair(t *testing.T) {
	s := testSession()
	study := &models.Study{}
	s.addCountries(s.log, study, "Germany: Authorised, recruitment pending")

	require.Len(t, study.Countries, 1)
	assert.Equal(t, "Germany", study.Countries[0].Country)
	assert.Equal(t, "Authorised, recruitment pending", study.Countries[0].Status)
}

func TestAddCountriesWithoutSeparator(t *testing.T) {
	s := testSession()
	study := &models.Study{}
	s.addCountries(s.log, study, "Germany")

	assert.Empty(t, study.Countries)
}

func TestAddCountriesAbsent(t *testing.T) {
	s := testSession()
	study := &models.Study{}
	s.addCountries(s.log, study, "N/A")

	assert.Empty(t, study.Countries)
}

func stripIDs(cs models.CountryStatus) models.CountryStatus {
	return models.CountryStatus{Country: cs.Country, Status: cs.Status}
}
