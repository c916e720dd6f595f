package ctis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"trial-hand/models"
	"trial-hand/sources"
)

func testSession() *session {
	return &session{log: zap.NewNop(), cleaner: cleaner{}}
}

func TestParseAgesBothSourcesAbsent(t *testing.T) {
	s := testSession()
	study := &models.Study{}
	s.parseAges(s.log, study, "N/A", "")

	assert.Equal(t, sources.NotApplicable, study.MinAge)
	assert.Equal(t, sources.NotApplicable, study.MinAgeUnit)
	assert.Equal(t, sources.NotApplicable, study.MaxAge)
	assert.Equal(t, sources.NotApplicable, study.MaxAgeUnit)
}

func TestParseAgesSecondaryIdentifier(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		minAge  string
		minUnit string
		maxAge  string
		maxUnit string
	}{
		{"geschlossener Bereich", "18-64 years", "18", "years", "64", "years"},
		{"nach oben offen", "85+ years", "85", "years", "", sources.NotApplicable},
		{"gemischte Einheiten", "0 days - 17 years", "0", "days", "17", "years"},
		{"Frühgeborene", "<37 weeks", "", "", pretermMarker, sources.NotApplicable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := testSession()
			study := &models.Study{}
			s.parseAges(s.log, study, tc.in, "")

			assert.Equal(t, tc.minAge, study.MinAge)
			assert.Equal(t, tc.minUnit, study.MinAgeUnit)
			assert.Equal(t, tc.maxAge, study.MaxAge)
			assert.Equal(t, tc.maxUnit, study.MaxAgeUnit)
		})
	}
}

func TestParseAgesSecondaryIdentifierUnreadable(t *testing.T) {
	s := testSession()
	study := &models.Study{}
	s.parseAges(s.log, study, "42", "")

	assert.Empty(t, study.MinAge)
	assert.Empty(t, study.MaxAge)
}

func TestParseAgesGroupAggregation(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		minAge  string
		minUnit string
		maxAge  string
		maxUnit string
	}{
		{"einzelne Gruppe", "18-64 years", "18", "years", "64", "years"},
		{"zwei Gruppen", "18-64 years, 65+ years", "18", "years", "", "years"},
		{"in utero verdrängt Untergrenze", "in utero, 0-17 years", inUteroMarker, sources.NotApplicable, "17", "years"},
		{"offenes Ende gewinnt", "65+ years, 18-64 years", "18", "years", "", "years"},
		{"erster offener Teilbereich setzt Untergrenze", "70+ years, 65+ years", "70", "years", "", "years"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := testSession()
			study := &models.Study{}
			s.parseAges(s.log, study, "", tc.in)

			assert.Equal(t, tc.minAge, study.MinAge)
			assert.Equal(t, tc.minUnit, study.MinAgeUnit)
			assert.Equal(t, tc.maxAge, study.MaxAge)
			assert.Equal(t, tc.maxUnit, study.MaxAgeUnit)
		})
	}
}

func TestParseAgesGroupSkipsUnreadableParts(t *testing.T) {
	s := testSession()
	study := &models.Study{}
	s.parseAges(s.log, study, "", "kaputt, 18-64 years")

	assert.Equal(t, "18", study.MinAge)
	assert.Equal(t, "64", study.MaxAge)
}
