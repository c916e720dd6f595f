package sources

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsent(t *testing.T) {
	assert.True(t, Absent(""))
	assert.True(t, Absent("   "))
	assert.True(t, Absent("N/A"))
	assert.True(t, Absent("n/a"))
	assert.True(t, Absent("Not applicable"))
	assert.True(t, Absent("not APPLICABLE"))
	assert.False(t, Absent("Ongoing"))
	assert.False(t, Absent("N/A extra"))
}

func TestStripQuotes(t *testing.T) {
	assert.Equal(t, "Wert", StripQuotes(`"Wert"`))
	assert.Equal(t, `"halb`, StripQuotes(`"halb`))
	assert.Equal(t, "", StripQuotes(`""`))
	assert.Equal(t, `"`, StripQuotes(`"`))
	assert.Equal(t, "plain", StripQuotes("plain"))
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, "Crohn's & Colitis", Unescape("Crohn&#39;s &amp; Colitis"))
	assert.Equal(t, "unverändert", Unescape("unverändert"))
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "Male, Female", TitleWords("MALE, FEMALE"))
	assert.Equal(t, "Male", TitleWords("male"))
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"15/01/2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"15 January 2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, ok := ParseDate(tc.in)
		require.True(t, ok, tc.in)
		assert.True(t, got.Equal(tc.want), tc.in)
	}

	_, ok := ParseDate("gestern")
	assert.False(t, ok)
}

func TestCanonicalPhase(t *testing.T) {
	for in, want := range map[string]string{
		"I": "1", "ii": "2", "III": "3", "IV": "4", "2": "2",
	} {
		got, ok := CanonicalPhase(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got)
	}

	_, ok := CanonicalPhase("V")
	assert.False(t, ok)
}
