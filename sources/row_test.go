package sources

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passthroughCleaner struct{}

func (passthroughCleaner) Clean(raw string) string { return strings.TrimSpace(raw) }

func TestReadHeaderStripsBOM(t *testing.T) {
	h, err := ReadHeader([]string{"\ufeffTrial number", "Title"}, []string{"Trial number"})
	require.NoError(t, err)
	assert.Equal(t, 0, h["Trial number"])
	assert.Equal(t, 1, h["Title"])
}

func TestReadHeaderMissingRequiredColumn(t *testing.T) {
	_, err := ReadHeader([]string{"Trial number"}, []string{"Trial number", "Title"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Title")
}

func TestRowValue(t *testing.T) {
	h, err := ReadHeader([]string{"A", "B"}, []string{"A", "B"})
	require.NoError(t, err)

	row := Row{Header: h, Fields: []string{" eins "}, Cleaner: passthroughCleaner{}}
	assert.Equal(t, "eins", row.Value("A"))
	// Kurze Zeilen liefern für fehlende Felder den Leerstring.
	assert.Equal(t, "", row.Value("B"))

	assert.Panics(t, func() { row.Value("C") })
}
