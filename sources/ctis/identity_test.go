package ctis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trial-hand/sources"
)

func identitySession() *session {
	return newSession(zap.NewNop(), sources.Header{})
}

func TestResolveIdentity(t *testing.T) {
	s := identitySession()

	base, suffix, ok := s.resolveIdentity("2024-505512-34-00")
	require.True(t, ok)
	assert.Equal(t, "2024-505512-34", base)
	assert.Equal(t, 0, suffix)
}

func TestResolveIdentityRejectsMalformedNumbers(t *testing.T) {
	s := identitySession()

	for _, raw := range []string{
		"",
		"2024-505512-34",
		"2024-505512-34-001",
		"2024-505512-34-xy",
	} {
		_, _, ok := s.resolveIdentity(raw)
		assert.False(t, ok, raw)
	}
	// Verworfene Zeilen dürfen keinen Identitätszustand hinterlassen.
	assert.Empty(t, s.resubmissions)
}

func TestResolveIdentityHighestResubmissionWins(t *testing.T) {
	s := identitySession()

	_, _, ok := s.resolveIdentity("2024-505512-34-01")
	require.True(t, ok)

	// Veraltete und doppelte Resubmissionen werden verworfen.
	_, _, ok = s.resolveIdentity("2024-505512-34-00")
	assert.False(t, ok)
	_, _, ok = s.resolveIdentity("2024-505512-34-01")
	assert.False(t, ok)

	base, suffix, ok := s.resolveIdentity("2024-505512-34-02")
	require.True(t, ok)
	assert.Equal(t, "2024-505512-34", base)
	assert.Equal(t, 2, suffix)
}
