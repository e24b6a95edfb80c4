package security

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *PasswordHasher {
	t.Helper()

	hasher, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return hasher
}

func TestPasswordHasherRoundTrip(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher(t)

	for _, plaintext := range []string{"testtest", "secret", "çãõ ünïcødé", " "} {
		digest, err := hasher.Hash(plaintext)
		require.NoError(t, err)
		require.NotEqual(t, plaintext, digest)
		require.True(t, hasher.Verify(plaintext, digest), plaintext)
	}
}

func TestPasswordHasherSaltsEveryDigest(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher(t)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, hasher.Verify("same-password", first))
	require.True(t, hasher.Verify("same-password", second))
}

func TestPasswordHasherRejectsMismatch(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher(t)

	digest, err := hasher.Hash("alice-password")
	require.NoError(t, err)
	other, err := hasher.Hash("bob-password")
	require.NoError(t, err)

	require.NotEqual(t, digest, other)
	require.False(t, hasher.Verify("bob-password", digest))
	require.False(t, hasher.Verify("alice-password", other))
	require.False(t, hasher.Verify("alice-password", "not-a-bcrypt-digest"))
	require.False(t, hasher.Verify("alice-password", ""))
	require.False(t, hasher.VerifyDummy("alice-password"))
}

func TestNewPasswordHasherCost(t *testing.T) {
	t.Parallel()

	_, err := NewPasswordHasher(bcrypt.MaxCost + 1)
	require.Error(t, err)

	_, err = NewPasswordHasher(1)
	require.Error(t, err)
}
