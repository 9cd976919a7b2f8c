package secret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/apperrors"
)

// ─────────────────────────────────────────────
// CheckOptions — merging
// ─────────────────────────────────────────────

// TestCheckOptions_Defaults verifies that a zero Options value yields the
// full default configuration, with the salt length derived from the key
// length.
func TestCheckOptions_Defaults(t *testing.T) {
	got, err := CheckOptions(Options{})
	require.NoError(t, err)

	assert.Equal(t, AlgorithmSHA512, got.Algorithm)
	assert.Equal(t, 64, got.Length)
	assert.Equal(t, MethodPBKDF2, got.Method)
	assert.Equal(t, 1, got.Rounds)
	assert.Equal(t, 32, got.SaltLength)
}

// TestCheckOptions_PartialOverride verifies that non-zero fields win and
// zero fields are filled from defaults.
func TestCheckOptions_PartialOverride(t *testing.T) {
	got, err := CheckOptions(Options{
		Algorithm: AlgorithmSHA256,
		Length:    32,
	})
	require.NoError(t, err)

	assert.Equal(t, AlgorithmSHA256, got.Algorithm)
	assert.Equal(t, 32, got.Length)
	assert.Equal(t, MethodPBKDF2, got.Method)
	assert.Equal(t, 1, got.Rounds)
	assert.Equal(t, 16, got.SaltLength)
}

// TestCheckOptions_ExplicitSaltLength verifies that a caller-supplied salt
// length is kept instead of being recomputed from Length.
func TestCheckOptions_ExplicitSaltLength(t *testing.T) {
	got, err := CheckOptions(Options{SaltLength: 8})
	require.NoError(t, err)

	assert.Equal(t, 8, got.SaltLength)
	assert.Equal(t, 64, got.Length)
}

func TestCheckOptions_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		overrides Options
		parameter string
	}{
		{"unknown algorithm", Options{Algorithm: "md5"}, "algorithm"},
		{"negative length", Options{Length: -1}, "length"},
		{"unknown method", Options{Method: "bcrypt"}, "method"},
		{"negative rounds", Options{Rounds: -10}, "rounds"},
		{"negative salt length", Options{SaltLength: -4}, "saltLength"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckOptions(tt.overrides)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidParameter)

			var appErr *apperrors.Error
			require.ErrorAs(t, err, &appErr)
			detail, ok := appErr.Detail.(apperrors.ParameterDetail)
			require.True(t, ok)
			assert.Equal(t, tt.parameter, detail.ParameterName)
		})
	}
}

// ─────────────────────────────────────────────
// Hashing
// ─────────────────────────────────────────────

// TestHashSecret_Deterministic verifies the core credential-check property:
// the same (secret, salt, options) triple always produces the same hash, and
// changing any component changes the result.
func TestHashSecret_Deterministic(t *testing.T) {
	opts, err := CheckOptions(Options{})
	require.NoError(t, err)

	first := HashSecret("aFf3cted!", "salt", opts)
	second := HashSecret("aFf3cted!", "salt", opts)
	assert.Equal(t, first, second)

	assert.NotEqual(t, first, HashSecret("aFf3cted?", "salt", opts))
	assert.NotEqual(t, first, HashSecret("aFf3cted!", "other-salt", opts))
}

// TestHashSecret_MethodsDiffer verifies that pbkdf2 and plain digest
// derivations do not collide for the same inputs.
func TestHashSecret_MethodsDiffer(t *testing.T) {
	pbkdf2Opts, err := CheckOptions(Options{Method: MethodPBKDF2})
	require.NoError(t, err)
	digestOpts, err := CheckOptions(Options{Method: MethodDigest})
	require.NoError(t, err)

	assert.NotEqual(t,
		HashSecret("aFf3cted!", "salt", pbkdf2Opts),
		HashSecret("aFf3cted!", "salt", digestOpts),
	)
}

// TestHashSecret_DigestTruncation verifies that the digest method honours the
// configured key length.
func TestHashSecret_DigestTruncation(t *testing.T) {
	opts, err := CheckOptions(Options{Method: MethodDigest, Length: 16, Algorithm: AlgorithmSHA256})
	require.NoError(t, err)

	// 16 bytes hex-encoded.
	assert.Len(t, HashSecret("aFf3cted!", "salt", opts), 32)
}

// TestHashSessionSecret_FixedDigest verifies that session secrets ignore the
// configured crypt options entirely.
func TestHashSessionSecret_FixedDigest(t *testing.T) {
	hashed := HashSessionSecret("session-secret")

	// SHA-256 hex-encoded, regardless of any Options in play.
	assert.Len(t, hashed, 64)
	assert.Equal(t, hashed, HashSessionSecret("session-secret"))
	assert.NotEqual(t, hashed, HashSessionSecret("other"))
}

func TestNewSalt(t *testing.T) {
	salt, err := NewSalt(16)
	require.NoError(t, err)
	assert.Len(t, salt, 32)

	other, err := NewSalt(16)
	require.NoError(t, err)
	assert.NotEqual(t, salt, other)
}
