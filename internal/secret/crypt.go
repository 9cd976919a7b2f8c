package secret

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"

	"dario.cat/mergo"
	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-task-keeper/internal/apperrors"
)

// Supported hashing methods.
const (
	// MethodPBKDF2 derives the hash with PBKDF2 over the configured
	// algorithm, using Rounds iterations.
	MethodPBKDF2 = "pbkdf2"

	// MethodDigest computes a plain salted digest: algorithm(salt || secret).
	MethodDigest = "digest"
)

// Supported digest algorithms.
const (
	AlgorithmSHA256 = "sha256"
	AlgorithmSHA512 = "sha512"
)

// Options configures how user secrets are salted and hashed.
//
// Zero fields are filled from defaults by [CheckOptions]; session-bound
// secrets deliberately ignore Options and always use a fixed SHA-256 digest
// (see [HashSessionSecret]).
type Options struct {
	// Algorithm is the digest algorithm name: "sha256" or "sha512".
	Algorithm string `env:"ALGORITHM" json:"algorithm"`

	// Length is the derived key length in bytes.
	Length int `env:"LENGTH" json:"length"`

	// Method selects the derivation method: "pbkdf2" or "digest".
	Method string `env:"METHOD" json:"method"`

	// Rounds is the PBKDF2 iteration count. Ignored by the digest method.
	Rounds int `env:"ROUNDS" json:"rounds"`

	// SaltLength is the salt length in bytes. Defaults to half of Length.
	SaltLength int `env:"SALT_LENGTH" json:"salt_length"`
}

// DefaultOptions returns the built-in hashing configuration.
func DefaultOptions() Options {
	return Options{
		Algorithm: AlgorithmSHA512,
		Length:    64,
		Method:    MethodPBKDF2,
		Rounds:    1,
	}
}

// CheckOptions merges caller-supplied overrides onto the defaults and
// validates every recognized field. A zero field takes its default value;
// SaltLength additionally defaults to half of the merged Length.
//
// Returns [apperrors.InvalidParameter] naming the first field whose merged
// value fails its shape check.
func CheckOptions(overrides Options) (Options, error) {
	merged := overrides
	if err := mergo.Merge(&merged, DefaultOptions()); err != nil {
		return Options{}, fmt.Errorf("error merging crypt options: %w", err)
	}

	if merged.SaltLength == 0 {
		merged.SaltLength = merged.Length / 2
	}

	switch merged.Algorithm {
	case AlgorithmSHA256, AlgorithmSHA512:
	default:
		return Options{}, apperrors.InvalidParameter("algorithm", merged.Algorithm, nil)
	}

	if merged.Length <= 0 {
		return Options{}, apperrors.InvalidParameter("length", merged.Length, nil)
	}

	switch merged.Method {
	case MethodPBKDF2, MethodDigest:
	default:
		return Options{}, apperrors.InvalidParameter("method", merged.Method, nil)
	}

	if merged.Rounds <= 0 {
		return Options{}, apperrors.InvalidParameter("rounds", merged.Rounds, nil)
	}

	if merged.SaltLength <= 0 {
		return Options{}, apperrors.InvalidParameter("saltLength", merged.SaltLength, nil)
	}

	return merged, nil
}

// NewSalt returns a fresh random salt of n bytes, hex-encoded.
func NewSalt(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// HashSecret computes the salted hash of secret according to opts and
// returns it hex-encoded. The same (secret, salt, opts) triple always yields
// the same hash, which is how stored credentials are verified.
func HashSecret(secretValue, salt string, opts Options) string {
	newHash := hashConstructor(opts.Algorithm)

	switch opts.Method {
	case MethodDigest:
		h := newHash()
		h.Write([]byte(salt))
		h.Write([]byte(secretValue))
		sum := h.Sum(nil)
		if len(sum) > opts.Length {
			sum = sum[:opts.Length]
		}
		return hex.EncodeToString(sum)
	default:
		key := pbkdf2.Key([]byte(secretValue), []byte(salt), opts.Rounds, opts.Length, newHash)
		return hex.EncodeToString(key)
	}
}

// HashSessionSecret hashes a session-bound secret with a fixed SHA-256
// digest. Session secrets are a distinct credential from login passwords
// and never follow the configured crypt options.
func HashSessionSecret(secretValue string) string {
	sum := sha256.Sum256([]byte(secretValue))
	return hex.EncodeToString(sum[:])
}

func hashConstructor(algorithm string) func() hash.Hash {
	if algorithm == AlgorithmSHA256 {
		return sha256.New
	}
	return sha512.New
}
