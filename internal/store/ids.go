package store

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// idByteLength sizes the random identifier space. 16 bytes (32 hex digits)
// makes an accidental collision with a live record vanishingly unlikely, but
// allocation still collision-checks and retries: uniqueness is a hard
// invariant, never best-effort.
const idByteLength = 16

// maxIDAttempts bounds the retry loop. Exhausting it means the random source
// is broken, not that the space is full.
const maxIDAttempts = 100

var errIDSpaceExhausted = errors.New("could not allocate a unique identifier")

// newRandomID returns a fresh random identifier of idByteLength bytes,
// hex-encoded.
func newRandomID() (string, error) {
	buf := make([]byte, idByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating identifier: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// allocateID draws random identifiers until one is not already taken
// according to the supplied predicate. The caller must hold whatever lock
// protects the live key set for the duration of the call.
func allocateID(taken func(id string) bool) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := newRandomID()
		if err != nil {
			return "", err
		}
		if !taken(id) {
			return id, nil
		}
	}

	return "", errIDSpaceExhausted
}
