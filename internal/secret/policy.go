// Package secret implements the password policy and the secret-hashing
// machinery of the identity store: Unicode-category predicates over
// candidate secrets, crypt option validation, salted hashing, and the fixed
// digest used for session-bound secrets.
package secret

import (
	"regexp"
	"unicode"

	"github.com/MKhiriev/go-task-keeper/internal/apperrors"
)

// shapePattern accepts strings built from letters, numbers, and punctuation,
// possibly separated by single spaces. Leading/trailing whitespace and
// consecutive spaces are rejected.
var shapePattern = regexp.MustCompile(`^[\p{L}\p{N}\p{P}]+( [\p{L}\p{N}\p{P}]+)*$`)

// HasDigit reports whether s contains at least one Unicode number (category N).
func HasDigit(s string) bool {
	return containsCategory(s, unicode.N)
}

// HasLower reports whether s contains at least one lowercase letter (category Ll).
func HasLower(s string) bool {
	return containsCategory(s, unicode.Ll)
}

// HasUpper reports whether s contains at least one uppercase letter (category Lu).
func HasUpper(s string) bool {
	return containsCategory(s, unicode.Lu)
}

// HasPunctuation reports whether s contains at least one punctuation rune (category P).
func HasPunctuation(s string) bool {
	return containsCategory(s, unicode.P)
}

// HasValidShape reports whether s is non-empty, free of leading/trailing
// whitespace, and composed of letters, numbers, and punctuation separated by
// at most single spaces.
func HasValidShape(s string) bool {
	return shapePattern.MatchString(s)
}

func containsCategory(s string, table *unicode.RangeTable) bool {
	for _, r := range s {
		if unicode.In(r, table) {
			return true
		}
	}
	return false
}

// CheckSecret validates a candidate secret against the password policy and
// returns it unchanged on success.
//
// Failures are reported in a fixed priority order so that only the first
// violated rule is named even when several apply:
//  1. malformed shape (empty, stray whitespace, disallowed runes);
//  2. missing lowercase letter;
//  3. missing uppercase letter;
//  4. missing digit;
//  5. missing punctuation.
//
// All failures are [apperrors.InvalidParameter] errors naming "secret".
func CheckSecret(candidate string) (string, error) {
	switch {
	case !HasValidShape(candidate):
		return "", apperrors.InvalidParameter("secret", candidate, ErrMalformedSecret)
	case !HasLower(candidate):
		return "", apperrors.InvalidParameter("secret", candidate, ErrMissingLower)
	case !HasUpper(candidate):
		return "", apperrors.InvalidParameter("secret", candidate, ErrMissingUpper)
	case !HasDigit(candidate):
		return "", apperrors.InvalidParameter("secret", candidate, ErrMissingDigit)
	case !HasPunctuation(candidate):
		return "", apperrors.InvalidParameter("secret", candidate, ErrMissingPunctuation)
	default:
		return candidate, nil
	}
}
