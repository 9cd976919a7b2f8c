package secret

import "errors"

// Policy violation causes wrapped into the InvalidParameter errors returned
// by [CheckSecret]. Callers should use [errors.Is] to match against these
// values.
var (
	ErrMalformedSecret    = errors.New("secret is malformed: expected letters, numbers and punctuation separated by single spaces")
	ErrMissingLower       = errors.New("secret is missing a lower case letter")
	ErrMissingUpper       = errors.New("secret is missing an upper case letter")
	ErrMissingDigit       = errors.New("secret is missing a digit")
	ErrMissingPunctuation = errors.New("secret is missing a punctuation character")
)
