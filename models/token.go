package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access. SignedString holds the compact
// serialized form of the token (header.payload.signature) ready to be
// transmitted in HTTP headers or stored on the client side.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// TokenClaims provides access to the claim set carried by the token.
	TokenClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// TokenClaims is the claim set embedded in every issued token: the standard
// registered claims (iss, sub, exp, iat) plus the session identifier.
//
// The "sub" claim carries the user ID; "sid" carries the session ID so that
// the transport layer can revalidate the session on every request without a
// separate cookie.
type TokenClaims struct {
	jwt.RegisteredClaims

	// SessionID is the identifier of the session the token was issued for.
	SessionID string `json:"sid"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim. Returns an error if the subject claim is missing or empty.
func (t *Token) GetUserID() (string, error) {
	return t.GetSubject()
}

// GetSessionID returns the session identifier carried by the "sid" claim.
func (t *Token) GetSessionID() string {
	return t.SessionID
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
