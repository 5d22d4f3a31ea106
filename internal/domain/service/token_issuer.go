package service

import "time"

// TokenIssuer mints signed access tokens for authenticated customers.
//
// The signing key is supplied per call rather than held by the issuer:
// each login signs its token with the customer's freshly derived password
// hash, so tokens are not verifiable without the customer record.
type TokenIssuer interface {
	// Issue creates a signed token for the given subject with the given
	// validity window.
	Issue(signingKey, subject string, issuedAt, expiresAt time.Time) (string, error)
}
