// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"tiffin/internal/domain/service"
)

// jwtIssuer is a concrete implementation of the TokenIssuer interface using the JWT standard.
// The signing key is supplied per call, so the issuer itself holds no state.
type jwtIssuer struct{}

// NewJWTIssuer is the constructor for jwtIssuer.
// It returns the implementation as a service.TokenIssuer interface.
func NewJWTIssuer() service.TokenIssuer {
	return &jwtIssuer{}
}

// Issue creates a signed HS256 token for the subject with the given validity window.
func (s *jwtIssuer) Issue(signingKey, subject string, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,          // Subject (who the token is for)
		"iat": issuedAt.Unix(),  // Issued At
		"exp": expiresAt.Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signingKey))
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}
