// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"

	"tiffin/config"
	"tiffin/internal/domain/service"
)

const (
	defaultIterations = 210_000
	saltBytes         = 16
	keyBytes          = 64
)

// pbkdf2Provider is a concrete implementation of the PasswordCryptographyProvider
// interface using PBKDF2-SHA512. Unlike bcrypt, the salt is kept as a separate
// column, which lets login re-derive the stored hash from the submitted
// password and compare.
type pbkdf2Provider struct {
	iterations int
}

// NewPBKDF2Provider is the constructor for pbkdf2Provider.
// It returns the implementation as a service.PasswordCryptographyProvider interface.
func NewPBKDF2Provider(cfg *config.Config) service.PasswordCryptographyProvider {
	iterations := defaultIterations
	if cfg.Crypto != nil && cfg.Crypto.Iterations > 0 {
		iterations = cfg.Crypto.Iterations
	}

	return &pbkdf2Provider{iterations: iterations}
}

// Encrypt generates a fresh random salt and derives the hash of the plaintext under it.
func (p *pbkdf2Provider) Encrypt(plaintext string) (salt, hash string, err error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", errors.Wrap(err, "generate salt")
	}

	salt = base64.StdEncoding.EncodeToString(raw)
	hash, err = p.EncryptWithSalt(plaintext, salt)
	if err != nil {
		return "", "", err
	}

	return salt, hash, nil
}

// EncryptWithSalt derives the hash of the plaintext under an existing salt.
func (p *pbkdf2Provider) EncryptWithSalt(plaintext, salt string) (string, error) {
	key := pbkdf2.Key([]byte(plaintext), []byte(salt), p.iterations, keyBytes, sha512.New)

	return base64.StdEncoding.EncodeToString(key), nil
}
