// Package service defines interfaces for domain services.
// These services encapsulate logic that doesn't naturally fit within an entity,
// often involving external concerns like cryptography or token generation.
package service

// PasswordCryptographyProvider derives salted password hashes. The derivation
// is deterministic for a given (plaintext, salt) pair, which lets callers
// verify a password by re-deriving the hash and comparing it with the stored
// value.
type PasswordCryptographyProvider interface {
	// Encrypt generates a fresh random salt and derives the hash of the
	// plaintext under it. Both values are returned as printable strings
	// suitable for storage.
	Encrypt(plaintext string) (salt, hash string, err error)

	// EncryptWithSalt derives the hash of the plaintext under an existing
	// salt, as produced by a previous Encrypt call.
	EncryptWithSalt(plaintext, salt string) (string, error)
}
