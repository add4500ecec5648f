// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CredentialVerifier checks a local password against a stored hash.
type CredentialVerifier interface {
	// Verify reports whether plaintext matches storedHash. The comparison time
	// does not depend on the content of plaintext. It fails with
	// ErrMalformedHash when storedHash is not a recognized hash format.
	Verify(storedHash, plaintext string) (bool, error)
}

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	CredentialVerifier

	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// ValidatePasswordStrength rejects passwords that do not meet the configured policy.
	ValidatePasswordStrength(password string) error
}
