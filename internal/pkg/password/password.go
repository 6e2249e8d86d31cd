// Package password is the one-way credential verifier. It wraps bcrypt
// so the rest of the system never touches hash internals: verifiers are
// opaque strings, equality is only ever decided by Compare.
package password

import "golang.org/x/crypto/bcrypt"

// dummyVerifier is a syntactically valid bcrypt hash compared against
// when an identifier is unknown at sign-in, so that failure path costs
// the same as a real mismatch. The compare result is always discarded.
const dummyVerifier = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hash derives a salted verifier from plaintext. Two calls with the
// same plaintext produce different verifiers.
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Compare reports whether plaintext is the input that produced
// verifier. No early-exit comparison against the secret: bcrypt does
// the full key derivation on every call.
func Compare(plaintext, verifier string) bool {
	return bcrypt.CompareHashAndPassword([]byte(verifier), []byte(plaintext)) == nil
}

// DummyCompare burns one full compare against a fixed verifier and
// discards the outcome.
func DummyCompare(plaintext string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyVerifier), []byte(plaintext))
}
