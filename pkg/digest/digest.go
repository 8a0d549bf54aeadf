package digest

// Digest is the password hashing capability the rest of the module depends
// on. Generate produces a salted one-way hash of the plaintext; Validate
// reports whether candidate hashes to a value consistent with hash.
//
// Validate never returns an error: a mismatch, an empty hash or a malformed
// hash all report false. Failing to verify a password is expected control
// flow, not a failure condition.
type Digest interface {
	Generate(password string) (string, error)
	Validate(hash, candidate string) bool
}
