// Package digest provides one-way password hashing and verification behind
// a small two-method interface, so the hashing algorithm is swappable
// without touching the credential store.
//
// Two implementations ship out of the box:
//
//   - Bcrypt – the default, backed by golang.org/x/crypto/bcrypt with a
//     configurable cost factor.
//   - Argon2id – memory-hard hashing in the PHC string format, backed by
//     golang.org/x/crypto/argon2.
//
// # Usage
//
//	d := digest.NewBcrypt()
//	hash, err := d.Generate("s3cret")
//	if err != nil { ... }
//
//	ok := d.Validate(hash, "s3cret") // true
//	ok = d.Validate(hash, "nope")    // false, never an error
//
// Validate treats mismatches and malformed hashes as a plain false: failing
// to verify a credential is a normal outcome for a login flow, not an
// exceptional one.
package digest
