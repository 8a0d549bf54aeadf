package digest

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id is a memory-hard Digest implementation producing hashes in the
// standard PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
//
// Parameters are embedded in the hash, so they can be tuned over time
// without invalidating stored credentials.
type Argon2id struct {
	memory  uint32
	time    uint32
	threads uint8
	saltLen uint32
	keyLen  uint32
}

// Argon2Option configures an Argon2id digest.
type Argon2Option func(*Argon2id)

// WithMemory sets the memory cost in KiB.
func WithMemory(kib uint32) Argon2Option {
	return func(a *Argon2id) {
		a.memory = kib
	}
}

// WithTime sets the number of passes over memory.
func WithTime(passes uint32) Argon2Option {
	return func(a *Argon2id) {
		a.time = passes
	}
}

// WithThreads sets the degree of parallelism.
func WithThreads(threads uint8) Argon2Option {
	return func(a *Argon2id) {
		a.threads = threads
	}
}

// NewArgon2id creates an argon2id-backed Digest with the RFC 9106
// low-memory recommended parameters as defaults.
func NewArgon2id(opts ...Argon2Option) *Argon2id {
	a := &Argon2id{
		memory:  64 * 1024,
		time:    1,
		threads: 4,
		saltLen: 16,
		keyLen:  32,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Generate hashes password with a fresh random salt.
func (a *Argon2id) Generate(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, a.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}

	key := argon2.IDKey([]byte(password), salt, a.time, a.memory, a.threads, a.keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, a.memory, a.time, a.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Validate reports whether candidate matches the stored hash. The hash is
// verified with its own embedded parameters, not the digest's current ones.
func (a *Argon2id) Validate(hash, candidate string) bool {
	if hash == "" || candidate == "" {
		return false
	}

	memory, time, threads, salt, key, err := decodeArgon2id(hash)
	if err != nil {
		return false
	}

	derived := argon2.IDKey([]byte(candidate), salt, time, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, derived) == 1
}

func decodeArgon2id(hash string) (memory, time uint32, threads uint8, salt, key []byte, err error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	return memory, time, threads, salt, key, nil
}
