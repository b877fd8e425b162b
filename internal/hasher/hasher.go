package hasher

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
)

// Hasher derives stored password digests with argon2id over a fixed salt,
// so the same plaintext always yields the same digest.
type Hasher struct {
	salt []byte
}

// New creates a Hasher using salt for every digest.
func New(salt string) *Hasher {
	return &Hasher{salt: []byte(salt)}
}

// Hash returns the hex encoded digest of password.
func (h *Hasher) Hash(password string) string {
	key := argon2.IDKey([]byte(password), h.salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key)
}

// Compare reports whether password hashes to hash.
func (h *Hasher) Compare(hash, password string) bool {
	return subtle.ConstantTimeCompare([]byte(hash), []byte(h.Hash(password))) == 1
}
