package domain

import (
	"crypto/sha256"
	"encoding/base32"
	"strings"
)

// hashSize is the number of SHA-256 bytes kept in a Hash (160 bits).
const hashSize = 20

var hashEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Hash is an opaque, printable fingerprint. Equality is exact string equality.
type Hash string

// HashBytes returns the lowercase base32 encoding of the first 160 bits of sha256(b).
func HashBytes(b []byte) Hash {
	sum := sha256.Sum256(b)
	return Hash(strings.ToLower(hashEncoding.EncodeToString(sum[:hashSize])))
}

// String returns the hash as a plain string.
func (h Hash) String() string {
	return string(h)
}
