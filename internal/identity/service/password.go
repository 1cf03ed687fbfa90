package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashPassword returns the uppercase hex SHA-256 digest of the plaintext.
// This is the digest format already present in the stored data: unsalted and
// fast. Any real deployment should migrate to a slow salted KDF; until then
// the contract is deterministic digests.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func VerifyPassword(password, digest string) bool {
	return HashPassword(password) == digest
}
