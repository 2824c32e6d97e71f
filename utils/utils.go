package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Sha3Hash returns the SHA3-256 digest of message.
func Sha3Hash(message []byte) []byte {
	sum := sha3.Sum256(message)
	return sum[:]
}

// Fingerprint returns the hex SHA3-256 digest of s. It identifies a
// recovered secret in logs without printing the secret itself.
func Fingerprint(s string) string {
	return hex.EncodeToString(Sha3Hash([]byte(s)))
}
