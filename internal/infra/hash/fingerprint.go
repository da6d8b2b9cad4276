package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint is the hex SHA-256 of a schema's canonical bytes. It is the
// equality key used for schema id deduplication.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func FingerprintString(text string) string {
	return Fingerprint([]byte(text))
}
