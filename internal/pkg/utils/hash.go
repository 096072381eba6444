package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashStrings derives a stable identifier from its inputs, used where the
// upstream data carries no identifier of its own.
func HashStrings(parts ...string) string {
	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
