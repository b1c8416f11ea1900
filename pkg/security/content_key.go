package security

import (
	"crypto/rand"
	"encoding/base64"
)

// NewContentKey generates a 256-bit symmetric key for a content item,
// base64-encoded for storage. Generated server-side when the client
// doesn't bring its own.
func NewContentKey() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(b), nil
}
