package questionnaire

import (
	"crypto/rand"
	"encoding/hex"
)

// NewToken returns an opaque, unguessable shareable token. Uniqueness is
// enforced by the store's unique constraint on shareable_token.
func NewToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
