package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// newToken issues an opaque bearer token. It carries no claims and is never
// validated server-side; uniqueness is all it guarantees.
func newToken() (string, error) {
	buf := make([]byte, 18)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return "token_" + hex.EncodeToString(buf), nil
}
