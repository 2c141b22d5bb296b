package utils

import (
	"crypto/rand"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// tokenBytes gives ~11 base58 characters, 64 bits of entropy.
const tokenBytes = 8

// NewID is the record primary key. It is echoed in responses but nothing is
// looked up by it; the public token is the only lookup key.
func NewID() string {
	return uuid.NewString()
}

// NewToken returns an opaque, unguessable public lookup key.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base58.Encode(b), nil
}
