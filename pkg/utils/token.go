package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const secureTokenBytes = 32

// GenerateSecureToken returns a 64-character hex string built from 32
// cryptographically random bytes. Used for email verification and
// password reset tokens embedded in URLs.
func GenerateSecureToken() string {
	b := make([]byte, secureTokenBytes)
	if _, err := rand.Read(b); err != nil {
		// A broken system random source is not recoverable.
		panic(fmt.Sprintf("secure random source unavailable: %v", err))
	}
	return hex.EncodeToString(b)
}
