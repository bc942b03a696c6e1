package resettoken

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"storefront/internal/core/domain/user"
)

const tokenByteLen = 32

// Generator produces opaque reset tokens from a cryptographically secure
// source and deterministic SHA-256 fingerprints for storing them. A plain
// hash is enough here, the token already carries full entropy.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateToken() user.ResetToken {
	b := make([]byte, tokenByteLen)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("could not read random bytes: %v", err))
	}
	return user.ResetToken(hex.EncodeToString(b))
}

func (g *Generator) Fingerprint(token user.ResetToken) user.ResetTokenFingerprint {
	digest := sha256.Sum256([]byte(token))
	return user.ResetTokenFingerprint(hex.EncodeToString(digest[:]))
}
