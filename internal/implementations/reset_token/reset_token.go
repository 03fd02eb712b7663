package resettoken

import (
	"adikart/internal/core/domain/user"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const tokenByteCount = 20

// Generator produces 160-bit hex-encoded reset tokens from the
// OS entropy source.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateResetToken() user.ResetToken {
	b := make([]byte, tokenByteCount)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("could not read random bytes: %v", err))
	}
	return user.ResetToken(hex.EncodeToString(b))
}

// SHA256Hasher digests raw tokens for storage and lookup.
type SHA256Hasher struct{}

func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

func (h *SHA256Hasher) HashResetToken(token user.ResetToken) user.ResetTokenHash {
	sum := sha256.Sum256([]byte(token))
	return user.ResetTokenHash(hex.EncodeToString(sum[:]))
}
