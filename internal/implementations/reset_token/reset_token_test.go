package resettoken

import (
	"adikart/internal/core/domain/user"
	"encoding/hex"
	"testing"
)

func TestGeneratedTokensAreUnique(t *testing.T) {
	generator := NewGenerator()
	tokens := make(map[user.ResetToken]struct{})
	for i := 0; i < 100; i++ {
		token := generator.GenerateResetToken()
		if len(string(token)) != 2*tokenByteCount {
			t.Fatalf("unexpected token length: %v", len(string(token)))
		}
		if _, err := hex.DecodeString(string(token)); err != nil {
			t.Fatalf("token is not hex encoded: %v", err)
		}
		if _, ok := tokens[token]; ok {
			t.Fatalf("token %v already exists", string(token))
		}
		tokens[token] = struct{}{}
	}
}

func TestHashIsDeterministicAndDistinct(t *testing.T) {
	hasher := NewSHA256Hasher()
	hashA := hasher.HashResetToken(user.ResetToken("token-a"))
	hashB := hasher.HashResetToken(user.ResetToken("token-b"))
	if hashA != hasher.HashResetToken(user.ResetToken("token-a")) {
		t.Fatal("hash must be deterministic")
	}
	if hashA == hashB {
		t.Fatal("different tokens must not collide")
	}
	if string(hashA) == "token-a" {
		t.Fatal("hash must not equal the raw token")
	}
}
