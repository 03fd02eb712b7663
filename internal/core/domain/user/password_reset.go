package user

import (
	"context"
	"time"
)

// ResetTokenValidFor bounds the life of an issued password reset token.
const ResetTokenValidFor = 15 * time.Minute

// ResetToken is the raw high-entropy token delivered to the user. It is
// never persisted; only its hash is.
type ResetToken string

func (t ResetToken) String() string {
	return "***"
}

// ResetTokenHash is the one-way digest persisted in place of the token.
type ResetTokenHash string

type ResetTokenGenerator interface {
	GenerateResetToken() ResetToken
}

type ResetTokenHasher interface {
	HashResetToken(token ResetToken) ResetTokenHash
}

type ResetTokenSender interface {
	SendResetToken(ctx context.Context, u User, token ResetToken) error
}
