package user

import (
	c "adikart/internal/core/domain/common"
	"context"
	"time"
)

type CreateUserInput struct {
	Name         string
	Email        c.Email
	PasswordHash PasswordHash
	Role         Role
	CreatedAt    time.Time
}

type UpdatePasswordByResetTokenInput struct {
	TokenHash    ResetTokenHash
	PasswordHash PasswordHash
	Now          time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
	SetRole(ctx context.Context, id ID, role Role) error
	SetResetToken(ctx context.Context, id ID, tokenHash ResetTokenHash, expiresAt time.Time) error
	ClearResetToken(ctx context.Context, id ID) error
	// GetByResetTokenHash matches only records whose reset token has not
	// expired as of now; expired or absent entries read as ErrInvalidResetToken.
	GetByResetTokenHash(ctx context.Context, tokenHash ResetTokenHash, now time.Time) (User, error)
	// UpdatePasswordByResetToken replaces the password hash and clears both
	// reset fields in one conditional write: it applies only where the stored
	// token hash still matches and is still live, so concurrent completions
	// of the same token have at most one winner. No matching row reads as
	// ErrInvalidResetToken.
	UpdatePasswordByResetToken(ctx context.Context, input UpdatePasswordByResetTokenInput) (User, error)
}

type CreateSessionInput struct {
	UserID    ID
	Token     SessionToken
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetUserByToken(ctx context.Context, token SessionToken) (User, error)
	Delete(ctx context.Context, token SessionToken) (userID ID, err error)
}
