package user

import (
	c "adikart/internal/core/domain/common"
	e "adikart/internal/core/domain/errors"
	"fmt"
	"time"
)

type ID int64

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// MinPasswordLength is the minimum accepted length for a new password.
const MinPasswordLength = 6

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type SessionToken string

type User struct {
	ID                  ID
	Name                string
	Email               c.Email
	PasswordHash        PasswordHash
	Role                Role
	ResetTokenHash      c.Optional[ResetTokenHash]
	ResetTokenExpiresAt c.Optional[time.Time]
	CreatedAt           time.Time
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	if u.Role != RoleUser && u.Role != RoleAdmin {
		return e.NewInvalidStateError(fmt.Sprintf("invalid role %q for user %d", u.Role, u.ID))
	}
	// The reset token hash and its expiry are both present or both absent.
	if u.ResetTokenHash.IsPresent != u.ResetTokenExpiresAt.IsPresent {
		return e.NewInvalidStateError(fmt.Sprintf("inconsistent reset token state for user %d", u.ID))
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) HasPendingReset(now time.Time) bool {
	return u.ResetTokenHash.IsPresent &&
		u.ResetTokenExpiresAt.IsPresent &&
		u.ResetTokenExpiresAt.Value.After(now)
}
