package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrUserDoesNotExist    = errors.New("user does not exist")
	ErrInvalidUserInput    = errors.New("missing required user field")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrSessionDoesNotExist = errors.New("session does not exist")
	ErrPermissionDenied    = errors.New("permission denied")

	ErrEmptyPassword   = errors.New("password must not be empty")
	ErrPasswordTooWeak = errors.New("password is too weak")

	ErrInvalidResetToken  = errors.New("invalid or expired password reset token")
	ErrResetTokenDispatch = errors.New("could not deliver password reset link")
)
