package resetpassword

import (
	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/domain/logging"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Token       user.ResetToken
	NewPassword user.RawPassword
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	tokenHasher    user.ResetTokenHasher
	passwordHasher user.PasswordHasher
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	tokenHasher user.ResetTokenHasher,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if tokenHasher == nil {
		panic(e.NewNilArgumentError("tokenHasher"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		tokenHasher:    tokenHasher,
		passwordHasher: passwordHasher,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	tokenHash := s.tokenHasher.HashResetToken(input.Token)

	u, err := s.userRepository.GetByResetTokenHash(ctx, tokenHash, s.now())
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrInvalidResetToken) {
		s.log.Info(ctx, "Password reset attempted with invalid or expired token.")
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not look up password reset token.", logging.Entry("err", err))
		return result, err
	}

	// Failure leaves the pending token untouched; the caller may retry
	// with a stronger password until the token expires.
	if len(input.NewPassword) < user.MinPasswordLength {
		return result, user.ErrPasswordTooWeak
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}

	// Conditional write: replaces the hash and clears both reset fields
	// only if the token is still live, so a concurrent completion of the
	// same token leaves at most one winner and the token is never reusable.
	_, err = s.userRepository.UpdatePasswordByResetToken(ctx, user.UpdatePasswordByResetTokenInput{
		TokenHash:    tokenHash,
		PasswordHash: newPasswordHash,
		Now:          s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrInvalidResetToken) {
		s.log.Info(
			ctx,
			"Password reset token was consumed concurrently.",
			logging.Entry("userID", u.ID),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user password.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New password has been successfully set.",
		logging.Entry("userID", u.ID),
	)
	return result, nil
}
