package sendpasswordresettoken

import (
	c "adikart/internal/core/domain/common"
	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/domain/logging"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Email c.Email
}

// Result is deliberately opaque about account existence; Token is set only
// when a token was actually issued and is exposed to callers for test mode.
type Result struct {
	Token user.ResetToken
}

type service struct {
	log              logging.Logger
	userRepository   user.UserRepository
	tokenGenerator   user.ResetTokenGenerator
	tokenHasher      user.ResetTokenHasher
	resetTokenSender user.ResetTokenSender
	now              func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	tokenGenerator user.ResetTokenGenerator,
	tokenHasher user.ResetTokenHasher,
	resetTokenSender user.ResetTokenSender,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if tokenHasher == nil {
		panic(e.NewNilArgumentError("tokenHasher"))
	}
	if resetTokenSender == nil {
		panic(e.NewNilArgumentError("resetTokenSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:              log,
		userRepository:   userRepository,
		tokenGenerator:   tokenGenerator,
		tokenHasher:      tokenHasher,
		resetTokenSender: resetTokenSender,
		now:              now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	// Generate before the lookup so both branches do equivalent work and
	// the response does not betray account existence.
	token := s.tokenGenerator.GenerateResetToken()
	tokenHash := s.tokenHasher.HashResetToken(token)

	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"Password reset requested for unknown email.",
			logging.Entry("email", input.Email),
		)
		return result, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	// Overwrites any pending token, silently superseding it.
	expiresAt := s.now().Add(user.ResetTokenValidFor)
	err = s.userRepository.SetResetToken(ctx, u.ID, tokenHash, expiresAt)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not store password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = s.resetTokenSender.SendResetToken(ctx, u, token)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset token, rolling it back.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		if clearErr := s.userRepository.ClearResetToken(ctx, u.ID); clearErr != nil {
			s.log.Error(
				ctx,
				"Could not clear password reset token after failed dispatch.",
				logging.Entry("userID", u.ID),
				logging.Entry("err", clearErr),
			)
		}
		return result, user.ErrResetTokenDispatch
	}

	s.log.Info(
		ctx,
		"Password reset token has been sent.",
		logging.Entry("userID", u.ID),
		logging.Entry("expiresAt", expiresAt),
	)
	return Result{Token: token}, nil
}
