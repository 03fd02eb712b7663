package provisionadmin

import (
	c "adikart/internal/core/domain/common"
	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/domain/logging"
	uow "adikart/internal/core/domain/unit_of_work"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Name     string
	Email    c.Email
	Password user.RawPassword
}

type Result struct {
	User user.User
}

// service creates the administrator account on startup, or repairs it if
// the account exists with a non-admin role.
type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	passwordHasher user.PasswordHasher
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		passwordHasher: passwordHasher,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, err
	}
	defer uow.Rollback(ctx)

	existing, err := uow.Users().GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err == nil {
		if existing.IsAdmin() {
			return Result{User: existing}, nil
		}
		err = uow.Users().SetRole(ctx, existing.ID, user.RoleAdmin)
		if err != nil {
			s.log.Error(
				ctx,
				"Could not repair admin role.",
				logging.Entry("userID", existing.ID),
				logging.Entry("err", err),
			)
			return result, err
		}
		if err := uow.Commit(ctx); err != nil {
			s.log.Error(ctx, "Could not commit unit of work.", logging.Entry("err", err))
			return result, err
		}
		existing.Role = user.RoleAdmin
		s.log.Info(
			ctx,
			"Existing account has been promoted to admin.",
			logging.Entry("userID", existing.ID),
		)
		return Result{User: existing}, nil
	}
	if !errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Error(
			ctx,
			"Could not look up admin account.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash admin password.", logging.Entry("err", err))
		return result, err
	}

	createdUser, err := uow.Users().Create(ctx, user.CreateUserInput{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         user.RoleAdmin,
		CreatedAt:    s.now(),
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create admin account.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = uow.Commit(ctx)
	if err != nil {
		s.log.Error(ctx, "Could not commit unit of work.", logging.Entry("err", err))
		return result, err
	}

	s.log.Info(ctx, "Admin account has been created.", logging.Entry("userID", createdUser.ID))
	return Result{User: createdUser}, nil
}
