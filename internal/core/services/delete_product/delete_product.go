package deleteproduct

import (
	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/domain/logging"
	"adikart/internal/core/domain/product"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	"adikart/internal/core/services/auth"
	"context"
	"errors"
)

type Input struct {
	User      user.User
	ProductID product.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct{}

type service struct {
	log               logging.Logger
	productRepository product.Repository
}

func New(
	log logging.Logger,
	productRepository product.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if productRepository == nil {
		panic(e.NewNilArgumentError("productRepository"))
	}
	return &service{
		log:               log,
		productRepository: productRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if !input.User.IsAdmin() {
		s.log.Info(
			ctx,
			"Non-admin user attempted to delete a product.",
			logging.Entry("userID", input.User.ID),
			logging.Entry("productID", input.ProductID),
		)
		return result, user.ErrPermissionDenied
	}

	err = s.productRepository.Delete(ctx, input.ProductID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, product.ErrProductDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not delete product.",
			logging.Entry("productID", input.ProductID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Product has been deleted.",
		logging.Entry("productID", input.ProductID),
	)
	return result, nil
}
