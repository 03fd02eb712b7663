package createproduct

import (
	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/domain/logging"
	"adikart/internal/core/domain/product"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	"adikart/internal/core/services/auth"
	"context"
	"errors"
	"time"
)

type Input struct {
	User        user.User
	Name        string
	Description string
	Price       int64
	ImageURL    string
	Category    string
	Stock       uint32
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Product product.Product
}

type service struct {
	log               logging.Logger
	productRepository product.Repository
	now               func() time.Time
}

func New(
	log logging.Logger,
	productRepository product.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if productRepository == nil {
		panic(e.NewNilArgumentError("productRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		productRepository: productRepository,
		now:               now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if !input.User.IsAdmin() {
		s.log.Info(
			ctx,
			"Non-admin user attempted to create a product.",
			logging.Entry("userID", input.User.ID),
		)
		return result, user.ErrPermissionDenied
	}

	createdProduct, err := s.productRepository.Create(ctx, product.CreateProductInput{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Stock:       input.Stock,
		CreatedAt:   s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not create product.", logging.Entry("err", err))
		return result, err
	}

	s.log.Info(
		ctx,
		"New product has been created.",
		logging.Entry("productID", createdProduct.ID),
	)
	return Result{Product: createdProduct}, nil
}
