package updateproduct

import (
	c "adikart/internal/core/domain/common"
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
	ProductID   product.ID
	Name        c.Optional[string]
	Description c.Optional[string]
	Price       c.Optional[int64]
	ImageURL    c.Optional[string]
	Category    c.Optional[string]
	Stock       c.Optional[uint32]
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
			"Non-admin user attempted to update a product.",
			logging.Entry("userID", input.User.ID),
			logging.Entry("productID", input.ProductID),
		)
		return result, user.ErrPermissionDenied
	}

	updatedProduct, err := s.productRepository.Update(ctx, product.UpdateProductInput{
		ID:          input.ProductID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Stock:       input.Stock,
		UpdatedAt:   s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, product.ErrProductDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update product.",
			logging.Entry("productID", input.ProductID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Product has been updated.",
		logging.Entry("productID", updatedProduct.ID),
	)
	return Result{Product: updatedProduct}, nil
}
