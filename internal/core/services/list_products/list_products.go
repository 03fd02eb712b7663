package listproducts

import (
	c "adikart/internal/core/domain/common"
	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/domain/logging"
	"adikart/internal/core/domain/product"
	"adikart/internal/core/services"
	"context"
	"errors"
)

// Input reads the whole catalog when ProductID is absent, otherwise a
// single product. An absent product, whatever its ID, is
// ErrProductDoesNotExist rather than a fallback to the full listing.
type Input struct {
	ProductID c.Optional[product.ID]
}

type Result struct {
	Products []product.Product
}

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
	if input.ProductID.IsPresent {
		p, err := s.productRepository.GetByID(ctx, input.ProductID.Value)
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		if errors.Is(err, product.ErrProductDoesNotExist) {
			return result, err
		}
		if err != nil {
			s.log.Error(
				ctx,
				"Could not read product.",
				logging.Entry("productID", input.ProductID.Value),
				logging.Entry("err", err),
			)
			return result, err
		}
		return Result{Products: []product.Product{p}}, nil
	}

	products, err := s.productRepository.List(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not list products.", logging.Entry("err", err))
		return result, err
	}
	return Result{Products: products}, nil
}
