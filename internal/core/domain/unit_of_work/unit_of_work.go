package uow

import (
	"adikart/internal/core/domain/product"
	"adikart/internal/core/domain/user"
	"context"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Products() product.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
