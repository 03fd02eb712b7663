package product

import (
	c "adikart/internal/core/domain/common"
	"context"
	"time"
)

type CreateProductInput struct {
	Name        string
	Description string
	Price       int64
	ImageURL    string
	Category    string
	Stock       uint32
	CreatedAt   time.Time
}

type UpdateProductInput struct {
	ID          ID
	Name        c.Optional[string]
	Description c.Optional[string]
	Price       c.Optional[int64]
	ImageURL    c.Optional[string]
	Category    c.Optional[string]
	Stock       c.Optional[uint32]
	UpdatedAt   time.Time
}

type Repository interface {
	Create(ctx context.Context, input CreateProductInput) (Product, error)
	GetByID(ctx context.Context, id ID) (Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, input UpdateProductInput) (Product, error)
	Delete(ctx context.Context, id ID) error
}
