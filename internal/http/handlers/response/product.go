package response

import (
	"adikart/internal/core/domain/product"
	"time"
)

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	Stock       uint32    `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Product) FromDomainProduct(dp product.Product) {
	p.ID = int64(dp.ID)
	p.Name = dp.Name
	p.Description = dp.Description
	p.Price = dp.Price
	p.ImageURL = dp.ImageURL
	p.Category = dp.Category
	p.Stock = dp.Stock
	p.CreatedAt = dp.CreatedAt
	p.UpdatedAt = dp.UpdatedAt
}
