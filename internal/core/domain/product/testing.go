package product

import (
	"context"
	"fmt"
	"sync"
)

type FakeRepository struct {
	Products    []Product
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Products: make([]Product, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateProductInput) (p Product, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not create product %v", input)
	}
	if input.Name == "" || input.Description == "" || input.ImageURL == "" || input.Category == "" {
		return p, ErrInvalidProductInput
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, p := range r.Products {
		maxID = p.ID
	}
	p = Product{
		ID:          maxID + 1,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Stock:       input.Stock,
		CreatedAt:   input.CreatedAt,
		UpdatedAt:   input.CreatedAt,
	}
	r.Products = append(r.Products, p)
	return p, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (p Product, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, p := range r.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return p, ErrProductDoesNotExist
}

func (r *FakeRepository) List(ctx context.Context) ([]Product, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list products")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	products := make([]Product, len(r.Products))
	copy(products, r.Products)
	return products, nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateProductInput) (p Product, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, p := range r.Products {
		if p.ID != input.ID {
			continue
		}
		if input.Name.IsPresent {
			r.Products[ix].Name = input.Name.Value
		}
		if input.Description.IsPresent {
			r.Products[ix].Description = input.Description.Value
		}
		if input.Price.IsPresent {
			r.Products[ix].Price = input.Price.Value
		}
		if input.ImageURL.IsPresent {
			r.Products[ix].ImageURL = input.ImageURL.Value
		}
		if input.Category.IsPresent {
			r.Products[ix].Category = input.Category.Value
		}
		if input.Stock.IsPresent {
			r.Products[ix].Stock = input.Stock.Value
		}
		r.Products[ix].UpdatedAt = input.UpdatedAt
		return r.Products[ix], nil
	}
	return p, ErrProductDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, p := range r.Products {
		if p.ID == id {
			r.Products = append(r.Products[:ix], r.Products[ix+1:]...)
			return nil
		}
	}
	return ErrProductDoesNotExist
}
