package product

import "time"

type ID int64

// Product is catalog data managed by admins and browsed by everyone.
// Price is kept in minor currency units.
type Product struct {
	ID          ID
	Name        string
	Description string
	Price       int64
	ImageURL    string
	Category    string
	Stock       uint32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
