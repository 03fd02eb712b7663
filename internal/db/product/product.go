package product

import (
	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/domain/product"
	"adikart/internal/db"
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
)

const productColumns = `id, name, description, price, image_url, category, stock,
	created_at, updated_at`

type PgxProductRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxProductRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxProductRepository{db: db}
}

func (r *PgxProductRepository) Create(
	ctx context.Context,
	input product.CreateProductInput,
) (p product.Product, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO product (name, description, price, image_url, category, stock,
			created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		 RETURNING `+productColumns,
		input.Name,
		input.Description,
		input.Price,
		input.ImageURL,
		input.Category,
		input.Stock,
		input.CreatedAt,
	)
	return scanProduct(row)
}

func (r *PgxProductRepository) GetByID(ctx context.Context, id product.ID) (p product.Product, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+productColumns+` FROM product WHERE id = $1`,
		int64(id),
	)
	p, err = scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, product.ErrProductDoesNotExist
	}
	return p, err
}

func (r *PgxProductRepository) List(ctx context.Context) ([]product.Product, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+productColumns+` FROM product ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PgxProductRepository) Update(
	ctx context.Context,
	input product.UpdateProductInput,
) (p product.Product, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE product SET
			name = CASE WHEN $2 THEN $3 ELSE name END,
			description = CASE WHEN $4 THEN $5 ELSE description END,
			price = CASE WHEN $6 THEN $7 ELSE price END,
			image_url = CASE WHEN $8 THEN $9 ELSE image_url END,
			category = CASE WHEN $10 THEN $11 ELSE category END,
			stock = CASE WHEN $12 THEN $13 ELSE stock END,
			updated_at = $14
		 WHERE id = $1
		 RETURNING `+productColumns,
		int64(input.ID),
		input.Name.IsPresent, input.Name.Value,
		input.Description.IsPresent, input.Description.Value,
		input.Price.IsPresent, input.Price.Value,
		input.ImageURL.IsPresent, input.ImageURL.Value,
		input.Category.IsPresent, input.Category.Value,
		input.Stock.IsPresent, int64(input.Stock.Value),
		input.UpdatedAt,
	)
	p, err = scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, product.ErrProductDoesNotExist
	}
	return p, err
}

func (r *PgxProductRepository) Delete(ctx context.Context, id product.ID) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM product WHERE id = $1`,
		int64(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductDoesNotExist
	}
	return nil
}

func scanProduct(row pgx.Row) (p product.Product, err error) {
	var (
		id    int64
		stock int64
	)
	err = row.Scan(
		&id,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.ImageURL,
		&p.Category,
		&stock,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return p, err
	}
	p.ID = product.ID(id)
	p.Stock = uint32(stock)
	return p, nil
}
