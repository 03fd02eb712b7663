package product

import "errors"

var (
	ErrProductDoesNotExist = errors.New("product does not exist")
	ErrInvalidProductInput = errors.New("missing required product field")
)
