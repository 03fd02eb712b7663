package updateproduct

import (
	c "adikart/internal/core/domain/common"
	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/domain/product"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	updateproduct "adikart/internal/core/services/update_product"
	"adikart/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[updateproduct.Input, updateproduct.Result]
}

func New(
	service services.Service[updateproduct.Input, updateproduct.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	ImageURL    *string `json:"image_url"`
	Category    *string `json:"category"`
	Stock       *uint32 `json:"stock"`
}

type Result struct {
	Product response.Product `json:"product"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.NilOrNotEmpty, validation.Length(1, 256)),
		validation.Field(&i.Description, validation.NilOrNotEmpty, validation.Length(1, 4096)),
		validation.Field(&i.Price, validation.Min(int64(1))),
		validation.Field(&i.ImageURL, validation.NilOrNotEmpty, is.URL, validation.Length(0, 2048)),
		validation.Field(&i.Category, validation.NilOrNotEmpty, validation.Length(1, 256)),
	)
}

func optionalString(v *string) c.Optional[string] {
	if v == nil {
		return c.Optional[string]{}
	}
	return c.NewOptional(*v, true)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawProductID := chi.URLParam(r, "productID")
	productID, err := strconv.ParseInt(rawProductID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid product ID", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := updateproduct.Input{
		ProductID:   product.ID(productID),
		Name:        optionalString(input.Name),
		Description: optionalString(input.Description),
		ImageURL:    optionalString(input.ImageURL),
		Category:    optionalString(input.Category),
	}
	if input.Price != nil {
		serviceInput.Price = c.NewOptional(*input.Price, true)
	}
	if input.Stock != nil {
		serviceInput.Stock = c.NewOptional(*input.Stock, true)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if errors.Is(err, user.ErrPermissionDenied) {
		response.RenderForbidden(rw)
		return
	}
	if errors.Is(err, product.ErrProductDoesNotExist) {
		response.RenderNotFound(rw, "product does not exist")
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	updatedProduct := response.Product{}
	updatedProduct.FromDomainProduct(result.Product)
	response.Render(rw, Result{Product: updatedProduct}, http.StatusOK)
}
