package deleteproduct

import (
	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/domain/product"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	deleteproduct "adikart/internal/core/services/delete_product"
	"adikart/internal/http/handlers/response"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[deleteproduct.Input, deleteproduct.Result]
}

func New(
	service services.Service[deleteproduct.Input, deleteproduct.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawProductID := chi.URLParam(r, "productID")
	productID, err := strconv.ParseInt(rawProductID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid product ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(
		r.Context(),
		deleteproduct.Input{ProductID: product.ID(productID)},
	)
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

	response.Render(rw, struct{}{}, http.StatusOK)
}
