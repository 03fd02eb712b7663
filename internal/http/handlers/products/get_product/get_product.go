package getproduct

import (
	c "adikart/internal/core/domain/common"
	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/domain/product"
	"adikart/internal/core/services"
	listproducts "adikart/internal/core/services/list_products"
	"adikart/internal/http/handlers/response"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[listproducts.Input, listproducts.Result]
}

func New(
	service services.Service[listproducts.Input, listproducts.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Product response.Product `json:"product"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawProductID := chi.URLParam(r, "productID")
	productID, err := strconv.ParseInt(rawProductID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid product ID", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		listproducts.Input{ProductID: c.NewOptional(product.ID(productID), true)},
	)
	if errors.Is(err, product.ErrProductDoesNotExist) {
		response.RenderNotFound(rw, "product does not exist")
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	p := response.Product{}
	p.FromDomainProduct(result.Products[0])
	response.Render(rw, Result{Product: p}, http.StatusOK)
}
