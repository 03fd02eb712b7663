package listproducts

import (
	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/services"
	listproducts "adikart/internal/core/services/list_products"
	"adikart/internal/http/handlers/response"
	"net/http"
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
	Products []response.Product `json:"products"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listproducts.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	products := make([]response.Product, len(result.Products))
	for ix, dp := range result.Products {
		products[ix].FromDomainProduct(dp)
	}
	response.Render(rw, Result{Products: products}, http.StatusOK)
}
