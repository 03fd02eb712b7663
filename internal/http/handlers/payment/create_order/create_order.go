package createorder

import (
	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/domain/payment"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	createpaymentorder "adikart/internal/core/services/create_payment_order"
	"adikart/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[createpaymentorder.Input, createpaymentorder.Result]
}

func New(
	service services.Service[createpaymentorder.Input, createpaymentorder.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Amount int64 `json:"amount"`
}

type Result struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Amount, validation.Required, validation.Min(int64(payment.MinOrderAmount))),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		createpaymentorder.Input{Amount: input.Amount},
	)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if errors.Is(err, payment.ErrInvalidAmount) {
		response.RenderError(rw, "invalid order amount", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{
		OrderID:  string(result.Order.ID),
		Amount:   result.Order.Amount,
		Currency: result.Order.Currency,
		Receipt:  result.Order.Receipt,
	}, http.StatusCreated)
}
