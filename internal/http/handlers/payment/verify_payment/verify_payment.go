package verifypayment

import (
	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/domain/payment"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	verifypayment "adikart/internal/core/services/verify_payment"
	"adikart/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[verifypayment.Input, verifypayment.Result]
}

func New(
	service services.Service[verifypayment.Input, verifypayment.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

type Result struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.OrderID, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.PaymentID, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Signature, validation.Required, validation.Length(1, 1024)),
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
		verifypayment.Input{
			OrderID:   payment.OrderID(input.OrderID),
			PaymentID: payment.PaymentID(input.PaymentID),
			Signature: payment.Signature(input.Signature),
		},
	)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if errors.Is(err, payment.ErrSignatureMismatch) {
		response.RenderError(rw, "signature verification failed", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{
		OrderID:   string(result.Order.OrderID),
		PaymentID: string(result.Order.PaymentID),
	}, http.StatusOK)
}
