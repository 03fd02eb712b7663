package createpaymentorder

import (
	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/domain/logging"
	"adikart/internal/core/domain/payment"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	"adikart/internal/core/services/auth"
	"context"
	"errors"
)

const currency = "INR"

type Input struct {
	User   user.User
	Amount int64
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Order payment.Order
}

type service struct {
	log              logging.Logger
	gateway          payment.Gateway
	receiptGenerator payment.ReceiptGenerator
}

func New(
	log logging.Logger,
	gateway payment.Gateway,
	receiptGenerator payment.ReceiptGenerator,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if gateway == nil {
		panic(e.NewNilArgumentError("gateway"))
	}
	if receiptGenerator == nil {
		panic(e.NewNilArgumentError("receiptGenerator"))
	}
	return &service{
		log:              log,
		gateway:          gateway,
		receiptGenerator: receiptGenerator,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Amount < payment.MinOrderAmount {
		return result, payment.ErrInvalidAmount
	}

	receipt := s.receiptGenerator.GenerateReceipt()
	order, err := s.gateway.CreateOrder(ctx, input.Amount, currency, receipt)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create payment order.",
			logging.Entry("userID", input.User.ID),
			logging.Entry("amount", input.Amount),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Payment order has been created.",
		logging.Entry("userID", input.User.ID),
		logging.Entry("orderID", order.ID),
	)
	return Result{Order: order}, nil
}
