package verifypayment

import (
	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/domain/logging"
	"adikart/internal/core/domain/payment"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	"adikart/internal/core/services/auth"
	"context"
	"errors"
	"time"
)

type Input struct {
	User      user.User
	OrderID   payment.OrderID
	PaymentID payment.PaymentID
	Signature payment.Signature
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Order payment.PaidOrder
}

type service struct {
	log       logging.Logger
	verifier  payment.SignatureVerifier
	publisher payment.PaidOrderPublisher
	now       func() time.Time
}

func New(
	log logging.Logger,
	verifier payment.SignatureVerifier,
	publisher payment.PaidOrderPublisher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if verifier == nil {
		panic(e.NewNilArgumentError("verifier"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:       log,
		verifier:  verifier,
		publisher: publisher,
		now:       now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if !s.verifier.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		s.log.Warning(
			ctx,
			"Payment signature verification failed.",
			logging.Entry("userID", input.User.ID),
			logging.Entry("orderID", input.OrderID),
		)
		return result, payment.ErrSignatureMismatch
	}

	paidOrder := payment.PaidOrder{
		OrderID:   input.OrderID,
		PaymentID: input.PaymentID,
		PaidAt:    s.now(),
	}
	err = s.publisher.PublishPaidOrder(ctx, paidOrder)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		// The payment itself is valid, downstream consumers just will not
		// hear about it. Log and report the order as paid anyway.
		s.log.Error(
			ctx,
			"Could not publish paid order event.",
			logging.Entry("orderID", input.OrderID),
			logging.Entry("err", err),
		)
	}

	s.log.Info(
		ctx,
		"Payment has been verified.",
		logging.Entry("userID", input.User.ID),
		logging.Entry("orderID", input.OrderID),
		logging.Entry("paymentID", input.PaymentID),
	)
	return Result{Order: paidOrder}, nil
}
