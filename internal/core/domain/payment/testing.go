package payment

import (
	"context"
	"fmt"
	"sync"
)

type FakeGateway struct {
	Orders      []Order
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{}
}

func (g *FakeGateway) CreateOrder(
	ctx context.Context,
	amount int64,
	currency string,
	receipt string,
) (o Order, err error) {
	if g.ReturnError {
		return o, fmt.Errorf("could not create payment order")
	}
	g.lock.Lock()
	defer g.lock.Unlock()
	o = Order{
		ID:       OrderID(fmt.Sprintf("order_%d", len(g.Orders)+1)),
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}
	g.Orders = append(g.Orders, o)
	return o, nil
}

type FakeSignatureVerifier struct {
	IsValid bool
}

func NewFakeSignatureVerifier(isValid bool) *FakeSignatureVerifier {
	return &FakeSignatureVerifier{IsValid: isValid}
}

func (v *FakeSignatureVerifier) VerifySignature(
	orderID OrderID,
	paymentID PaymentID,
	signature Signature,
) bool {
	return v.IsValid
}

type FakeReceiptGenerator struct {
	Receipt string
}

func NewFakeReceiptGenerator(receipt string) *FakeReceiptGenerator {
	return &FakeReceiptGenerator{Receipt: receipt}
}

func (g *FakeReceiptGenerator) GenerateReceipt() string {
	return g.Receipt
}

type FakePaidOrderPublisher struct {
	Published   []PaidOrder
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePaidOrderPublisher() *FakePaidOrderPublisher {
	return &FakePaidOrderPublisher{}
}

func (p *FakePaidOrderPublisher) PublishPaidOrder(ctx context.Context, order PaidOrder) error {
	if p.ReturnError {
		return fmt.Errorf("could not publish paid order")
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, order)
	return nil
}
