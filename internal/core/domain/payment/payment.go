package payment

import (
	"context"
	"time"
)

// MinOrderAmount is the smallest order the gateway accepts, in minor
// currency units.
const MinOrderAmount = 100

type OrderID string

type PaymentID string

type Signature string

type Order struct {
	ID       OrderID
	Amount   int64
	Currency string
	Receipt  string
}

type PaidOrder struct {
	OrderID   OrderID
	PaymentID PaymentID
	PaidAt    time.Time
}

// Gateway creates orders with the external payment provider. Calls are
// network I/O and must be treated as slow and fallible.
type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency string, receipt string) (Order, error)
}

// SignatureVerifier checks the provider's payment callback signature.
type SignatureVerifier interface {
	VerifySignature(orderID OrderID, paymentID PaymentID, signature Signature) bool
}

type ReceiptGenerator interface {
	GenerateReceipt() string
}

// PaidOrderPublisher hands verified payments off to downstream consumers.
type PaidOrderPublisher interface {
	PublishPaidOrder(ctx context.Context, order PaidOrder) error
}
