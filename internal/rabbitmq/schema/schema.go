package schema

import (
	"encoding/json"
	"time"
)

type PaidOrder struct {
	OrderID   string    `json:"orderId"`
	PaymentID string    `json:"paymentId"`
	PaidAt    time.Time `json:"paidAt"`
}

func (o *PaidOrder) Marshal() ([]byte, error) {
	return json.Marshal(o)
}

func (o *PaidOrder) Unmarshal(data []byte) error {
	return json.Unmarshal(data, o)
}
