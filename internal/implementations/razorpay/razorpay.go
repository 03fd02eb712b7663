package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/domain/logging"
	"adikart/internal/core/domain/payment"
)

const ORDERS_URL = "https://api.razorpay.com/v1/orders"

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

func (r *orderResponse) FromJSON(reader io.Reader) error {
	decoder := json.NewDecoder(reader)
	return decoder.Decode(r)
}

// Gateway creates orders through the Razorpay REST API using key ID and
// key secret basic auth.
type Gateway struct {
	log        logging.Logger
	httpClient http.Client
	keyID      string
	keySecret  string
}

func NewGateway(
	log logging.Logger,
	keyID string,
	keySecret string,
	timeout time.Duration,
) *Gateway {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Gateway{
		log:        log,
		httpClient: http.Client{Timeout: timeout},
		keyID:      keyID,
		keySecret:  keySecret,
	}
}

func (g *Gateway) CreateOrder(
	ctx context.Context,
	amount int64,
	currency string,
	receipt string,
) (order payment.Order, err error) {
	requestBody, err := json.Marshal(orderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return order, err
	}

	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		ORDERS_URL,
		bytes.NewReader(requestBody),
	)
	if err != nil {
		return order, err
	}
	request.Header.Set("Content-Type", "application/json")
	request.SetBasicAuth(g.keyID, g.keySecret)

	response, err := g.httpClient.Do(request)
	if err != nil {
		logging.Error(ctx, g.log, err)
		return order, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		err = fmt.Errorf("unexpected gateway response status: %v", response.StatusCode)
		logging.Error(ctx, g.log, err)
		return order, err
	}

	result := orderResponse{}
	if err := result.FromJSON(response.Body); err != nil {
		logging.Error(ctx, g.log, err)
		return order, err
	}
	return payment.Order{
		ID:       payment.OrderID(result.ID),
		Amount:   result.Amount,
		Currency: result.Currency,
		Receipt:  result.Receipt,
	}, nil
}

// SignatureVerifier checks the callback signature Razorpay computes over
// "<orderID>|<paymentID>" with the key secret.
type SignatureVerifier struct {
	keySecret []byte
}

func NewSignatureVerifier(keySecret string) *SignatureVerifier {
	return &SignatureVerifier{keySecret: []byte(keySecret)}
}

func (v *SignatureVerifier) VerifySignature(
	orderID payment.OrderID,
	paymentID payment.PaymentID,
	signature payment.Signature,
) bool {
	hasher := hmac.New(sha256.New, v.keySecret)
	io.WriteString(hasher, fmt.Sprintf("%s|%s", orderID, paymentID))
	expected := hex.EncodeToString(hasher.Sum(nil))
	return subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) == 1
}

// ReceiptGenerator produces short random hex receipts for new orders.
type ReceiptGenerator struct{}

func NewReceiptGenerator() *ReceiptGenerator {
	return &ReceiptGenerator{}
}

func (g *ReceiptGenerator) GenerateReceipt() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("could not read random bytes: %v", err))
	}
	return hex.EncodeToString(b)
}
