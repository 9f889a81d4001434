package gateway

import (
	"context"
	"fmt"

	"github.com/billify/billify-api/internal/config"
	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

// Order is the subset of the gateway order object the app cares about.
// Amount is in minor currency units (paise).
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Client wraps the Razorpay SDK behind a small surface so services can be
// tested against a fake.
type Client struct {
	rzp       *razorpay.Client
	keySecret string
	currency  string
	log       *zap.Logger
}

// NewClient creates a Razorpay gateway client
func NewClient(cfg *config.RazorpayConfig, log *zap.Logger) *Client {
	return &Client{
		rzp:       razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		keySecret: cfg.KeySecret,
		currency:  cfg.Currency,
		log:       log,
	}
}

// CreateOrder requests a new gateway order for the given amount in minor
// units. The receipt identifier is echoed back by the gateway and ties the
// order to our checkout attempt.
func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, receipt string) (*Order, error) {
	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": c.currency,
		"receipt":  receipt,
	}

	body, err := c.rzp.Order.Create(data, nil)
	if err != nil {
		c.log.Error("razorpay order creation failed",
			zap.Int64("amount_minor", amountMinor),
			zap.String("receipt", receipt),
			zap.Error(err))
		return nil, fmt.Errorf("gateway order create: %w", err)
	}

	order := &Order{
		ID:       stringField(body, "id"),
		Amount:   int64Field(body, "amount"),
		Currency: stringField(body, "currency"),
		Receipt:  stringField(body, "receipt"),
		Status:   stringField(body, "status"),
	}

	c.log.Info("razorpay order created",
		zap.String("order_id", order.ID),
		zap.Int64("amount_minor", order.Amount))
	return order, nil
}

// VerifySignature checks a client-submitted payment signature against the
// HMAC the gateway would have produced.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifyPaymentSignature(orderID, paymentID, signature, c.keySecret)
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func int64Field(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}
