package request

// CreateOrderRequest represents a gateway order creation payload. Amount is
// in major currency units; conversion to minor units happens server side.
type CreateOrderRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// VerifyPaymentRequest represents a client-submitted payment confirmation
type VerifyPaymentRequest struct {
	OrderID   string  `json:"order_id" binding:"required"`
	PaymentID string  `json:"payment_id" binding:"required"`
	Signature string  `json:"signature" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}
