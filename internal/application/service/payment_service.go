package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/billify/billify-api/internal/domain/entity"
	"github.com/billify/billify-api/internal/domain/enum"
	"github.com/billify/billify-api/internal/domain/repository"
	"github.com/billify/billify-api/internal/infrastructure/gateway"
	"github.com/billify/billify-api/pkg/apperror"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentGateway is the remote payment provider surface the service depends
// on. The production implementation is the Razorpay client.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, receipt string) (*gateway.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// PaymentService handles gateway order creation and payment verification
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	gateway     PaymentGateway
	log         *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repository.PaymentRepository, gw PaymentGateway, log *zap.Logger) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		gateway:     gw,
		log:         log,
	}
}

// CreateOrder requests a gateway order for the given amount in major
// currency units. The amount is converted to minor units before the call and
// the receipt is derived from the current time.
func (s *PaymentService) CreateOrder(ctx context.Context, amount float64) (*gateway.Order, error) {
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be positive")
	}

	// Round rather than truncate: binary floats cannot represent every
	// two-decimal amount exactly, and 19.99*100 lands at 1998.999...
	amountMinor := int64(math.Round(amount * 100))
	receipt := fmt.Sprintf("receipt_%d", time.Now().UnixMilli())

	order, err := s.gateway.CreateOrder(ctx, amountMinor, receipt)
	if err != nil {
		// Gateway detail is logged by the client; the caller gets a
		// generic creation error.
		return nil, apperror.NewAppError(500, "Error creating payment order")
	}

	return order, nil
}

// VerifyPaymentInput represents a client-submitted payment confirmation
type VerifyPaymentInput struct {
	UserID    uuid.UUID
	OrderID   string
	PaymentID string
	Signature string
	Amount    float64
}

// VerifyPayment recomputes the gateway signature over orderID|paymentID and
// compares it against the submitted one. Only a verified confirmation is
// persisted; a mismatch is a hard rejection and nothing is written.
func (s *PaymentService) VerifyPayment(ctx context.Context, input *VerifyPaymentInput) (*entity.Payment, error) {
	if !s.gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		s.log.Warn("payment signature mismatch",
			zap.String("order_id", input.OrderID),
			zap.String("payment_id", input.PaymentID),
			zap.String("user_id", input.UserID.String()))
		return nil, apperror.ErrInvalidSignature
	}

	payment := &entity.Payment{
		UserID:    input.UserID,
		OrderID:   input.OrderID,
		PaymentID: input.PaymentID,
		Signature: input.Signature,
		Amount:    input.Amount,
		Status:    enum.PaymentStatusCompleted,
		Method:    "razorpay",
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.log.Info("payment verified",
		zap.String("order_id", input.OrderID),
		zap.String("payment_id", input.PaymentID),
		zap.Float64("amount", input.Amount))
	return payment, nil
}

// ListMyPayments returns the user's payments, newest first
func (s *PaymentService) ListMyPayments(ctx context.Context, userID uuid.UUID) ([]entity.Payment, error) {
	return s.paymentRepo.ListByUser(ctx, userID)
}
