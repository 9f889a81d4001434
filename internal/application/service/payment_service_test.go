package service

import (
	"context"
	"strings"
	"testing"

	"github.com/billify/billify-api/internal/domain/enum"
	"github.com/billify/billify-api/internal/infrastructure/gateway"
	"github.com/billify/billify-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPaymentService(gw *fakeGateway) (*PaymentService, *fakePaymentRepo) {
	repo := &fakePaymentRepo{}
	return NewPaymentService(repo, gw, zap.NewNop()), repo
}

func TestCreateOrderConvertsToMinorUnits(t *testing.T) {
	gw := &fakeGateway{secret: "s3cret"}
	svc, _ := newPaymentService(gw)

	order, err := svc.CreateOrder(context.Background(), 162.75)
	require.NoError(t, err)

	assert.Equal(t, int64(16275), gw.lastAmount)
	assert.Equal(t, int64(16275), order.Amount)
	assert.True(t, strings.HasPrefix(gw.lastRcpt, "receipt_"))
	assert.Equal(t, "created", order.Status)
}

func TestCreateOrderRoundsMinorUnits(t *testing.T) {
	gw := &fakeGateway{secret: "s3cret"}
	svc, _ := newPaymentService(gw)

	// 19.99 has no exact binary representation; 19.99*100 floats just
	// under 1999 and must not truncate down a paisa.
	order, err := svc.CreateOrder(context.Background(), 19.99)
	require.NoError(t, err)
	assert.Equal(t, int64(1999), gw.lastAmount)
	assert.Equal(t, int64(1999), order.Amount)

	order, err = svc.CreateOrder(context.Background(), 0.07)
	require.NoError(t, err)
	assert.Equal(t, int64(7), order.Amount)
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	svc, _ := newPaymentService(&fakeGateway{secret: "s3cret"})

	_, err := svc.CreateOrder(context.Background(), 0)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	svc, _ := newPaymentService(&fakeGateway{secret: "s3cret", failOrders: true})

	_, err := svc.CreateOrder(context.Background(), 100)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 500, appErr.Code)
	assert.Equal(t, "Error creating payment order", appErr.Message)
}

func TestVerifyPaymentSuccess(t *testing.T) {
	gw := &fakeGateway{secret: "s3cret"}
	svc, repo := newPaymentService(gw)
	userID := uuid.New()

	sig := gateway.ExpectedSignature("order_123", "pay_456", "s3cret")

	payment, err := svc.VerifyPayment(context.Background(), &VerifyPaymentInput{
		UserID:    userID,
		OrderID:   "order_123",
		PaymentID: "pay_456",
		Signature: sig,
		Amount:    162.75,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, "razorpay", payment.Method)
	assert.Equal(t, userID, payment.UserID)
	require.Len(t, repo.payments, 1)
	assert.Equal(t, "order_123", repo.payments[0].OrderID)
}

func TestVerifyPaymentInvalidSignature(t *testing.T) {
	gw := &fakeGateway{secret: "s3cret"}
	svc, repo := newPaymentService(gw)

	sig := gateway.ExpectedSignature("order_123", "pay_456", "s3cret")
	tampered := sig[:len(sig)-1] + flipHex(sig[len(sig)-1])

	_, err := svc.VerifyPayment(context.Background(), &VerifyPaymentInput{
		UserID:    uuid.New(),
		OrderID:   "order_123",
		PaymentID: "pay_456",
		Signature: tampered,
		Amount:    162.75,
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Invalid payment signature", appErr.Message)
	assert.Empty(t, repo.payments, "no record may be persisted on mismatch")
}

func TestVerifyPaymentForeignSignature(t *testing.T) {
	// Signature computed with a different secret, as a spoofed client would.
	gw := &fakeGateway{secret: "s3cret"}
	svc, repo := newPaymentService(gw)

	sig := gateway.ExpectedSignature("order_123", "pay_456", "not-the-secret")

	_, err := svc.VerifyPayment(context.Background(), &VerifyPaymentInput{
		UserID:    uuid.New(),
		OrderID:   "order_123",
		PaymentID: "pay_456",
		Signature: sig,
		Amount:    10,
	})
	require.Error(t, err)
	assert.Empty(t, repo.payments)
}

func flipHex(b byte) string {
	if b == 'a' {
		return "b"
	}
	return "a"
}
