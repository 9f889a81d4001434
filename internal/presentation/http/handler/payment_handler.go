package handler

import (
	"github.com/billify/billify-api/internal/application/service"
	"github.com/billify/billify-api/internal/presentation/http/dto/request"
	"github.com/billify/billify-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment gateway HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateOrder creates a gateway order for the given amount
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.paymentService.CreateOrder(c.Request.Context(), req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Verify checks a client-submitted payment confirmation against the gateway
// signature and records the payment only if it is authentic
func (h *PaymentHandler) Verify(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payment, err := h.paymentService.VerifyPayment(c.Request.Context(), &service.VerifyPaymentInput{
		UserID:    *userID,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
		Amount:    req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment verified successfully", payment)
}

// List returns the caller's recorded payments
func (h *PaymentHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	payments, err := h.paymentService.ListMyPayments(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", payments)
}
