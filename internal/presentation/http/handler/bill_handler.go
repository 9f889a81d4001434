package handler

import (
	"github.com/billify/billify-api/internal/application/service"
	"github.com/billify/billify-api/internal/domain/enum"
	"github.com/billify/billify-api/internal/presentation/http/dto/request"
	"github.com/billify/billify-api/internal/presentation/http/dto/response"
	"github.com/billify/billify-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billService *service.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// Create handles bill creation from a scanned cart
func (h *BillHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.BillItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.BillItemInput{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	status := enum.BillStatusPending
	if req.PaymentStatus == "paid" {
		status = enum.BillStatusPaid
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		UserID:        *userID,
		Items:         items,
		PaymentStatus: status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// List returns the caller's bills, newest first
func (h *BillHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	bills, err := h.billService.ListMyBills(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bills retrieved successfully", bills)
}

// Get returns a single bill owned by the caller
func (h *BillHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	billID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billService.GetBill(c.Request.Context(), *userID, billID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// Delete removes a bill owned by the caller
func (h *BillHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	billID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.billService.DeleteBill(c.Request.Context(), *userID, billID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill deleted successfully", nil)
}
