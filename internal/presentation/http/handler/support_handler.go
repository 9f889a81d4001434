package handler

import (
	"github.com/billify/billify-api/internal/application/service"
	"github.com/billify/billify-api/internal/presentation/http/dto/request"
	"github.com/billify/billify-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SupportHandler handles support ticket HTTP requests
type SupportHandler struct {
	supportService *service.SupportService
}

// NewSupportHandler creates a new support handler
func NewSupportHandler(supportService *service.SupportService) *SupportHandler {
	return &SupportHandler{supportService: supportService}
}

// Create files a new support ticket for the caller
func (h *SupportHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ticket, err := h.supportService.CreateTicket(c.Request.Context(), &service.CreateTicketInput{
		UserID:  *userID,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Ticket created successfully", ticket)
}

// List returns the caller's support tickets
func (h *SupportHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	tickets, err := h.supportService.ListMyTickets(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tickets retrieved successfully", tickets)
}
