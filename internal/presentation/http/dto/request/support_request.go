package request

// CreateTicketRequest represents a support ticket creation payload
type CreateTicketRequest struct {
	Subject string `json:"subject" binding:"required,min=3,max=255"`
	Message string `json:"message" binding:"required,min=3"`
}
