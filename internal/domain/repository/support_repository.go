package repository

import (
	"context"

	"github.com/billify/billify-api/internal/domain/entity"
	"github.com/google/uuid"
)

// SupportTicketRepository defines the interface for support ticket data access
type SupportTicketRepository interface {
	Create(ctx context.Context, ticket *entity.SupportTicket) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.SupportTicket, error)
}
