package repository

import (
	"context"

	"github.com/billify/billify-api/internal/domain/entity"
	"github.com/google/uuid"
)

// BillRepository defines the interface for bill data access
type BillRepository interface {
	// Create persists the bill and its line items in a single transaction.
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	// ListByUser returns the user's bills newest first, items preloaded.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Bill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
