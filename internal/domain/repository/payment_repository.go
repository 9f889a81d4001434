package repository

import (
	"context"

	"github.com/billify/billify-api/internal/domain/entity"
	"github.com/google/uuid"
)

// PaymentRepository defines the interface for payment data access
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Payment, error)
}
