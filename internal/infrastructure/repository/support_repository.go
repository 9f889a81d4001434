package repository

import (
	"context"

	"github.com/billify/billify-api/internal/domain/entity"
	domainRepo "github.com/billify/billify-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type supportTicketRepository struct {
	db *gorm.DB
}

// NewSupportTicketRepository creates a new support ticket repository
func NewSupportTicketRepository(db *gorm.DB) domainRepo.SupportTicketRepository {
	return &supportTicketRepository{db: db}
}

func (r *supportTicketRepository) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *supportTicketRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.SupportTicket, error) {
	var tickets []entity.SupportTicket
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tickets).Error
	return tickets, err
}
