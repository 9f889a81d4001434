package service

import (
	"context"

	"github.com/billify/billify-api/internal/domain/entity"
	"github.com/billify/billify-api/internal/domain/enum"
	"github.com/billify/billify-api/internal/domain/repository"
	"github.com/google/uuid"
)

// SupportService handles support tickets
type SupportService struct {
	ticketRepo repository.SupportTicketRepository
}

// NewSupportService creates a new support service
func NewSupportService(ticketRepo repository.SupportTicketRepository) *SupportService {
	return &SupportService{ticketRepo: ticketRepo}
}

// CreateTicketInput represents the create ticket input
type CreateTicketInput struct {
	UserID  uuid.UUID
	Subject string
	Message string
}

// CreateTicket files a new support ticket for the user
func (s *SupportService) CreateTicket(ctx context.Context, input *CreateTicketInput) (*entity.SupportTicket, error) {
	ticket := &entity.SupportTicket{
		UserID:  input.UserID,
		Subject: input.Subject,
		Message: input.Message,
		Status:  enum.TicketStatusOpen,
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// ListMyTickets returns the user's tickets, newest first
func (s *SupportService) ListMyTickets(ctx context.Context, userID uuid.UUID) ([]entity.SupportTicket, error) {
	return s.ticketRepo.ListByUser(ctx, userID)
}
