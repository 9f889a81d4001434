package service

import (
	"context"
	"testing"

	"github.com/billify/billify-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTicketOpensTicket(t *testing.T) {
	repo := &fakeTicketRepo{}
	svc := NewSupportService(repo)
	userID := uuid.New()

	ticket, err := svc.CreateTicket(context.Background(), &CreateTicketInput{
		UserID:  userID,
		Subject: "Double charge",
		Message: "I was charged twice for bill 42.",
	})
	require.NoError(t, err)

	assert.Equal(t, enum.TicketStatusOpen, ticket.Status)
	assert.Equal(t, userID, ticket.UserID)
	assert.Equal(t, "Double charge", ticket.Subject)
}

func TestListMyTicketsScopedToUser(t *testing.T) {
	repo := &fakeTicketRepo{}
	svc := NewSupportService(repo)
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.CreateTicket(context.Background(), &CreateTicketInput{
		UserID: alice, Subject: "Refund status", Message: "Any update on my refund?",
	})
	require.NoError(t, err)
	_, err = svc.CreateTicket(context.Background(), &CreateTicketInput{
		UserID: bob, Subject: "App crash", Message: "Scanner crashes on launch.",
	})
	require.NoError(t, err)

	tickets, err := svc.ListMyTickets(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Refund status", tickets[0].Subject)
}
