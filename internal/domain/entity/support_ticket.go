package entity

import (
	"time"

	"github.com/billify/billify-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupportTicket represents a user-filed support request
type SupportTicket struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Subject   string            `gorm:"size:255;not null" json:"subject"`
	Message   string            `gorm:"type:text;not null" json:"message"`
	Status    enum.TicketStatus `gorm:"default:0" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new ticket
func (t *SupportTicket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SupportTicket model
func (SupportTicket) TableName() string {
	return "support_tickets"
}
