package entity

import (
	"time"

	"github.com/billify/billify-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment records a gateway payment confirmation. A completed payment row is
// written only after the gateway signature has been verified.
type Payment struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	OrderID   string             `gorm:"size:100;not null" json:"order_id"`
	PaymentID string             `gorm:"size:100" json:"payment_id"`
	Signature string             `gorm:"size:255" json:"-"`
	Amount    float64            `gorm:"not null" json:"amount"`
	Status    enum.PaymentStatus `gorm:"default:0" json:"status"`
	Method    string             `gorm:"size:50" json:"method"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	DeletedAt gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
