package entity

import (
	"time"

	"github.com/billify/billify-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill represents a self-checkout purchase with totals computed at creation
// time. Amounts are stored in major currency units; tax keeps its fractional
// part and is never rounded. Bills are immutable after creation except for
// deletion.
type Bill struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Subtotal      float64         `gorm:"not null" json:"subtotal"`
	Tax           float64         `gorm:"not null" json:"tax"`
	TotalAmount   float64         `gorm:"not null" json:"total_amount"`
	PaymentStatus enum.BillStatus `gorm:"default:0" json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Items []BillItem `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"items"`
	User  User       `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// BillItem is one product line within a bill, snapshotting the name and unit
// price at the time of purchase.
type BillItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ProductID string    `gorm:"size:100;not null" json:"product_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (i *BillItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}
