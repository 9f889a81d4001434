package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a catalog item addressable by its barcode
type Product struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Barcode   string         `gorm:"size:100;unique;not null" json:"barcode"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Price     int64          `gorm:"not null" json:"price"` // Stored in cents
	Category  *string        `gorm:"size:255" json:"category,omitempty"`
	Stock     int            `gorm:"default:100" json:"stock"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPriceDecimal returns the price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.Price) / 100
}

// SetPriceFromDecimal sets the price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.Price = int64(price * 100)
}

// ProductJSON is a helper struct for JSON marshaling with decimal prices
type ProductJSON struct {
	ID        uuid.UUID `json:"id"`
	Barcode   string    `json:"barcode"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"` // Decimal value for JSON
	Category  *string   `json:"category,omitempty"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON converts Product to JSON with decimal prices
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(ProductJSON{
		ID:        p.ID,
		Barcode:   p.Barcode,
		Name:      p.Name,
		Price:     p.GetPriceDecimal(),
		Category:  p.Category,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	})
}
