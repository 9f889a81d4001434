package repository

import (
	"context"
	"errors"

	"github.com/billify/billify-api/internal/domain/entity"
	domainRepo "github.com/billify/billify-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

// Create persists the bill header and its items atomically. GORM writes the
// associated Items slice within the same transaction, so either the whole
// bill lands or nothing does.
func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(bill).Error
	})
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bills).Error
	return bills, err
}

func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Bill{}, "id = ?", id).Error
}
