package service

import (
	"context"

	"github.com/billify/billify-api/internal/domain/entity"
	"github.com/billify/billify-api/internal/domain/enum"
	"github.com/billify/billify-api/internal/domain/repository"
	"github.com/billify/billify-api/pkg/apperror"
	"github.com/google/uuid"
)

// TaxRate is the fixed tax applied to every bill. Single jurisdiction,
// single policy.
const TaxRate = 0.05

// BillService handles bill creation, listing and deletion
type BillService struct {
	billRepo repository.BillRepository
}

// NewBillService creates a new bill service
func NewBillService(billRepo repository.BillRepository) *BillService {
	return &BillService{billRepo: billRepo}
}

// BillItemInput represents one scanned line item
type BillItemInput struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	UserID        uuid.UUID
	Items         []BillItemInput
	PaymentStatus enum.BillStatus
}

// CreateBill computes subtotal, tax and total from the submitted items and
// persists the bill atomically. Totals are fixed at creation time and never
// recomputed; the tax keeps its fractional part.
func (s *BillService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("No items in bill")
	}

	var subtotal float64
	items := make([]entity.BillItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Price <= 0 {
			return nil, apperror.NewBadRequestError("Item price must be positive")
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}

		subtotal += item.Price * float64(item.Quantity)
		items = append(items, entity.BillItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	tax := subtotal * TaxRate
	total := subtotal + tax

	bill := &entity.Bill{
		UserID:        input.UserID,
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		TotalAmount:   total,
		PaymentStatus: input.PaymentStatus,
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	return bill, nil
}

// GetBill retrieves a bill by ID, scoped to its owner
func (s *BillService) GetBill(ctx context.Context, userID, billID uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	if bill.UserID != userID {
		return nil, apperror.NewUnauthorizedError("Not authorized to access this bill")
	}
	return bill, nil
}

// ListMyBills returns the user's bills, newest first
func (s *BillService) ListMyBills(ctx context.Context, userID uuid.UUID) ([]entity.Bill, error) {
	return s.billRepo.ListByUser(ctx, userID)
}

// DeleteBill removes a bill if and only if the caller owns it
func (s *BillService) DeleteBill(ctx context.Context, userID, billID uuid.UUID) error {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return err
	}
	if bill == nil {
		return apperror.NewNotFoundError("Bill")
	}
	if bill.UserID != userID {
		return apperror.NewUnauthorizedError("Not authorized to delete this bill")
	}
	return s.billRepo.Delete(ctx, billID)
}
