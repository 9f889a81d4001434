package repository

import (
	"context"

	"github.com/billify/billify-api/internal/domain/entity"
	"github.com/billify/billify-api/pkg/pagination"
	"github.com/google/uuid"
)

// ProductFilterParams holds filtering options for product listing
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
}

// ProductRepository defines the interface for catalog data access
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
}
