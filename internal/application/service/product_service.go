package service

import (
	"context"

	"github.com/billify/billify-api/internal/domain/entity"
	"github.com/billify/billify-api/internal/domain/repository"
	"github.com/billify/billify-api/pkg/apperror"
	"github.com/billify/billify-api/pkg/pagination"
)

// ProductService handles catalog lookups and seeding
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// GetByBarcode fetches the unique product for a scanned barcode. An unknown
// barcode is a distinct not-found error so the client can tell "item
// unknown" apart from a transient failure.
func (s *ProductService) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Barcode  string
	Name     string
	Price    float64
	Category *string
	Stock    *int
}

// CreateProduct adds a catalog record
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	existing, err := s.productRepo.GetByBarcode(ctx, input.Barcode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Barcode already registered")
	}

	product := &entity.Product{
		Barcode:  input.Barcode,
		Name:     input.Name,
		Category: input.Category,
		Stock:    100,
	}
	product.SetPriceFromDecimal(input.Price)
	if input.Stock != nil {
		product.Stock = *input.Stock
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts lists catalog records with search and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}
