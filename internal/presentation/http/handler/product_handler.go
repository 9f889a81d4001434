package handler

import (
	"net/http"

	"github.com/billify/billify-api/internal/application/service"
	"github.com/billify/billify-api/internal/domain/repository"
	"github.com/billify/billify-api/internal/presentation/http/dto/request"
	"github.com/billify/billify-api/internal/presentation/http/dto/response"
	"github.com/billify/billify-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles catalog-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GetByBarcode looks up a catalog record by its scanned barcode
func (h *ProductHandler) GetByBarcode(c *gin.Context) {
	barcode := c.Param("barcode")
	if barcode == "" {
		response.BadRequest(c, "Barcode is required")
		return
	}

	product, err := h.productService.GetByBarcode(c.Request.Context(), barcode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Create adds a new product to the catalog
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Barcode:  req.Barcode,
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Stock:    req.Stock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// List returns catalog records with search and pagination
func (h *ProductHandler) List(c *gin.Context) {
	var req request.ProductFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
		Category:   req.Category,
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Products retrieved successfully", result)
}
