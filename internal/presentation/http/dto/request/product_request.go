package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Barcode  string  `json:"barcode" binding:"required,min=4,max=100"`
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Category *string `json:"category"`
	Stock    *int    `json:"stock" binding:"omitempty,min=0"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}
