package request

// BillItemRequest represents one scanned line item in a bill
type BillItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
}

// CreateBillRequest represents the bill creation payload
type CreateBillRequest struct {
	Items []BillItemRequest `json:"items" binding:"required,min=1,dive"`
	// PaymentStatus lets a post-payment checkout create the bill already
	// marked paid. Defaults to pending.
	PaymentStatus string `json:"payment_status" binding:"omitempty,oneof=pending paid"`
}
