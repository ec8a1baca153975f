package dto

import "time"

// UpdateStockRequest overwrites one product's stock counter.
type UpdateStockRequest struct {
	ProductID int64 `json:"product_id"`
	Stock     int   `json:"stock"`
}

// BulkUpdateStockRequest overwrites stock for several products at once.
type BulkUpdateStockRequest struct {
	Updates []UpdateStockRequest `json:"updates"`
}

// StockAlertRequest updates the low-stock threshold of a product.
type StockAlertRequest struct {
	ProductID int64 `json:"product_id"`
	Threshold int   `json:"threshold"`
}

// RestockRequestPayload raises a restock request for a product.
type RestockRequestPayload struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Note      string `json:"note,omitempty"`
}

// RestockResponse represents a recorded restock request.
type RestockResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Note      string    `json:"note,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
