package model

import "time"

// Product is a catalog entry with its stock counter.
type Product struct {
	ID                int64
	Name              string
	Description       string
	ImageURL          string
	OriginalPrice     float64
	SalePrice         float64
	Stock             int
	LowStockThreshold int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RestockRequestStatus describes admin restock request state.
type RestockRequestStatus string

const (
	RestockRequestOpen      RestockRequestStatus = "open"
	RestockRequestFulfilled RestockRequestStatus = "fulfilled"
)

// RestockRequest is an admin-raised request to replenish a product.
type RestockRequest struct {
	ID        int64
	ProductID int64
	Quantity  int
	Note      string
	Status    RestockRequestStatus
	CreatedAt time.Time
}
