package dto

import "time"

// ProductRequest describes create/update payload for a catalog entry.
type ProductRequest struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	ImageURL          string  `json:"image_url"`
	OriginalPrice     float64 `json:"original_price"`
	SalePrice         float64 `json:"sale_price"`
	Stock             int     `json:"stock"`
	LowStockThreshold int     `json:"low_stock_threshold"`
}

// ProductResponse represents one catalog entry.
type ProductResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	ImageURL          string    `json:"image_url"`
	OriginalPrice     float64   `json:"original_price"`
	SalePrice         float64   `json:"sale_price"`
	Stock             int       `json:"stock"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// SearchResponse is one page of catalog search results.
type SearchResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}
