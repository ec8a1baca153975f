package model

import "time"

// CartItem is one product line held in a cart.
type CartItem struct {
	ProductID int64
	Name      string
	UnitPrice float64
	Quantity  int
	ImageURL  string
}

// Cart is the cart of record for a user, or for a guest session when
// UserID is nil.
type Cart struct {
	UserID    *int64
	SessionID string
	Items     []CartItem
	UpdatedAt time.Time
}
