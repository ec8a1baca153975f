package model

import "time"

// PaymentStatus describes a payment attempt lifecycle, independent from the
// order's own status.
type PaymentStatus string

const (
	PaymentStatusInitiated  PaymentStatus = "initiated"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// Payment represents one payment attempt against an order. Multiple attempts
// may exist per order; only a completed one marks the order paid.
type Payment struct {
	ID            int64
	OrderID       int64
	TransactionID string
	Amount        float64
	Method        PaymentMethod
	Status        PaymentStatus
	Detail        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
