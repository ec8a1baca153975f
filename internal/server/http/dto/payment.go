package dto

import "time"

// StartPaymentRequest opens a payment attempt. Instrument carries the card
// number or UPI id, masked before persistence.
type StartPaymentRequest struct {
	OrderID    int64  `json:"order_id"`
	Method     string `json:"method"`
	Instrument string `json:"instrument,omitempty"`
}

// PaymentResponse represents one payment attempt.
type PaymentResponse struct {
	TransactionID string    `json:"transaction_id"`
	OrderID       int64     `json:"order_id"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	Detail        string    `json:"detail,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// VerifyPaymentRequest submits method-specific verification fields.
type VerifyPaymentRequest struct {
	TransactionID string `json:"transaction_id"`
	OTP           string `json:"otp,omitempty"`
	UPIReference  string `json:"upi_reference,omitempty"`
}

// VerifyPaymentResponse reports the gateway verdict.
type VerifyPaymentResponse struct {
	TransactionID string `json:"transaction_id"`
	Outcome       string `json:"outcome"`
	Message       string `json:"message"`
}
