package gateway

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// Outcome is the terminal answer of a gateway verification attempt.
type Outcome string

const (
	OutcomeVerified Outcome = "verified"
	OutcomePending  Outcome = "pending"
	OutcomeFailed   Outcome = "failed"
)

// Request describes one verification submission.
type Request struct {
	TransactionID string
	Method        model.PaymentMethod
	// OTP is the one-time password supplied in the card flow. Empty means
	// the caller skipped the OTP step.
	OTP string
	// UPIReference is the reference id supplied in the UPI flow.
	UPIReference string
}

// Result carries the gateway verdict for a submission.
type Result struct {
	TransactionID string
	Outcome       Outcome
	Message       string
}

// Gateway verifies payment attempts. Implementations must be safe for
// concurrent use. A real provider integration substitutes the simulator
// without touching payment orchestration.
type Gateway interface {
	Submit(ctx context.Context, req Request) (*Result, error)
}
