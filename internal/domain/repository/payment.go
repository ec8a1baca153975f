package repository

import (
	"context"
	"time"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// PaymentRepository describes persistence operations with payment attempts.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*model.Payment, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error)
	UpdateStatus(ctx context.Context, paymentID int64, status model.PaymentStatus) error
	// CompleteAndMarkOrderPaid finishes a verified attempt: the payment
	// turns completed, the order becomes paid and confirmed, and the
	// tracking event is appended, all in one transaction.
	CompleteAndMarkOrderPaid(ctx context.Context, paymentID, orderID int64, event model.TrackingEvent) error
	// SelectStuckProcessing claims payments left in processing longer than
	// maxAge so the finalizer worker can resolve them. Claimed rows are
	// locked against concurrent workers.
	SelectStuckProcessing(ctx context.Context, olderThan time.Duration, limit int) ([]model.Payment, error)
}
