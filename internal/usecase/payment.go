package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/polkiloo/storefront/internal/adapter/gateway"
	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// VerifyPaymentInput carries method-specific verification fields.
type VerifyPaymentInput struct {
	TransactionID string
	OTP           string
	UPIReference  string
}

// VerifyPaymentResult reports the gateway verdict applied to the records.
type VerifyPaymentResult struct {
	TransactionID string
	Outcome       gateway.Outcome
	Message       string
}

// PaymentUseCase orchestrates payment attempts against the gateway and keeps
// payment and order records consistent.
type PaymentUseCase struct {
	payments repository.PaymentRepository
	orders   repository.OrderRepository
	gateway  gateway.Gateway
	notifier Notifier
	now      func() time.Time
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(payments repository.PaymentRepository, orders repository.OrderRepository, gw gateway.Gateway, notifier Notifier) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, orders: orders, gateway: gw, notifier: notifier, now: time.Now}
}

// Start opens a payment attempt for an order. Retries create new attempts;
// only a completed one marks the order paid.
func (u *PaymentUseCase) Start(ctx context.Context, orderID int64, method model.PaymentMethod, instrument string) (*model.Payment, error) {
	if !ValidatePaymentMethod(method) {
		v := domainErrors.NewValidationError()
		v.Add("method", "payment method must be upi or card")
		return nil, v
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.TotalAmount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	payment := &model.Payment{
		OrderID:       order.ID,
		TransactionID: NewTransactionID(u.now()),
		Amount:        order.TotalAmount,
		Method:        method,
		Status:        model.PaymentStatusInitiated,
		Detail:        maskInstrument(method, instrument),
	}
	return u.payments.Create(ctx, payment)
}

// Verify submits the attempt to the gateway and applies the verdict. A
// payment that already completed returns the verified outcome again without
// re-applying any side effect.
func (u *PaymentUseCase) Verify(ctx context.Context, input VerifyPaymentInput) (*VerifyPaymentResult, error) {
	payment, err := u.payments.GetByTransactionID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if payment.Status == model.PaymentStatusCompleted {
		return &VerifyPaymentResult{
			TransactionID: payment.TransactionID,
			Outcome:       gateway.OutcomeVerified,
			Message:       "payment already verified",
		}, nil
	}

	if err := u.payments.UpdateStatus(ctx, payment.ID, model.PaymentStatusProcessing); err != nil {
		return nil, err
	}

	result, err := u.gateway.Submit(ctx, gateway.Request{
		TransactionID: payment.TransactionID,
		Method:        payment.Method,
		OTP:           input.OTP,
		UPIReference:  input.UPIReference,
	})
	if err != nil {
		return nil, err
	}

	if err := u.Apply(ctx, payment, result.Outcome); err != nil {
		return nil, err
	}

	return &VerifyPaymentResult{
		TransactionID: payment.TransactionID,
		Outcome:       result.Outcome,
		Message:       result.Message,
	}, nil
}

// Apply persists a gateway verdict. On a verified outcome the payment is
// completed and the parent order is marked paid, confirmed and annotated
// with a "Payment Received" tracking entry in one transaction.
func (u *PaymentUseCase) Apply(ctx context.Context, payment *model.Payment, outcome gateway.Outcome) error {
	switch outcome {
	case gateway.OutcomeVerified:
		if err := u.payments.CompleteAndMarkOrderPaid(ctx, payment.ID, payment.OrderID, PaymentReceivedEvent(u.now())); err != nil {
			return err
		}
		u.notifyPaid(ctx, payment)
		return nil
	case gateway.OutcomePending:
		return u.payments.UpdateStatus(ctx, payment.ID, model.PaymentStatusPending)
	default:
		return u.payments.UpdateStatus(ctx, payment.ID, model.PaymentStatusFailed)
	}
}

// ListByOrder returns payment attempts for an order, newest first.
func (u *PaymentUseCase) ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	return u.payments.ListByOrder(ctx, orderID)
}

// StuckProcessing claims payments abandoned mid-verification.
func (u *PaymentUseCase) StuckProcessing(ctx context.Context, olderThan time.Duration, limit int) ([]model.Payment, error) {
	return u.payments.SelectStuckProcessing(ctx, olderThan, limit)
}

// Resolve re-submits a stuck payment to the gateway and applies the verdict.
func (u *PaymentUseCase) Resolve(ctx context.Context, payment model.Payment) (gateway.Outcome, error) {
	result, err := u.gateway.Submit(ctx, gateway.Request{
		TransactionID: payment.TransactionID,
		Method:        payment.Method,
	})
	if err != nil {
		return "", err
	}
	if err := u.Apply(ctx, &payment, result.Outcome); err != nil {
		return "", err
	}
	return result.Outcome, nil
}

func (u *PaymentUseCase) notifyPaid(ctx context.Context, payment *model.Payment) {
	if u.notifier == nil {
		return
	}
	order, err := u.orders.GetByID(ctx, payment.OrderID)
	if err != nil || order.UserID == nil {
		return
	}
	u.notifier.Notify(ctx, *order.UserID, "Payment received",
		fmt.Sprintf("Payment for order %s has been received", order.Number),
		model.NotificationTypeOrder)
}

func maskInstrument(method model.PaymentMethod, instrument string) string {
	if method != model.PaymentMethodCard {
		return instrument
	}
	if len(instrument) <= 4 {
		return instrument
	}
	return "****" + instrument[len(instrument)-4:]
}
