package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/polkiloo/storefront/internal/adapter/gateway"
	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	testhelpers "github.com/polkiloo/storefront/internal/test"
)

func paidOrderRepo(orderID int64, amount float64) *testhelpers.OrderRepositoryStub {
	userID := int64(1)
	return &testhelpers.OrderRepositoryStub{
		Orders: []model.Order{{
			ID: orderID, UserID: &userID, Number: "ORD1",
			TotalAmount: amount,
			Status:      model.OrderStatusPending,
		}},
	}
}

func TestPaymentUseCaseStartRejectsUnknownMethod(t *testing.T) {
	uc := NewPaymentUseCase(&testhelpers.PaymentRepositoryStub{}, paidOrderRepo(1, 100), &testhelpers.GatewayStub{}, &testhelpers.NotifierStub{})

	_, err := uc.Start(context.Background(), 1, "cash", "")
	if _, ok := domainErrors.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPaymentUseCaseStartRejectsZeroAmount(t *testing.T) {
	uc := NewPaymentUseCase(&testhelpers.PaymentRepositoryStub{}, paidOrderRepo(1, 0), &testhelpers.GatewayStub{}, &testhelpers.NotifierStub{})

	if _, err := uc.Start(context.Background(), 1, model.PaymentMethodUPI, ""); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount error, got %v", err)
	}
}

func TestPaymentUseCaseStartOrderNotFound(t *testing.T) {
	uc := NewPaymentUseCase(&testhelpers.PaymentRepositoryStub{}, &testhelpers.OrderRepositoryStub{}, &testhelpers.GatewayStub{}, &testhelpers.NotifierStub{})

	if _, err := uc.Start(context.Background(), 9, model.PaymentMethodUPI, ""); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestPaymentUseCaseStartMasksCardInstrument(t *testing.T) {
	payments := &testhelpers.PaymentRepositoryStub{}
	uc := NewPaymentUseCase(payments, paidOrderRepo(1, 100), &testhelpers.GatewayStub{}, &testhelpers.NotifierStub{})

	payment, err := uc.Start(context.Background(), 1, model.PaymentMethodCard, "4111111111111111")
	if err != nil {
		t.Fatalf("start returned error: %v", err)
	}
	if payment.Detail != "****1111" {
		t.Fatalf("expected masked card number, got %q", payment.Detail)
	}
	if payment.Status != model.PaymentStatusInitiated {
		t.Fatalf("expected initiated status, got %s", payment.Status)
	}
	if payment.Amount != 100 {
		t.Fatalf("expected amount from order, got %v", payment.Amount)
	}
}

func TestPaymentUseCaseVerifySuccessMarksOrderPaid(t *testing.T) {
	payments := &testhelpers.PaymentRepositoryStub{
		Payments: []model.Payment{{ID: 1, OrderID: 1, TransactionID: "TXN1", Method: model.PaymentMethodUPI, Status: model.PaymentStatusInitiated}},
	}
	orders := paidOrderRepo(1, 100)
	gw := &testhelpers.GatewayStub{Outcome: gateway.OutcomeVerified}
	notifier := &testhelpers.NotifierStub{}
	uc := NewPaymentUseCase(payments, orders, gw, notifier)

	result, err := uc.Verify(context.Background(), VerifyPaymentInput{TransactionID: "TXN1", UPIReference: "ref"})
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}
	if result.Outcome != gateway.OutcomeVerified {
		t.Fatalf("expected verified outcome, got %s", result.Outcome)
	}
	if payments.Payments[0].Status != model.PaymentStatusCompleted {
		t.Fatalf("expected completed payment, got %s", payments.Payments[0].Status)
	}
	if len(payments.PaidOrders) != 1 || payments.PaidOrders[0] != 1 {
		t.Fatalf("expected order 1 marked paid, got %v", payments.PaidOrders)
	}
	if len(notifier.Calls) != 1 {
		t.Fatalf("expected payment notification, got %+v", notifier.Calls)
	}
	if len(gw.Requests) != 1 || gw.Requests[0].UPIReference != "ref" {
		t.Fatalf("unexpected gateway request %+v", gw.Requests)
	}
}

func TestPaymentUseCaseVerifyIdempotentOnCompleted(t *testing.T) {
	payments := &testhelpers.PaymentRepositoryStub{
		Payments: []model.Payment{{ID: 1, OrderID: 1, TransactionID: "TXN1", Status: model.PaymentStatusCompleted}},
	}
	gw := &testhelpers.GatewayStub{Outcome: gateway.OutcomeVerified}
	orders := paidOrderRepo(1, 100)
	uc := NewPaymentUseCase(payments, orders, gw, &testhelpers.NotifierStub{})

	result, err := uc.Verify(context.Background(), VerifyPaymentInput{TransactionID: "TXN1"})
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}
	if result.Outcome != gateway.OutcomeVerified {
		t.Fatalf("expected verified outcome, got %s", result.Outcome)
	}
	if len(gw.Requests) != 0 {
		t.Fatalf("gateway must not be consulted again, got %d requests", len(gw.Requests))
	}
	if len(payments.UpdateCalls) != 0 {
		t.Fatalf("no status change expected, got %+v", payments.UpdateCalls)
	}
	if len(payments.PaidOrders) != 0 {
		t.Fatalf("order must not be re-marked paid, got %v", payments.PaidOrders)
	}
}

func TestPaymentUseCaseVerifyPendingKeepsOrderUnpaid(t *testing.T) {
	payments := &testhelpers.PaymentRepositoryStub{
		Payments: []model.Payment{{ID: 1, OrderID: 1, TransactionID: "TXN1", Status: model.PaymentStatusInitiated}},
	}
	orders := paidOrderRepo(1, 100)
	uc := NewPaymentUseCase(payments, orders, &testhelpers.GatewayStub{Outcome: gateway.OutcomePending}, &testhelpers.NotifierStub{})

	result, err := uc.Verify(context.Background(), VerifyPaymentInput{TransactionID: "TXN1"})
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}
	if result.Outcome != gateway.OutcomePending {
		t.Fatalf("expected pending outcome, got %s", result.Outcome)
	}
	if payments.Payments[0].Status != model.PaymentStatusPending {
		t.Fatalf("expected pending payment, got %s", payments.Payments[0].Status)
	}
	if len(payments.PaidOrders) != 0 {
		t.Fatalf("pending verdict must not mark order paid, got %v", payments.PaidOrders)
	}
}

func TestPaymentUseCaseVerifyFailureAllowsRetry(t *testing.T) {
	payments := &testhelpers.PaymentRepositoryStub{
		Payments: []model.Payment{{ID: 1, OrderID: 1, TransactionID: "TXN1", Status: model.PaymentStatusInitiated}},
	}
	orders := paidOrderRepo(1, 100)
	uc := NewPaymentUseCase(payments, orders, &testhelpers.GatewayStub{Outcome: gateway.OutcomeFailed}, &testhelpers.NotifierStub{})

	result, err := uc.Verify(context.Background(), VerifyPaymentInput{TransactionID: "TXN1"})
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}
	if result.Outcome != gateway.OutcomeFailed {
		t.Fatalf("expected failed outcome, got %s", result.Outcome)
	}
	if payments.Payments[0].Status != model.PaymentStatusFailed {
		t.Fatalf("expected failed payment, got %s", payments.Payments[0].Status)
	}
	if len(payments.PaidOrders) != 0 {
		t.Fatalf("failed verdict must not mark order paid, got %v", payments.PaidOrders)
	}

	// a new attempt against the same order still works
	second, err := uc.Start(context.Background(), 1, model.PaymentMethodUPI, "")
	if err != nil {
		t.Fatalf("retry start returned error: %v", err)
	}
	if second.TransactionID == "TXN1" {
		t.Fatal("retry must produce a fresh transaction id")
	}
}

func TestPaymentUseCaseVerifyCompletionFailureKeepsPaymentRetryable(t *testing.T) {
	payments := &testhelpers.PaymentRepositoryStub{
		Payments: []model.Payment{{ID: 1, OrderID: 1, TransactionID: "TXN1", Method: model.PaymentMethodUPI, Status: model.PaymentStatusInitiated}},
	}
	payments.CompleteFn = func(context.Context, int64, int64, model.TrackingEvent) error {
		return errors.New("connection reset")
	}
	orders := paidOrderRepo(1, 100)
	uc := NewPaymentUseCase(payments, orders, &testhelpers.GatewayStub{Outcome: gateway.OutcomeVerified}, &testhelpers.NotifierStub{})

	if _, err := uc.Verify(context.Background(), VerifyPaymentInput{TransactionID: "TXN1"}); err == nil {
		t.Fatal("expected verify to surface the completion error")
	}
	if payments.Payments[0].Status != model.PaymentStatusProcessing {
		t.Fatalf("payment must stay in processing after a failed completion, got %s", payments.Payments[0].Status)
	}

	// once persistence recovers, the same transaction verifies cleanly
	payments.CompleteFn = nil
	result, err := uc.Verify(context.Background(), VerifyPaymentInput{TransactionID: "TXN1"})
	if err != nil {
		t.Fatalf("retried verify returned error: %v", err)
	}
	if result.Outcome != gateway.OutcomeVerified {
		t.Fatalf("expected verified outcome, got %s", result.Outcome)
	}
	if payments.Payments[0].Status != model.PaymentStatusCompleted {
		t.Fatalf("expected completed payment, got %s", payments.Payments[0].Status)
	}
	if len(payments.PaidOrders) != 1 || payments.PaidOrders[0] != 1 {
		t.Fatalf("expected order 1 marked paid exactly once, got %v", payments.PaidOrders)
	}
}

func TestPaymentUseCaseVerifyUnknownTransaction(t *testing.T) {
	uc := NewPaymentUseCase(&testhelpers.PaymentRepositoryStub{}, paidOrderRepo(1, 100), &testhelpers.GatewayStub{}, &testhelpers.NotifierStub{})

	if _, err := uc.Verify(context.Background(), VerifyPaymentInput{TransactionID: "missing"}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestPaymentUseCaseVerifyGatewayError(t *testing.T) {
	payments := &testhelpers.PaymentRepositoryStub{
		Payments: []model.Payment{{ID: 1, OrderID: 1, TransactionID: "TXN1", Status: model.PaymentStatusInitiated}},
	}
	gwErr := errors.New("gateway unavailable")
	uc := NewPaymentUseCase(payments, paidOrderRepo(1, 100), &testhelpers.GatewayStub{Err: gwErr}, &testhelpers.NotifierStub{})

	if _, err := uc.Verify(context.Background(), VerifyPaymentInput{TransactionID: "TXN1"}); !errors.Is(err, gwErr) {
		t.Fatalf("expected gateway error, got %v", err)
	}
	if payments.Payments[0].Status != model.PaymentStatusProcessing {
		t.Fatalf("payment should stay in processing for the finalizer, got %s", payments.Payments[0].Status)
	}
}

func TestPaymentUseCaseResolveAppliesVerdict(t *testing.T) {
	payments := &testhelpers.PaymentRepositoryStub{
		Payments: []model.Payment{{ID: 1, OrderID: 1, TransactionID: "TXN1", Method: model.PaymentMethodUPI, Status: model.PaymentStatusProcessing}},
	}
	orders := paidOrderRepo(1, 100)
	gw := &testhelpers.GatewayStub{Outcome: gateway.OutcomeVerified}
	uc := NewPaymentUseCase(payments, orders, gw, &testhelpers.NotifierStub{})

	outcome, err := uc.Resolve(context.Background(), payments.Payments[0])
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}
	if outcome != gateway.OutcomeVerified {
		t.Fatalf("expected verified outcome, got %s", outcome)
	}
	if payments.Payments[0].Status != model.PaymentStatusCompleted {
		t.Fatalf("expected completed payment, got %s", payments.Payments[0].Status)
	}
	if len(payments.PaidOrders) != 1 {
		t.Fatalf("expected order marked paid, got %v", payments.PaidOrders)
	}
}

func TestPaymentUseCaseStuckProcessing(t *testing.T) {
	payments := &testhelpers.PaymentRepositoryStub{
		Payments: []model.Payment{
			{ID: 1, TransactionID: "TXN1", Status: model.PaymentStatusProcessing},
			{ID: 2, TransactionID: "TXN2", Status: model.PaymentStatusCompleted},
		},
	}
	uc := NewPaymentUseCase(payments, &testhelpers.OrderRepositoryStub{}, &testhelpers.GatewayStub{}, &testhelpers.NotifierStub{})

	stuck, err := uc.StuckProcessing(context.Background(), time.Minute, 10)
	if err != nil {
		t.Fatalf("stuck processing returned error: %v", err)
	}
	if len(stuck) != 1 || stuck[0].TransactionID != "TXN1" {
		t.Fatalf("expected only processing payment, got %+v", stuck)
	}
}
