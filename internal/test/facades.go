package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/polkiloo/storefront/internal/adapter/gateway"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// ResolveCall stores one resolved payment observed by the worker stub.
type ResolveCall struct {
	TransactionID string
}

// WorkerFacadeStub mimics worker interactions with the storefront facade.
type WorkerFacadeStub struct {
	Batches        [][]model.Payment
	StuckFn        func(context.Context, time.Duration, int) ([]model.Payment, error)
	ResolveFn      func(context.Context, model.Payment) error
	Resolved       []ResolveCall
	mu             sync.Mutex
	stuckCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// StuckPayments returns batches from configured queue.
func (s *WorkerFacadeStub) StuckPayments(ctx context.Context, olderThan time.Duration, limit int) ([]model.Payment, error) {
	if s.StuckFn != nil {
		return s.StuckFn(ctx, olderThan, limit)
	}
	call := atomic.AddInt32(&s.stuckCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// ResolvePayment records resolution requests.
func (s *WorkerFacadeStub) ResolvePayment(ctx context.Context, payment model.Payment) error {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, payment)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Resolved = append(s.Resolved, ResolveCall{TransactionID: payment.TransactionID})
	return nil
}

// GatewayStub returns scripted verdicts for payment submissions.
type GatewayStub struct {
	SubmitFn func(context.Context, gateway.Request) (*gateway.Result, error)
	Outcome  gateway.Outcome
	Err      error
	Requests []gateway.Request
}

// Submit records the request and returns the configured verdict.
func (s *GatewayStub) Submit(ctx context.Context, req gateway.Request) (*gateway.Result, error) {
	s.Requests = append(s.Requests, req)
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, req)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	outcome := s.Outcome
	if outcome == "" {
		outcome = gateway.OutcomeVerified
	}
	return &gateway.Result{TransactionID: req.TransactionID, Outcome: outcome}, nil
}

// NotifierCall stores one delivered notification.
type NotifierCall struct {
	UserID  int64
	Title   string
	Message string
	Kind    model.NotificationType
}

// NotifierStub records fire-and-forget notifications.
type NotifierStub struct {
	Calls []NotifierCall
}

// Notify appends the notification to the recorded calls.
func (s *NotifierStub) Notify(ctx context.Context, userID int64, title, message string, kind model.NotificationType) {
	s.Calls = append(s.Calls, NotifierCall{UserID: userID, Title: title, Message: message, Kind: kind})
}

var _ gateway.Gateway = (*GatewayStub)(nil)
