package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/polkiloo/storefront/internal/domain/model"
	testhelpers "github.com/polkiloo/storefront/internal/test"
)

func TestNewPaymentFinalizerDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	fin := NewPaymentFinalizer(&testhelpers.WorkerFacadeStub{}, time.Second, time.Minute, 0, 0, logger)
	if fin.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", fin.batchSize)
	}
	if fin.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", fin.workers)
	}
}

func TestPaymentFinalizerResolvesStuckPayments(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.WorkerFacadeStub{
		Batches: [][]model.Payment{{{ID: 1, TransactionID: "TXN1", Status: model.PaymentStatusProcessing}}},
	}
	fin := NewPaymentFinalizer(facade, 10*time.Millisecond, time.Minute, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fin.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		resolved := len(facade.Resolved) > 0
		facade.Unlock()
		if resolved {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for payment resolution")
		case <-time.After(10 * time.Millisecond):
		}
	}

	fin.Stop()
	facade.Lock()
	defer facade.Unlock()
	if facade.Resolved[0].TransactionID != "TXN1" {
		t.Fatalf("expected TXN1 resolved, got %+v", facade.Resolved)
	}
}

func TestPaymentFinalizerContinuesAfterResolveError(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	attempts := int32(0)
	facade := &testhelpers.WorkerFacadeStub{
		Batches: [][]model.Payment{
			{{ID: 1, TransactionID: "TXN1"}},
			{{ID: 2, TransactionID: "TXN2"}},
		},
		ResolveFn: func(ctx context.Context, payment model.Payment) error {
			if atomic.AddInt32(&attempts, 1) == 1 {
				return errors.New("gateway unavailable")
			}
			return nil
		},
	}

	fin := NewPaymentFinalizer(facade, 5*time.Millisecond, time.Minute, 1, 1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fin.Start(ctx)

	deadline := time.After(time.Second)
	for atomic.LoadInt32(&attempts) < 2 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for second resolution attempt")
		case <-time.After(10 * time.Millisecond):
		}
	}
	fin.Stop()
}

func TestPaymentFinalizerStopsOnContextCancel(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.WorkerFacadeStub{}
	fin := NewPaymentFinalizer(facade, 5*time.Millisecond, time.Minute, 1, 2, logger)

	ctx, cancel := context.WithCancel(context.Background())
	fin.Start(ctx)
	cancel()
	fin.Stop()
}
