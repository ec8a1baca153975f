package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// PaymentFacade exposes the subset of application functionality required by the worker.
type PaymentFacade interface {
	StuckPayments(ctx context.Context, olderThan time.Duration, limit int) ([]model.Payment, error)
	ResolvePayment(ctx context.Context, payment model.Payment) error
}

// PaymentFinalizer polls for payment attempts abandoned mid-verification and
// resolves them through the gateway concurrently.
type PaymentFinalizer struct {
	facade       PaymentFacade
	pollInterval time.Duration
	stuckAge     time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Payment
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPaymentFinalizer constructs the finalizer worker pool.
func NewPaymentFinalizer(facade PaymentFacade, pollInterval, stuckAge time.Duration, batchSize, workers int, logger *slog.Logger) *PaymentFinalizer {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &PaymentFinalizer{
		facade:       facade,
		pollInterval: pollInterval,
		stuckAge:     stuckAge,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Payment, batchSize*workers),
	}
}

// Start launches background processing.
func (p *PaymentFinalizer) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *PaymentFinalizer) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *PaymentFinalizer) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *PaymentFinalizer) fetchAndDispatch(ctx context.Context) {
	payments, err := p.facade.StuckPayments(ctx, p.stuckAge, p.batchSize)
	if err != nil {
		p.logger.Error("fetch stuck payments failed", slog.String("error", err.Error()))
		return
	}
	for _, payment := range payments {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- payment:
		}
	}
}

func (p *PaymentFinalizer) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case payment, ok := <-p.jobs:
			if !ok {
				return
			}
			if err := p.facade.ResolvePayment(ctx, payment); err != nil {
				p.logger.Error("resolve payment failed",
					slog.String("transaction_id", payment.TransactionID),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
