package gateway

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// Success probabilities of the simulated provider per payment method.
const (
	upiSuccessRate     = 0.85
	cardSuccessRate    = 0.80
	defaultSuccessRate = 0.75
)

// demoOTPs is the allow-list accepted by the card flow.
var demoOTPs = map[string]struct{}{
	"123456": {},
	"000000": {},
	"111111": {},
}

// SimulatedOptions tunes the simulated gateway.
type SimulatedOptions struct {
	MinDelay time.Duration
	MaxDelay time.Duration
	// Rand overrides the outcome source, letting tests pin the draw.
	Rand *rand.Rand
}

// Simulated stands in for a real payment provider. Transaction ids containing
// FAIL or PENDING force the matching outcome, everything else is drawn from a
// per-method Bernoulli distribution after an artificial delay.
type Simulated struct {
	minDelay time.Duration
	maxDelay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulated constructs the simulated gateway.
func NewSimulated(opts SimulatedOptions) *Simulated {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	minDelay := opts.MinDelay
	if minDelay < 0 {
		minDelay = 0
	}
	maxDelay := opts.MaxDelay
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &Simulated{minDelay: minDelay, maxDelay: maxDelay, rng: rng}
}

// Submit resolves the verification attempt after the simulated latency.
func (g *Simulated) Submit(ctx context.Context, req Request) (*Result, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}

	outcome := g.resolve(req)
	return &Result{
		TransactionID: req.TransactionID,
		Outcome:       outcome,
		Message:       message(outcome, req.Method),
	}, nil
}

func (g *Simulated) resolve(req Request) Outcome {
	id := strings.ToUpper(req.TransactionID)
	if strings.Contains(id, "FAIL") {
		return OutcomeFailed
	}
	if strings.Contains(id, "PENDING") {
		return OutcomePending
	}

	if req.Method == model.PaymentMethodCard && req.OTP != "" {
		if _, ok := demoOTPs[req.OTP]; !ok {
			return OutcomeFailed
		}
	}

	if g.draw() < successRate(req.Method) {
		return OutcomeVerified
	}
	return OutcomeFailed
}

func (g *Simulated) draw() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

func (g *Simulated) wait(ctx context.Context) error {
	delay := g.minDelay
	if span := g.maxDelay - g.minDelay; span > 0 {
		g.mu.Lock()
		delay += time.Duration(g.rng.Int63n(int64(span) + 1))
		g.mu.Unlock()
	}
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func successRate(method model.PaymentMethod) float64 {
	switch method {
	case model.PaymentMethodUPI:
		return upiSuccessRate
	case model.PaymentMethodCard:
		return cardSuccessRate
	default:
		return defaultSuccessRate
	}
}

func message(outcome Outcome, method model.PaymentMethod) string {
	switch outcome {
	case OutcomeVerified:
		return "payment verified"
	case OutcomePending:
		if method == model.PaymentMethodUPI {
			return "awaiting UPI confirmation"
		}
		return "awaiting bank confirmation"
	default:
		return "payment declined"
	}
}
