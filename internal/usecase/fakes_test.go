package usecase

import (
	"context"
	"fmt"
	"linkpago/internal/domain/entities"
	"linkpago/internal/usecase/interfaces"
	"sort"
	"sync"
	"time"
)

// memPaymentRepo is an in-memory IPaymentRepository that honours the Transition
// condition the same way the DynamoDB conditional update does.
type memPaymentRepo struct {
	mu       sync.Mutex
	payments map[string]entities.Payment
	edges    [][2]entities.PaymentStatus
}

func newMemPaymentRepo() *memPaymentRepo {
	return &memPaymentRepo{payments: map[string]entities.Payment{}}
}

func (r *memPaymentRepo) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[p.OrderID] = p
	return p, nil
}

func (r *memPaymentRepo) GetByOrderID(_ context.Context, orderID string) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.payments[orderID], nil
}

func (r *memPaymentRepo) GetByAccountNumber(_ context.Context, cvu string) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payments {
		if p.PaymentInfo.CVU == cvu {
			return p, nil
		}
	}
	return entities.Payment{}, nil
}

func (r *memPaymentRepo) ListByMerchantID(_ context.Context, merchantID string) ([]entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Payment
	for _, p := range r.payments {
		if p.MerchantID == merchantID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memPaymentRepo) Transition(_ context.Context, from []entities.PaymentStatus, next entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.payments[next.OrderID]
	if !ok {
		return entities.Payment{}, nil
	}
	for _, s := range from {
		if current.Status == s {
			r.edges = append(r.edges, [2]entities.PaymentStatus{current.Status, next.Status})
			r.payments[next.OrderID] = next
			return next, nil
		}
	}
	return entities.Payment{}, nil
}

func (r *memPaymentRepo) Overwrite(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[p.OrderID] = p
	return p, nil
}

func (r *memPaymentRepo) status(orderID string) entities.PaymentStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.payments[orderID].Status
}

type memMerchantRepo struct {
	merchants map[string]entities.Merchant
}

func (r *memMerchantRepo) Create(_ context.Context, m entities.Merchant) (entities.Merchant, error) {
	r.merchants[m.ID] = m
	return m, nil
}

func (r *memMerchantRepo) GetByID(_ context.Context, id string) (entities.Merchant, error) {
	return r.merchants[id], nil
}

func (r *memMerchantRepo) List(_ context.Context) ([]entities.Merchant, error) {
	var out []entities.Merchant
	for _, m := range r.merchants {
		out = append(out, m)
	}
	return out, nil
}

func (r *memMerchantRepo) Update(_ context.Context, m entities.Merchant) (entities.Merchant, error) {
	if _, ok := r.merchants[m.ID]; !ok {
		return entities.Merchant{}, nil
	}
	r.merchants[m.ID] = m
	return m, nil
}

// countingProvider records provider side effects.
type countingProvider struct {
	mu       sync.Mutex
	next     int
	closes   map[string]int
	rejected []string
}

func newCountingProvider() *countingProvider {
	return &countingProvider{closes: map[string]int{}}
}

func (p *countingProvider) CreateAccount(_ context.Context, _ entities.ProviderCredentials, _ string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.next++
	return fmt.Sprintf("%022d", p.next), nil
}

func (p *countingProvider) BindAlias(context.Context, entities.ProviderCredentials, string, string) error {
	return nil
}

func (p *countingProvider) SetAccountPolicy(_ context.Context, _ entities.ProviderCredentials, accountNumber, _ string, _ entities.AccountPolicy) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closes[accountNumber]++
	return nil
}

func (p *countingProvider) RejectCollection(_ context.Context, _ entities.ProviderCredentials, collectionID, _, _ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rejected = append(p.rejected, collectionID)
	return nil
}

func (p *countingProvider) closeCount(cvu string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closes[cvu]
}

func (p *countingProvider) rejectCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.rejected)
}

// manualScheduler keeps due times and fires them when the test advances its clock.
type manualScheduler struct {
	mu   sync.Mutex
	jobs map[string]time.Time
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{jobs: map[string]time.Time{}}
}

func (s *manualScheduler) Schedule(_ context.Context, orderID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[orderID] = at
	return nil
}

func (s *manualScheduler) Cancel(_ context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.jobs, orderID)
	return nil
}

func (s *manualScheduler) Run(ctx context.Context, _ interfaces.ReversalHandler) error {
	<-ctx.Done()
	return nil
}

func (s *manualScheduler) fireDue(ctx context.Context, now time.Time, handler interfaces.ReversalHandler) int {
	s.mu.Lock()
	var due []string
	for id, at := range s.jobs {
		if !now.Before(at) {
			due = append(due, id)
			delete(s.jobs, id)
		}
	}
	s.mu.Unlock()
	for _, id := range due {
		_ = handler(ctx, id)
	}
	return len(due)
}

func (s *manualScheduler) pending(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.jobs[orderID]
	return ok
}

// clock is a settable time source shared by the use cases under test.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
