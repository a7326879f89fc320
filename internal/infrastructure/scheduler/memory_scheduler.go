package scheduler

import (
	"context"
	"sort"
	"sync"
	"time"

	"linkpago/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// MemoryScheduler is the single-instance fallback used when no Redis is configured.
// Pending reversals are lost on restart.
type MemoryScheduler struct {
	mu           sync.Mutex
	due          map[string]time.Time
	pollInterval time.Duration
	now          func() time.Time
}

var _ interfaces.IReversalScheduler = (*MemoryScheduler)(nil)

func NewMemoryScheduler(pollInterval time.Duration) *MemoryScheduler {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	zap.S().Warnf("[scheduler] using in-memory reversals, pending jobs do not survive a restart")
	return &MemoryScheduler{due: map[string]time.Time{}, pollInterval: pollInterval, now: time.Now}
}

func (s *MemoryScheduler) Schedule(_ context.Context, orderID string, at time.Time) error {
	s.mu.Lock()
	s.due[orderID] = at
	s.mu.Unlock()
	zap.S().Infof("[scheduler][memory] scheduled order_id=%s at=%s", orderID, at.UTC().Format(time.RFC3339))
	return nil
}

func (s *MemoryScheduler) Cancel(_ context.Context, orderID string) error {
	s.mu.Lock()
	delete(s.due, orderID)
	s.mu.Unlock()
	return nil
}

func (s *MemoryScheduler) Run(ctx context.Context, handler interfaces.ReversalHandler) error {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		for _, orderID := range s.claimDue() {
			if err := handler(ctx, orderID); err != nil {
				zap.S().Errorf("[scheduler][memory] reversal failed order_id=%s err=%v", orderID, err)
				s.retry(orderID)
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// retry puts a failed job back one poll interval later. A Schedule that ran while
// the handler was busy wins.
func (s *MemoryScheduler) retry(orderID string) {
	at := s.now().Add(s.pollInterval)
	s.mu.Lock()
	if _, ok := s.due[orderID]; !ok {
		s.due[orderID] = at
	}
	s.mu.Unlock()
}

// Len reports the number of pending jobs.
func (s *MemoryScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.due)
}

// claimDue removes and returns the due jobs, oldest first.
func (s *MemoryScheduler) claimDue() []string {
	now := s.now()

	s.mu.Lock()
	type job struct {
		orderID string
		at      time.Time
	}
	var ready []job
	for id, at := range s.due {
		if !at.After(now) {
			ready = append(ready, job{id, at})
			delete(s.due, id)
		}
	}
	s.mu.Unlock()

	sort.Slice(ready, func(i, j int) bool { return ready[i].at.Before(ready[j].at) })
	ids := make([]string, len(ready))
	for i, j := range ready {
		ids[i] = j.orderID
	}
	return ids
}
