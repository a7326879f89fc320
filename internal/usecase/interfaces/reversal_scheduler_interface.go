package interfaces

import (
	"context"
	"time"
)

// ReversalHandler runs when a scheduled reversal for orderID is due.
type ReversalHandler func(ctx context.Context, orderID string) error

// IReversalScheduler keeps delayed rejected->pending reversals keyed by order id.
//
// Scheduling an order id that already has a pending job replaces its due time.
type IReversalScheduler interface {
	Schedule(ctx context.Context, orderID string, at time.Time) error
	Cancel(ctx context.Context, orderID string) error
	Run(ctx context.Context, handler ReversalHandler) error
}
