package interfaces

import (
	"context"
	"linkpago/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Lookups return a zero Payment (empty OrderID) when nothing matches.
// Transition is the only way reconciliation, expiration and cancellation mutate a
// record: it applies next only while the stored status is one of from, and returns a
// zero Payment when the condition does not hold.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Payment, error)
	GetByAccountNumber(ctx context.Context, cvu string) (entities.Payment, error)
	ListByMerchantID(ctx context.Context, merchantID string) ([]entities.Payment, error)
	Transition(ctx context.Context, from []entities.PaymentStatus, next entities.Payment) (entities.Payment, error)
	Overwrite(ctx context.Context, p entities.Payment) (entities.Payment, error)
}
