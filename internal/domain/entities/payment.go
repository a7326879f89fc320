package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the lifecycle of a payment link.
//
// Edges:
//   - pendiente -> completado | expirado | cancelado | rechazado
//   - rechazado -> pendiente (automatic reversal) | cancelado (operator)
//   - expirado -> cancelado (operator)
//
// completado and cancelado are terminal.

type PaymentStatus string

const (
	PaymentStatusPendiente  PaymentStatus = "pendiente"
	PaymentStatusCompletado PaymentStatus = "completado"
	PaymentStatusExpirado   PaymentStatus = "expirado"
	PaymentStatusRechazado  PaymentStatus = "rechazado"
	PaymentStatusCancelado  PaymentStatus = "cancelado"
)

// AmountTolerance is the absolute difference accepted between expected and received amounts.
var AmountTolerance = decimal.New(1, -4)

var transitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPendiente: {PaymentStatusCompletado, PaymentStatusExpirado, PaymentStatusCancelado, PaymentStatusRechazado},
	PaymentStatusRechazado: {PaymentStatusPendiente, PaymentStatusCancelado},
	PaymentStatusExpirado:  {PaymentStatusCancelado},
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPendiente, PaymentStatusCompletado, PaymentStatusExpirado, PaymentStatusRechazado, PaymentStatusCancelado:
		return true
	}
	return false
}

// CanTransitionTo reports whether the state machine has an edge from s to target.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// SourcesOf returns every status that may move to target.
func SourcesOf(target PaymentStatus) []PaymentStatus {
	var out []PaymentStatus
	for _, from := range []PaymentStatus{PaymentStatusPendiente, PaymentStatusRechazado, PaymentStatusExpirado} {
		if from.CanTransitionTo(target) {
			out = append(out, from)
		}
	}
	return out
}

// Payment is an ephemeral bank-transfer link backed by a dedicated CVU.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - GSI cvu-index: cvu
//   - GSI merchant_id-index: merchant_id + created_at
//
// Amount is fixed at creation; reconciliation only touches Status, RejectionReason
// and PaymentInfo.Origin.

type Payment struct {
	OrderID         string          `json:"orderId"`
	MerchantID      string          `json:"merchantId"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	CustomerEmail   string          `json:"customerEmail,omitempty"`
	Status          PaymentStatus   `json:"status"`
	RejectionReason string          `json:"motivoRechazo,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	ExpiresAt       *time.Time      `json:"expiresAt,omitempty"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	PaymentInfo     PaymentInfo     `json:"paymentInfo"`
}

// PaymentInfo holds the external account metadata.
//
// Provisioning fields are always present. Origin is set once a matching transfer
// completes the payment; Closure once the account is closed by an operator.
type PaymentInfo struct {
	Alias      string          `json:"alias"`
	CVU        string          `json:"cvu"`
	CustomerID string          `json:"customerId"`
	Holder     string          `json:"titular,omitempty"`
	Origin     *PaymentOrigin  `json:"origen,omitempty"`
	Closure    *AccountClosure `json:"closure,omitempty"`
}

// PaymentOrigin is the payer identity declared by the provider on a collection.
type PaymentOrigin struct {
	Holder  string `json:"titular"`
	Account string `json:"cvu"`
	TaxID   string `json:"cuit"`
	Bank    string `json:"banco"`
}

type AccountClosure struct {
	Blocked  bool      `json:"bloqueado"`
	ClosedAt time.Time `json:"cerradoEn"`
}

// IsExpired reports whether a pending payment has passed its deadline at now.
func (p Payment) IsExpired(now time.Time) bool {
	if p.Status != PaymentStatusPendiente || p.ExpiresAt == nil {
		return false
	}
	return !now.Before(*p.ExpiresAt)
}

// AmountMatches compares received against the expected amount with AmountTolerance.
func (p Payment) AmountMatches(received decimal.Decimal) bool {
	return p.Amount.Sub(received).Abs().LessThanOrEqual(AmountTolerance)
}
