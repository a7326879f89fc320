package request

import (
	"linkpago/internal/domain/entities"
	"linkpago/internal/usecase"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest is the payload of POST /v1/payments.
//
// Amount accepts a JSON number or a numeric string.
type CreatePaymentRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	CustomerEmail  string          `json:"customerEmail" binding:"omitempty,email"`
	ExpiresInHours float64         `json:"expiresInHours" binding:"gte=0"`
	MerchantID     string          `json:"merchantId"`
}

func (r CreatePaymentRequest) ToInput() usecase.CreatePaymentInput {
	return usecase.CreatePaymentInput{
		MerchantID:     strings.TrimSpace(r.MerchantID),
		Amount:         r.Amount,
		Description:    strings.TrimSpace(r.Description),
		CustomerEmail:  strings.TrimSpace(r.CustomerEmail),
		ExpiresInHours: r.ExpiresInHours,
	}
}

type PaymentOriginRequest struct {
	Holder  string `json:"titular"`
	Account string `json:"cvu"`
	TaxID   string `json:"cuit"`
	Bank    string `json:"banco"`
}

// PaymentClosureRequest overrides the account closure record. An omitted cerradoEn
// on a blocked account is stamped with the override time.
type PaymentClosureRequest struct {
	Blocked  bool       `json:"bloqueado"`
	ClosedAt *time.Time `json:"cerradoEn"`
}

type PaymentInfoRequest struct {
	Alias      string                 `json:"alias"`
	CVU        string                 `json:"cvu"`
	CustomerID string                 `json:"customerId"`
	Holder     string                 `json:"titular"`
	Origin     *PaymentOriginRequest  `json:"origen"`
	Closure    *PaymentClosureRequest `json:"closure"`
}

// UpdateStatusRequest is the operator override of PATCH /v1/payments/:orderId/status.
type UpdateStatusRequest struct {
	Status      string              `json:"status" binding:"required,payment_status"`
	PaymentInfo *PaymentInfoRequest `json:"paymentInfo"`
}

func (r UpdateStatusRequest) ToOverride() usecase.StatusOverride {
	override := usecase.StatusOverride{Status: entities.PaymentStatus(strings.TrimSpace(r.Status))}
	if info := r.PaymentInfo; info != nil {
		pi := &entities.PaymentInfo{
			Alias:      info.Alias,
			CVU:        info.CVU,
			CustomerID: info.CustomerID,
			Holder:     info.Holder,
		}
		if o := info.Origin; o != nil {
			pi.Origin = &entities.PaymentOrigin{Holder: o.Holder, Account: o.Account, TaxID: o.TaxID, Bank: o.Bank}
		}
		if cl := info.Closure; cl != nil {
			pi.Closure = &entities.AccountClosure{Blocked: cl.Blocked}
			if cl.ClosedAt != nil {
				pi.Closure.ClosedAt = cl.ClosedAt.UTC()
			}
		}
		override.PaymentInfo = pi
	}
	return override
}
