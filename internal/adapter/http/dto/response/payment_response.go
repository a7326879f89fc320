package response

import (
	"linkpago/internal/domain/entities"
	"time"
)

const (
	MessagePaymentCreated   = "Link de pago creado correctamente"
	MessagePaymentCancelled = "Link cancelado y CVU bloqueado."
)

type CreatePaymentResponse struct {
	OrderID   string     `json:"orderId"`
	Message   string     `json:"message"`
	Alias     string     `json:"alias"`
	CVU       string     `json:"cvu"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

type PaymentOriginResponse struct {
	Holder  string `json:"titular"`
	Account string `json:"cvu"`
	TaxID   string `json:"cuit"`
	Bank    string `json:"banco"`
}

type PaymentInfoResponse struct {
	Alias      string                 `json:"alias"`
	CVU        string                 `json:"cvu"`
	CustomerID string                 `json:"customerId"`
	Holder     string                 `json:"titular,omitempty"`
	Origin     *PaymentOriginResponse `json:"origen,omitempty"`
	Blocked    bool                   `json:"bloqueado,omitempty"`
	ClosedAt   *time.Time             `json:"cerradoEn,omitempty"`
}

// PaymentResponse renders amounts as JSON numbers; the stored value stays exact.
type PaymentResponse struct {
	OrderID         string              `json:"orderId"`
	MerchantID      string              `json:"merchantId"`
	Amount          float64             `json:"amount"`
	Description     string              `json:"description,omitempty"`
	CustomerEmail   string              `json:"customerEmail,omitempty"`
	Status          string              `json:"status"`
	RejectionReason string              `json:"motivoRechazo,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	ExpiresAt       *time.Time          `json:"expiresAt,omitempty"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	PaymentInfo     PaymentInfoResponse `json:"paymentInfo"`
}

type CancelPaymentResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Payment PaymentResponse `json:"payment"`
}

type WebhookAckResponse struct {
	Status string `json:"status"`
}

func FromCreatedPayment(p entities.Payment) CreatePaymentResponse {
	return CreatePaymentResponse{
		OrderID:   p.OrderID,
		Message:   MessagePaymentCreated,
		Alias:     p.PaymentInfo.Alias,
		CVU:       p.PaymentInfo.CVU,
		ExpiresAt: p.ExpiresAt,
	}
}

func FromPayment(p entities.Payment) PaymentResponse {
	info := PaymentInfoResponse{
		Alias:      p.PaymentInfo.Alias,
		CVU:        p.PaymentInfo.CVU,
		CustomerID: p.PaymentInfo.CustomerID,
		Holder:     p.PaymentInfo.Holder,
	}
	if o := p.PaymentInfo.Origin; o != nil {
		info.Origin = &PaymentOriginResponse{Holder: o.Holder, Account: o.Account, TaxID: o.TaxID, Bank: o.Bank}
	}
	if c := p.PaymentInfo.Closure; c != nil {
		closedAt := c.ClosedAt
		info.Blocked = c.Blocked
		info.ClosedAt = &closedAt
	}

	return PaymentResponse{
		OrderID:         p.OrderID,
		MerchantID:      p.MerchantID,
		Amount:          p.Amount.InexactFloat64(),
		Description:     p.Description,
		CustomerEmail:   p.CustomerEmail,
		Status:          string(p.Status),
		RejectionReason: p.RejectionReason,
		CreatedAt:       p.CreatedAt,
		ExpiresAt:       p.ExpiresAt,
		UpdatedAt:       p.UpdatedAt,
		PaymentInfo:     info,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}

func FromCancelledPayment(p entities.Payment) CancelPaymentResponse {
	return CancelPaymentResponse{Success: true, Message: MessagePaymentCancelled, Payment: FromPayment(p)}
}
