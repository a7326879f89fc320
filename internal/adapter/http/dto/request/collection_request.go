package request

import (
	"linkpago/internal/domain/entities"
	"strings"

	"github.com/shopspring/decimal"
)

// CollectionReceivedRequest is the body Cucuru posts on every incoming transfer.
type CollectionReceivedRequest struct {
	CollectionID      string          `json:"collection_id"`
	CollectionAccount string          `json:"collection_account"`
	CustomerID        string          `json:"customer_id"`
	CustomerAccount   string          `json:"customer_account"`
	Amount            decimal.Decimal `json:"amount"`
	CustomerName      string          `json:"customer_name"`
	CustomerTaxID     string          `json:"customer_tax_id"`
	CustomerBankName  string          `json:"customer_bank_name"`
}

func (r CollectionReceivedRequest) ToEntity() entities.Collection {
	return entities.Collection{
		CollectionID:      strings.TrimSpace(r.CollectionID),
		CollectionAccount: strings.TrimSpace(r.CollectionAccount),
		CustomerID:        strings.TrimSpace(r.CustomerID),
		CustomerAccount:   strings.TrimSpace(r.CustomerAccount),
		Amount:            r.Amount,
		CustomerName:      strings.TrimSpace(r.CustomerName),
		CustomerTaxID:     strings.TrimSpace(r.CustomerTaxID),
		CustomerBankName:  strings.TrimSpace(r.CustomerBankName),
	}
}
