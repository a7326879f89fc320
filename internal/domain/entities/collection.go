package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CustomerIDPrefix namespaces the provider customer id of every payment account.
const CustomerIDPrefix = "cliente-"

// Collection is an incoming transfer notified by the provider.
type Collection struct {
	CollectionID      string
	CollectionAccount string
	CustomerID        string
	CustomerAccount   string
	Amount            decimal.Decimal
	CustomerName      string
	CustomerTaxID     string
	CustomerBankName  string
}

// OrderID derives the payment handle from the provider customer id.
func (c Collection) OrderID() string {
	return strings.TrimPrefix(strings.TrimSpace(c.CustomerID), CustomerIDPrefix)
}

// IsValidationPing reports the zero-amount events the provider sends when a webhook is registered.
func (c Collection) IsValidationPing() bool {
	return c.Amount.IsZero()
}

func (c Collection) Origin() *PaymentOrigin {
	bank := strings.TrimSpace(c.CustomerBankName)
	if bank == "" {
		bank = "Desconocido"
	}
	return &PaymentOrigin{
		Holder:  c.CustomerName,
		Account: c.CustomerAccount,
		TaxID:   c.CustomerTaxID,
		Bank:    bank,
	}
}
