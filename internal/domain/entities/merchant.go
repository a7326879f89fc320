package entities

import "time"

// DefaultExpiresInHours is used when neither the request nor the merchant sets a window.
const DefaultExpiresInHours = 1

// Merchant (client) owns payments and the Cucuru credentials used for every
// account operation on them.
//
// Storage model (DynamoDB):
//   - PK: id

type Merchant struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	CucuruAPIKey          string    `json:"cucuruApiKey"`
	CucuruCollectorID     string    `json:"cucuruCollectorId"`
	AliasPrefix           string    `json:"aliasPrefix"`
	DefaultExpiresInHours float64   `json:"defaultExpiresInHours"`
	ContactEmail          string    `json:"contactEmail,omitempty"`
	Notes                 string    `json:"notes,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func (m Merchant) Credentials() ProviderCredentials {
	return ProviderCredentials{APIKey: m.CucuruAPIKey, CollectorID: m.CucuruCollectorID}
}

// ExpirationWindow resolves the link lifetime: request value, merchant default, then 1h.
func (m Merchant) ExpirationWindow(requestedHours float64) time.Duration {
	hours := requestedHours
	if hours <= 0 {
		hours = m.DefaultExpiresInHours
	}
	if hours <= 0 {
		hours = DefaultExpiresInHours
	}
	return time.Duration(hours * float64(time.Hour))
}

// ProviderCredentials authenticate calls against the collections provider.
type ProviderCredentials struct {
	APIKey      string
	CollectorID string
}

// AccountPolicy drives the read-only / on-received behaviour of a CVU.
type AccountPolicy struct {
	ReadOnly   bool
	OnReceived string
}

const (
	OnReceivedAccept = "accept"
	OnReceivedReject = "reject"
)

// ClosedAccountPolicy makes the account refuse any further transfer.
var ClosedAccountPolicy = AccountPolicy{ReadOnly: true, OnReceived: OnReceivedReject}
