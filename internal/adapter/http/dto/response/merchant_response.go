package response

import (
	"linkpago/internal/domain/entities"
	"strings"
	"time"
)

// MerchantResponse never carries the raw Cucuru api key.
type MerchantResponse struct {
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

func FromMerchant(m entities.Merchant) MerchantResponse {
	return MerchantResponse{
		ID:                    m.ID,
		Name:                  m.Name,
		CucuruAPIKey:          MaskSecret(m.CucuruAPIKey),
		CucuruCollectorID:     m.CucuruCollectorID,
		AliasPrefix:           m.AliasPrefix,
		DefaultExpiresInHours: m.DefaultExpiresInHours,
		ContactEmail:          m.ContactEmail,
		Notes:                 m.Notes,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func FromMerchants(ms []entities.Merchant) []MerchantResponse {
	out := make([]MerchantResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMerchant(m))
	}
	return out
}

// MaskSecret keeps the last four characters of secrets longer than eight.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
