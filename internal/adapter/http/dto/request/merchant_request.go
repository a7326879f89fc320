package request

import (
	"linkpago/internal/domain/entities"
	"linkpago/internal/usecase"
)

// MerchantCreateRequest registers a merchant (client) and its Cucuru credentials.
type MerchantCreateRequest struct {
	Name                  string  `json:"name" binding:"required"`
	CucuruAPIKey          string  `json:"cucuruApiKey" binding:"required"`
	CucuruCollectorID     string  `json:"cucuruCollectorId" binding:"required"`
	AliasPrefix           string  `json:"aliasPrefix" binding:"required"`
	DefaultExpiresInHours float64 `json:"defaultExpiresInHours" binding:"gte=0"`
	ContactEmail          string  `json:"contactEmail" binding:"omitempty,email"`
	Notes                 string  `json:"notes"`
}

func (r MerchantCreateRequest) ToEntity() entities.Merchant {
	return entities.Merchant{
		Name:                  r.Name,
		CucuruAPIKey:          r.CucuruAPIKey,
		CucuruCollectorID:     r.CucuruCollectorID,
		AliasPrefix:           r.AliasPrefix,
		DefaultExpiresInHours: r.DefaultExpiresInHours,
		ContactEmail:          r.ContactEmail,
		Notes:                 r.Notes,
	}
}

// MerchantUpdateRequest is a partial update; absent fields are left untouched.
type MerchantUpdateRequest struct {
	Name                  *string  `json:"name"`
	CucuruAPIKey          *string  `json:"cucuruApiKey"`
	CucuruCollectorID     *string  `json:"cucuruCollectorId"`
	AliasPrefix           *string  `json:"aliasPrefix"`
	DefaultExpiresInHours *float64 `json:"defaultExpiresInHours"`
	ContactEmail          *string  `json:"contactEmail" binding:"omitempty,email"`
	Notes                 *string  `json:"notes"`
}

func (r MerchantUpdateRequest) ToPatch() usecase.MerchantPatch {
	return usecase.MerchantPatch{
		Name:                  r.Name,
		CucuruAPIKey:          r.CucuruAPIKey,
		CucuruCollectorID:     r.CucuruCollectorID,
		AliasPrefix:           r.AliasPrefix,
		DefaultExpiresInHours: r.DefaultExpiresInHours,
		ContactEmail:          r.ContactEmail,
		Notes:                 r.Notes,
	}
}
