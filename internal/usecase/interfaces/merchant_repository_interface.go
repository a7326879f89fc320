package interfaces

import (
	"context"
	"linkpago/internal/domain/entities"
)

// IMerchantRepository abstracts DynamoDB persistence for Merchant (client) records.

type IMerchantRepository interface {
	Create(ctx context.Context, merchant entities.Merchant) (entities.Merchant, error)
	GetByID(ctx context.Context, id string) (entities.Merchant, error)
	List(ctx context.Context) ([]entities.Merchant, error)
	Update(ctx context.Context, merchant entities.Merchant) (entities.Merchant, error)
}
