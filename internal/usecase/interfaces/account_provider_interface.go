package interfaces

import (
	"context"
	"linkpago/internal/domain/entities"
)

// IAccountProvider abstracts the collections provider (Cucuru).
//
// Credentials are passed on every call; each payment uses its merchant's keys.
// Only CreateAccount is fatal to the caller, the rest are best-effort side effects.
type IAccountProvider interface {
	CreateAccount(ctx context.Context, creds entities.ProviderCredentials, customerID string) (accountNumber string, err error)
	BindAlias(ctx context.Context, creds entities.ProviderCredentials, accountNumber, alias string) error
	SetAccountPolicy(ctx context.Context, creds entities.ProviderCredentials, accountNumber, customerID string, policy entities.AccountPolicy) error
	RejectCollection(ctx context.Context, creds entities.ProviderCredentials, collectionID, payerAccount, receivingAccount string) error
}
