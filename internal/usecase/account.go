package usecase

import (
	"context"
	"linkpago/internal/domain/entities"
	"linkpago/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// closeAccount makes the payment CVU read-only and reject-on-receive.
// Failures are logged; the internal record stays the source of truth.
func closeAccount(ctx context.Context, provider interfaces.IAccountProvider, creds entities.ProviderCredentials, p entities.Payment, reason string) {
	if provider == nil || p.PaymentInfo.CVU == "" {
		zap.S().Warnf("[payment][account] close skipped order_id=%s reason=%s cvu=%q", p.OrderID, reason, p.PaymentInfo.CVU)
		return
	}
	if err := provider.SetAccountPolicy(ctx, creds, p.PaymentInfo.CVU, p.PaymentInfo.CustomerID, entities.ClosedAccountPolicy); err != nil {
		zap.S().Warnf("[payment][account] close failed order_id=%s cvu=%s reason=%s err=%v", p.OrderID, p.PaymentInfo.CVU, reason, err)
		return
	}
	zap.S().Infof("[payment][account] closed order_id=%s cvu=%s reason=%s", p.OrderID, p.PaymentInfo.CVU, reason)
}

func cancelReversal(ctx context.Context, scheduler interfaces.IReversalScheduler, orderID string) {
	if scheduler == nil {
		return
	}
	if err := scheduler.Cancel(ctx, orderID); err != nil {
		zap.S().Warnf("[payment][reversal] cancel failed order_id=%s err=%v", orderID, err)
	}
}

func loadMerchant(ctx context.Context, repo interfaces.IMerchantRepository, merchantID string) (entities.Merchant, error) {
	if repo == nil {
		return entities.Merchant{}, ErrMerchantNotFound
	}
	m, err := repo.GetByID(ctx, merchantID)
	if err != nil {
		return entities.Merchant{}, err
	}
	if m.ID == "" {
		return entities.Merchant{}, ErrMerchantNotFound
	}
	return m, nil
}
