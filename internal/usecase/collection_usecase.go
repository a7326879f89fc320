package usecase

import (
	"context"
	"fmt"
	"linkpago/internal/domain/entities"
	"linkpago/internal/usecase/interfaces"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultReversalDelay is how long a rejected payment waits before reopening.
const DefaultReversalDelay = 10 * time.Second

// CollectionOutcome describes what reconciliation did with a collection event.
type CollectionOutcome string

const (
	CollectionIgnored    CollectionOutcome = "ignored"
	CollectionUnmatched  CollectionOutcome = "unmatched"
	CollectionCompleted  CollectionOutcome = "completed"
	CollectionRejected   CollectionOutcome = "rejected"
	CollectionReturned   CollectionOutcome = "returned"
	CollectionSuperseded CollectionOutcome = "superseded"
)

// ICollectionUseCase reconciles provider collection notifications against payments.
type ICollectionUseCase interface {
	HandleCollection(ctx context.Context, c entities.Collection) (CollectionOutcome, error)
}

type CollectionUseCase struct {
	repo          interfaces.IPaymentRepository
	merchantRepo  interfaces.IMerchantRepository
	provider      interfaces.IAccountProvider
	scheduler     interfaces.IReversalScheduler
	reversalDelay time.Duration

	now func() time.Time
}

var _ ICollectionUseCase = (*CollectionUseCase)(nil)

func NewCollectionUseCase(repo interfaces.IPaymentRepository, merchantRepo interfaces.IMerchantRepository, provider interfaces.IAccountProvider, scheduler interfaces.IReversalScheduler, reversalDelay time.Duration) *CollectionUseCase {
	if reversalDelay <= 0 {
		reversalDelay = DefaultReversalDelay
	}
	return &CollectionUseCase{
		repo:          repo,
		merchantRepo:  merchantRepo,
		provider:      provider,
		scheduler:     scheduler,
		reversalDelay: reversalDelay,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (u *CollectionUseCase) HandleCollection(ctx context.Context, c entities.Collection) (CollectionOutcome, error) {
	zap.S().Infof("[payment][collection] received collection_id=%s collection_account=%s customer_id=%s amount=%s",
		c.CollectionID, c.CollectionAccount, c.CustomerID, c.Amount)

	if c.IsValidationPing() {
		zap.S().Infof("[payment][collection] validation ping discarded collection_id=%s", c.CollectionID)
		return CollectionIgnored, nil
	}

	p, err := u.match(ctx, c)
	if err != nil {
		return CollectionIgnored, err
	}
	if p.OrderID == "" {
		zap.S().Infof("[payment][collection] no matching payment collection_id=%s", c.CollectionID)
		return CollectionUnmatched, nil
	}

	merchant, err := loadMerchant(ctx, u.merchantRepo, p.MerchantID)
	if err != nil {
		zap.S().Errorf("[payment][collection] merchant lookup failed order_id=%s merchant_id=%s err=%v", p.OrderID, p.MerchantID, err)
		return CollectionIgnored, err
	}
	creds := merchant.Credentials()
	now := u.now()

	switch p.Status {
	case entities.PaymentStatusPendiente:
	case entities.PaymentStatusRechazado:
		zap.S().Infof("[payment][collection] payment inside retry window, returning funds order_id=%s collection_id=%s", p.OrderID, c.CollectionID)
		u.rejectCollection(ctx, creds, p, c)
		return CollectionReturned, nil
	default:
		zap.S().Infof("[payment][collection] payment not pending, discarded order_id=%s status=%s collection_id=%s", p.OrderID, p.Status, c.CollectionID)
		return CollectionIgnored, nil
	}

	if !p.AmountMatches(c.Amount) {
		return u.reject(ctx, creds, p, c, now)
	}
	return u.complete(ctx, creds, p, c, now)
}

// match finds the payment by receiving account, falling back to the order id
// embedded in the provider customer id.
func (u *CollectionUseCase) match(ctx context.Context, c entities.Collection) (entities.Payment, error) {
	if account := strings.TrimSpace(c.CollectionAccount); account != "" {
		p, err := u.repo.GetByAccountNumber(ctx, account)
		if err != nil {
			return entities.Payment{}, err
		}
		if p.OrderID != "" {
			return p, nil
		}
	}
	if orderID := c.OrderID(); orderID != "" {
		return u.repo.GetByOrderID(ctx, orderID)
	}
	return entities.Payment{}, nil
}

func (u *CollectionUseCase) reject(ctx context.Context, creds entities.ProviderCredentials, p entities.Payment, c entities.Collection, now time.Time) (CollectionOutcome, error) {
	next := p
	next.Status = entities.PaymentStatusRechazado
	next.RejectionReason = fmt.Sprintf("Monto incorrecto: esperado %s, recibido %s", p.Amount.String(), c.Amount.String())
	next.UpdatedAt = now

	updated, persistErr := u.repo.Transition(ctx, []entities.PaymentStatus{entities.PaymentStatusPendiente}, next)
	if persistErr != nil {
		zap.S().Errorf("[payment][collection] persist rejection failed order_id=%s err=%v", p.OrderID, persistErr)
	}

	// The mismatched funds go back whether or not this delivery won the transition.
	u.rejectCollection(ctx, creds, p, c)

	if persistErr != nil {
		return CollectionRejected, persistErr
	}
	if updated.OrderID == "" {
		zap.S().Infof("[payment][collection] rejection superseded order_id=%s collection_id=%s", p.OrderID, c.CollectionID)
		return CollectionSuperseded, nil
	}

	if u.scheduler != nil {
		at := now.Add(u.reversalDelay)
		if err := u.scheduler.Schedule(ctx, p.OrderID, at); err != nil {
			zap.S().Errorf("[payment][collection] schedule reversal failed order_id=%s err=%v", p.OrderID, err)
		}
	}
	zap.S().Infof("[payment][collection] rejected order_id=%s reason=%q", p.OrderID, next.RejectionReason)
	return CollectionRejected, nil
}

func (u *CollectionUseCase) complete(ctx context.Context, creds entities.ProviderCredentials, p entities.Payment, c entities.Collection, now time.Time) (CollectionOutcome, error) {
	next := p
	next.Status = entities.PaymentStatusCompletado
	next.RejectionReason = ""
	next.UpdatedAt = now
	next.PaymentInfo.Origin = c.Origin()

	updated, err := u.repo.Transition(ctx, []entities.PaymentStatus{entities.PaymentStatusPendiente}, next)
	if err != nil {
		zap.S().Errorf("[payment][collection] persist completion failed order_id=%s err=%v", p.OrderID, err)
		return CollectionIgnored, err
	}
	if updated.OrderID == "" {
		zap.S().Infof("[payment][collection] completion superseded order_id=%s collection_id=%s", p.OrderID, c.CollectionID)
		return CollectionSuperseded, nil
	}

	closeAccount(ctx, u.provider, creds, updated, "completed")
	cancelReversal(ctx, u.scheduler, p.OrderID)
	zap.S().Infof("[payment][collection] completed order_id=%s collection_id=%s payer=%q", p.OrderID, c.CollectionID, c.CustomerName)
	return CollectionCompleted, nil
}

func (u *CollectionUseCase) rejectCollection(ctx context.Context, creds entities.ProviderCredentials, p entities.Payment, c entities.Collection) {
	if u.provider == nil {
		return
	}
	receiving := c.CollectionAccount
	if receiving == "" {
		receiving = p.PaymentInfo.CVU
	}
	if err := u.provider.RejectCollection(ctx, creds, c.CollectionID, c.CustomerAccount, receiving); err != nil {
		zap.S().Warnf("[payment][collection] reject collection failed order_id=%s collection_id=%s err=%v", p.OrderID, c.CollectionID, err)
	}
}
