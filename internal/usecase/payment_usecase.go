package usecase

import (
	"context"
	"errors"
	"fmt"
	"linkpago/internal/domain/entities"
	"linkpago/internal/usecase/interfaces"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	orderIDAlphabet = "0123456789abcdef"
	orderIDLength   = 8

	defaultHolderName = "Cuenta Comercio LinkPago"

	// maxTransitionAttempts bounds the reload-and-retry loop of operator transitions.
	maxTransitionAttempts = 3
)

// CreatePaymentInput is the command accepted by Create.
type CreatePaymentInput struct {
	MerchantID     string
	Amount         decimal.Decimal
	Description    string
	CustomerEmail  string
	ExpiresInHours float64
}

// StatusOverride is the operator escape hatch applied by UpdateStatus.
// Non-empty PaymentInfo fields replace the stored ones.
type StatusOverride struct {
	Status      entities.PaymentStatus
	PaymentInfo *entities.PaymentInfo
}

// IPaymentUseCase is the lifecycle controller of payment links.
//
// Reads (GetByOrderID, ListByMerchantID) expire overdue pending payments inline
// before returning them.

type IPaymentUseCase interface {
	Create(ctx context.Context, in CreatePaymentInput) (entities.Payment, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Payment, error)
	ListByMerchantID(ctx context.Context, merchantID string) ([]entities.Payment, error)
	Cancel(ctx context.Context, orderID string) (entities.Payment, error)
	UpdateStatus(ctx context.Context, orderID string, override StatusOverride) (entities.Payment, error)
	RevertRejected(ctx context.Context, orderID string) error
}

type PaymentUseCase struct {
	repo         interfaces.IPaymentRepository
	merchantRepo interfaces.IMerchantRepository
	provider     interfaces.IAccountProvider
	scheduler    interfaces.IReversalScheduler

	now        func() time.Time
	newOrderID func() (string, error)
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, merchantRepo interfaces.IMerchantRepository, provider interfaces.IAccountProvider, scheduler interfaces.IReversalScheduler) *PaymentUseCase {
	return &PaymentUseCase{
		repo:         repo,
		merchantRepo: merchantRepo,
		provider:     provider,
		scheduler:    scheduler,
		now:          func() time.Time { return time.Now().UTC() },
		newOrderID: func() (string, error) {
			return gonanoid.Generate(orderIDAlphabet, orderIDLength)
		},
	}
}

func (u *PaymentUseCase) Create(ctx context.Context, in CreatePaymentInput) (entities.Payment, error) {
	merchantID := strings.TrimSpace(in.MerchantID)
	zap.S().Infof("[payment][usecase] create start merchant_id=%q amount=%s", merchantID, in.Amount)
	if merchantID == "" {
		return entities.Payment{}, ErrMissingMerchantID
	}
	if !in.Amount.IsPositive() {
		zap.S().Infof("[payment][usecase] invalid amount merchant_id=%s amount=%s", merchantID, in.Amount)
		return entities.Payment{}, ErrInvalidAmount
	}
	if u.provider == nil {
		return entities.Payment{}, errors.New("account provider not configured")
	}

	merchant, err := loadMerchant(ctx, u.merchantRepo, merchantID)
	if err != nil {
		zap.S().Infof("[payment][usecase] merchant lookup failed merchant_id=%s err=%v", merchantID, err)
		return entities.Payment{}, err
	}

	orderID, err := u.newOrderID()
	if err != nil {
		return entities.Payment{}, fmt.Errorf("generate order id: %w", err)
	}
	alias := fmt.Sprintf("%s.%s", merchant.AliasPrefix, orderID)
	customerID := entities.CustomerIDPrefix + orderID
	creds := merchant.Credentials()

	accountNumber, err := u.provider.CreateAccount(ctx, creds, customerID)
	if err == nil && strings.TrimSpace(accountNumber) == "" {
		err = errors.New("provider returned an empty account number")
	}
	if err != nil {
		zap.S().Errorf("[payment][usecase] account creation failed order_id=%s merchant_id=%s err=%v", orderID, merchantID, err)
		return entities.Payment{}, fmt.Errorf("%w: %v", ErrAccountCreationFailed, err)
	}
	zap.S().Infof("[payment][usecase] account created order_id=%s cvu=%s", orderID, accountNumber)

	if err := u.provider.BindAlias(ctx, creds, accountNumber, alias); err != nil {
		zap.S().Warnf("[payment][usecase] alias binding failed order_id=%s alias=%s err=%v", orderID, alias, err)
	}

	holder := merchant.Name
	if strings.TrimSpace(holder) == "" {
		holder = defaultHolderName
	}

	now := u.now()
	expiresAt := now.Add(merchant.ExpirationWindow(in.ExpiresInHours))
	p := entities.Payment{
		OrderID:       orderID,
		MerchantID:    merchant.ID,
		Amount:        in.Amount,
		Description:   in.Description,
		CustomerEmail: in.CustomerEmail,
		Status:        entities.PaymentStatusPendiente,
		CreatedAt:     now,
		ExpiresAt:     &expiresAt,
		UpdatedAt:     now,
		PaymentInfo: entities.PaymentInfo{
			Alias:      alias,
			CVU:        accountNumber,
			CustomerID: customerID,
			Holder:     holder,
		},
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		zap.S().Errorf("[payment][usecase] payment repository create failed order_id=%s cvu=%s err=%v", orderID, accountNumber, err)
		return entities.Payment{}, err
	}
	zap.S().Infof("[payment][usecase] create success order_id=%s merchant_id=%s alias=%s expires_at=%s", created.OrderID, created.MerchantID, alias, expiresAt.Format(time.RFC3339))
	return created, nil
}

func (u *PaymentUseCase) GetByOrderID(ctx context.Context, orderID string) (entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Payment{}, ErrInvalidOrderID
	}

	p, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.OrderID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if !p.IsExpired(u.now()) {
		return p, nil
	}

	var creds entities.ProviderCredentials
	if merchant, err := loadMerchant(ctx, u.merchantRepo, p.MerchantID); err != nil {
		zap.S().Warnf("[payment][sweeper] merchant lookup failed order_id=%s merchant_id=%s err=%v", p.OrderID, p.MerchantID, err)
	} else {
		creds = merchant.Credentials()
	}
	return u.expire(ctx, creds, p)
}

func (u *PaymentUseCase) ListByMerchantID(ctx context.Context, merchantID string) ([]entities.Payment, error) {
	merchantID = strings.TrimSpace(merchantID)
	if merchantID == "" {
		return nil, ErrMissingMerchantID
	}

	payments, err := u.repo.ListByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	var (
		creds  entities.ProviderCredentials
		loaded bool
	)
	for i, p := range payments {
		if !p.IsExpired(now) {
			continue
		}
		if !loaded {
			loaded = true
			if merchant, err := loadMerchant(ctx, u.merchantRepo, merchantID); err != nil {
				zap.S().Warnf("[payment][sweeper] merchant lookup failed merchant_id=%s err=%v", merchantID, err)
			} else {
				creds = merchant.Credentials()
			}
		}
		expired, err := u.expire(ctx, creds, p)
		if err != nil {
			return nil, err
		}
		payments[i] = expired
	}
	return payments, nil
}

// expire moves an overdue pending payment to expirado. The account is closed
// before the record is persisted; a lost race returns the stored record.
func (u *PaymentUseCase) expire(ctx context.Context, creds entities.ProviderCredentials, p entities.Payment) (entities.Payment, error) {
	now := u.now()
	next := p
	next.Status = entities.PaymentStatusExpirado
	next.UpdatedAt = now

	closeAccount(ctx, u.provider, creds, p, "expired")

	updated, err := u.repo.Transition(ctx, []entities.PaymentStatus{entities.PaymentStatusPendiente}, next)
	if err != nil {
		zap.S().Errorf("[payment][sweeper] persist expiration failed order_id=%s err=%v", p.OrderID, err)
		return entities.Payment{}, err
	}
	if updated.OrderID == "" {
		zap.S().Infof("[payment][sweeper] expiration superseded order_id=%s", p.OrderID)
		current, err := u.repo.GetByOrderID(ctx, p.OrderID)
		if err != nil {
			return entities.Payment{}, err
		}
		if current.OrderID == "" {
			return entities.Payment{}, ErrPaymentNotFound
		}
		return current, nil
	}
	zap.S().Infof("[payment][sweeper] expired order_id=%s expires_at=%s", p.OrderID, p.ExpiresAt.Format(time.RFC3339))
	return updated, nil
}

func (u *PaymentUseCase) Cancel(ctx context.Context, orderID string) (entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Payment{}, ErrInvalidOrderID
	}
	zap.S().Infof("[payment][usecase] cancel start order_id=%s", orderID)

	p, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.OrderID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	var creds entities.ProviderCredentials
	if merchant, err := loadMerchant(ctx, u.merchantRepo, p.MerchantID); err != nil {
		zap.S().Warnf("[payment][usecase] merchant lookup failed order_id=%s merchant_id=%s err=%v", orderID, p.MerchantID, err)
	} else {
		creds = merchant.Credentials()
	}

	closed := false
	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		switch p.Status {
		case entities.PaymentStatusCompletado:
			zap.S().Infof("[payment][usecase] cancel refused order_id=%s status=%s", orderID, p.Status)
			return entities.Payment{}, ErrPaymentAlreadyCompleted
		case entities.PaymentStatusCancelado:
			return p, nil
		}

		if !closed {
			closeAccount(ctx, u.provider, creds, p, "cancelled")
			closed = true
		}

		now := u.now()
		next := p
		next.Status = entities.PaymentStatusCancelado
		next.RejectionReason = ""
		next.UpdatedAt = now
		next.PaymentInfo.Closure = &entities.AccountClosure{Blocked: true, ClosedAt: now}

		updated, err := u.repo.Transition(ctx, entities.SourcesOf(entities.PaymentStatusCancelado), next)
		if err != nil {
			return entities.Payment{}, err
		}
		if updated.OrderID != "" {
			cancelReversal(ctx, u.scheduler, orderID)
			zap.S().Infof("[payment][usecase] cancel success order_id=%s", orderID)
			return updated, nil
		}

		if p, err = u.repo.GetByOrderID(ctx, orderID); err != nil {
			return entities.Payment{}, err
		}
		if p.OrderID == "" {
			return entities.Payment{}, ErrPaymentNotFound
		}
	}
	return entities.Payment{}, ErrPaymentStatusChanged
}

// UpdateStatus overwrites the status bypassing the state machine. Operators use it
// to correct records; it never calls the provider.
func (u *PaymentUseCase) UpdateStatus(ctx context.Context, orderID string, override StatusOverride) (entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Payment{}, ErrInvalidOrderID
	}
	if !override.Status.Valid() {
		return entities.Payment{}, ErrInvalidStatus
	}

	p, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.OrderID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	if !p.Status.CanTransitionTo(override.Status) && p.Status != override.Status {
		zap.S().Warnf("[payment][usecase] manual override outside state machine order_id=%s from=%s to=%s", orderID, p.Status, override.Status)
	}

	p.Status = override.Status
	if override.Status != entities.PaymentStatusRechazado {
		p.RejectionReason = ""
	}
	now := u.now()
	if info := override.PaymentInfo; info != nil {
		mergePaymentInfo(&p.PaymentInfo, *info)
		if cl := info.Closure; cl != nil && cl.Blocked && cl.ClosedAt.IsZero() {
			p.PaymentInfo.Closure = &entities.AccountClosure{Blocked: true, ClosedAt: now}
		}
	}
	p.UpdatedAt = now

	updated, err := u.repo.Overwrite(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}
	if override.Status != entities.PaymentStatusRechazado {
		cancelReversal(ctx, u.scheduler, orderID)
	}
	zap.S().Infof("[payment][usecase] status override order_id=%s status=%s", orderID, updated.Status)
	return updated, nil
}

func mergePaymentInfo(dst *entities.PaymentInfo, src entities.PaymentInfo) {
	if src.Alias != "" {
		dst.Alias = src.Alias
	}
	if src.CVU != "" {
		dst.CVU = src.CVU
	}
	if src.CustomerID != "" {
		dst.CustomerID = src.CustomerID
	}
	if src.Holder != "" {
		dst.Holder = src.Holder
	}
	if src.Origin != nil {
		dst.Origin = src.Origin
	}
	if src.Closure != nil {
		dst.Closure = src.Closure
	}
}

// RevertRejected reopens a rejected payment for another transfer attempt. It is the
// handler of the reversal scheduler and only acts while the payment is still rejected.
func (u *PaymentUseCase) RevertRejected(ctx context.Context, orderID string) error {
	p, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if p.OrderID == "" {
		zap.S().Warnf("[payment][reversal] payment not found order_id=%s", orderID)
		return nil
	}
	if p.Status != entities.PaymentStatusRechazado {
		zap.S().Infof("[payment][reversal] skipped order_id=%s status=%s", orderID, p.Status)
		return nil
	}

	next := p
	next.Status = entities.PaymentStatusPendiente
	next.RejectionReason = ""
	next.UpdatedAt = u.now()

	updated, err := u.repo.Transition(ctx, []entities.PaymentStatus{entities.PaymentStatusRechazado}, next)
	if err != nil {
		return err
	}
	if updated.OrderID == "" {
		zap.S().Infof("[payment][reversal] superseded order_id=%s", orderID)
		return nil
	}
	zap.S().Infof("[payment][reversal] reopened order_id=%s", orderID)
	return nil
}
