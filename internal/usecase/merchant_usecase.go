package usecase

import (
	"context"
	"fmt"
	"linkpago/internal/domain/entities"
	"linkpago/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MerchantPatch carries a partial merchant update. Nil fields keep the stored value.
type MerchantPatch struct {
	Name                  *string
	CucuruAPIKey          *string
	CucuruCollectorID     *string
	AliasPrefix           *string
	DefaultExpiresInHours *float64
	ContactEmail          *string
	Notes                 *string
}

// IMerchantUseCase manages the merchants (clients) that own payment links.

type IMerchantUseCase interface {
	Create(ctx context.Context, merchant entities.Merchant) (entities.Merchant, error)
	GetByID(ctx context.Context, id string) (entities.Merchant, error)
	List(ctx context.Context) ([]entities.Merchant, error)
	Update(ctx context.Context, id string, patch MerchantPatch) (entities.Merchant, error)
}

type MerchantUseCase struct {
	repo interfaces.IMerchantRepository
}

var _ IMerchantUseCase = (*MerchantUseCase)(nil)

func NewMerchantUseCase(repo interfaces.IMerchantRepository) *MerchantUseCase {
	return &MerchantUseCase{repo: repo}
}

func (u *MerchantUseCase) Create(ctx context.Context, m entities.Merchant) (entities.Merchant, error) {
	m = trimMerchant(m)
	if err := validateMerchant(m); err != nil {
		return entities.Merchant{}, err
	}
	if m.DefaultExpiresInHours <= 0 {
		m.DefaultExpiresInHours = entities.DefaultExpiresInHours
	}

	now := time.Now().UTC()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now

	created, err := u.repo.Create(ctx, m)
	if err != nil {
		zap.S().Errorf("[merchant][usecase] create failed name=%q err=%v", m.Name, err)
		return entities.Merchant{}, err
	}
	zap.S().Infof("[merchant][usecase] created merchant_id=%s alias_prefix=%s", created.ID, created.AliasPrefix)
	return created, nil
}

func (u *MerchantUseCase) GetByID(ctx context.Context, id string) (entities.Merchant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Merchant{}, ErrMissingMerchantID
	}
	return loadMerchant(ctx, u.repo, id)
}

func (u *MerchantUseCase) List(ctx context.Context) ([]entities.Merchant, error) {
	return u.repo.List(ctx)
}

func (u *MerchantUseCase) Update(ctx context.Context, id string, patch MerchantPatch) (entities.Merchant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Merchant{}, ErrMissingMerchantID
	}

	m, err := loadMerchant(ctx, u.repo, id)
	if err != nil {
		return entities.Merchant{}, err
	}

	applyString(&m.Name, patch.Name)
	applyString(&m.CucuruAPIKey, patch.CucuruAPIKey)
	applyString(&m.CucuruCollectorID, patch.CucuruCollectorID)
	applyString(&m.AliasPrefix, patch.AliasPrefix)
	applyString(&m.ContactEmail, patch.ContactEmail)
	applyString(&m.Notes, patch.Notes)
	if patch.DefaultExpiresInHours != nil {
		if *patch.DefaultExpiresInHours <= 0 {
			return entities.Merchant{}, fmt.Errorf("%w: defaultExpiresInHours must be positive", ErrInvalidMerchant)
		}
		m.DefaultExpiresInHours = *patch.DefaultExpiresInHours
	}
	if err := validateMerchant(m); err != nil {
		return entities.Merchant{}, err
	}
	m.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		return entities.Merchant{}, err
	}
	if updated.ID == "" {
		return entities.Merchant{}, ErrMerchantNotFound
	}
	zap.S().Infof("[merchant][usecase] updated merchant_id=%s", updated.ID)
	return updated, nil
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func trimMerchant(m entities.Merchant) entities.Merchant {
	m.Name = strings.TrimSpace(m.Name)
	m.CucuruAPIKey = strings.TrimSpace(m.CucuruAPIKey)
	m.CucuruCollectorID = strings.TrimSpace(m.CucuruCollectorID)
	m.AliasPrefix = strings.TrimSpace(m.AliasPrefix)
	m.ContactEmail = strings.TrimSpace(m.ContactEmail)
	return m
}

func validateMerchant(m entities.Merchant) error {
	var missing []string
	if m.Name == "" {
		missing = append(missing, "name")
	}
	if m.CucuruAPIKey == "" {
		missing = append(missing, "cucuruApiKey")
	}
	if m.CucuruCollectorID == "" {
		missing = append(missing, "cucuruCollectorId")
	}
	if m.AliasPrefix == "" {
		missing = append(missing, "aliasPrefix")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidMerchant, strings.Join(missing, ", "))
	}
	return nil
}
