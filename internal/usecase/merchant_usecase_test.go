package usecase

import (
	"context"
	"errors"
	"testing"

	"linkpago/internal/domain/entities"
	mock_interfaces "linkpago/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMerchantUseCase_Create(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc := NewMerchantUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Merchant{Name: "Tienda"})
		if !errors.Is(err, ErrInvalidMerchant) {
			t.Fatalf("expected ErrInvalidMerchant, got %v", err)
		}
		if err.Error() != "invalid merchant: missing cucuruApiKey, cucuruCollectorId, aliasPrefix" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	})

	t.Run("assigns id and default window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMerchantRepository(ctrl)
		uc := NewMerchantUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m entities.Merchant) (entities.Merchant, error) {
			return m, nil
		})

		in := testMerchant()
		in.ID = ""
		in.Name = "  Tienda Demo "
		got, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID == "" || got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
			t.Fatalf("expected generated id and timestamps, got %+v", got)
		}
		if got.Name != "Tienda Demo" {
			t.Fatalf("expected trimmed name, got %q", got.Name)
		}
		if got.DefaultExpiresInHours != entities.DefaultExpiresInHours {
			t.Fatalf("expected default window, got %v", got.DefaultExpiresInHours)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMerchantRepository(ctrl)
		uc := NewMerchantUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Merchant{}, errors.New("db"))

		if _, err := uc.Create(context.Background(), testMerchant()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestMerchantUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewMerchantUseCase(nil)
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrMissingMerchantID) {
			t.Fatalf("expected ErrMissingMerchantID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMerchantRepository(ctrl)
		uc := NewMerchantUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "m-9").Return(entities.Merchant{}, nil)

		if _, err := uc.GetByID(context.Background(), "m-9"); !errors.Is(err, ErrMerchantNotFound) {
			t.Fatalf("expected ErrMerchantNotFound, got %v", err)
		}
	})
}

func TestMerchantUseCase_Update(t *testing.T) {
	t.Run("applies patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMerchantRepository(ctrl)
		uc := NewMerchantUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(testMerchant(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m entities.Merchant) (entities.Merchant, error) {
			return m, nil
		})

		prefix := "nueva"
		hours := 4.0
		got, err := uc.Update(context.Background(), "m-1", MerchantPatch{AliasPrefix: &prefix, DefaultExpiresInHours: &hours})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.AliasPrefix != "nueva" || got.DefaultExpiresInHours != 4 || got.Name != "Tienda Demo" {
			t.Fatalf("unexpected merchant: %+v", got)
		}
	})

	t.Run("rejects clearing required field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMerchantRepository(ctrl)
		uc := NewMerchantUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(testMerchant(), nil)

		empty := " "
		if _, err := uc.Update(context.Background(), "m-1", MerchantPatch{CucuruAPIKey: &empty}); !errors.Is(err, ErrInvalidMerchant) {
			t.Fatalf("expected ErrInvalidMerchant, got %v", err)
		}
	})

	t.Run("rejects non positive window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMerchantRepository(ctrl)
		uc := NewMerchantUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(testMerchant(), nil)

		zero := 0.0
		if _, err := uc.Update(context.Background(), "m-1", MerchantPatch{DefaultExpiresInHours: &zero}); !errors.Is(err, ErrInvalidMerchant) {
			t.Fatalf("expected ErrInvalidMerchant, got %v", err)
		}
	})

	t.Run("vanished during update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMerchantRepository(ctrl)
		uc := NewMerchantUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(testMerchant(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Merchant{}, nil)

		notes := "vip"
		if _, err := uc.Update(context.Background(), "m-1", MerchantPatch{Notes: &notes}); !errors.Is(err, ErrMerchantNotFound) {
			t.Fatalf("expected ErrMerchantNotFound, got %v", err)
		}
	})
}
