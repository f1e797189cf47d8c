package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_ibs/internal/domain/entities"
	mock_interfaces "oficina_ibs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSettingsUseCase_Get(t *testing.T) {
	t.Run("creates defaults on first read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(entities.Settings{}, nil)
		repo.EXPECT().Put(gomock.Any(), entities.DefaultSettings()).Return(entities.DefaultSettings(), nil)

		got, err := uc.Get(context.Background())
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.WorkshopName != "IBS Auto Center" {
			t.Errorf("WorkshopName = %q, want default", got.WorkshopName)
		}
	})

	t.Run("returns the stored record on later reads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		stored := entities.Settings{ID: entities.SettingsID, WorkshopName: "Oficina do Zé"}
		repo.EXPECT().Get(gomock.Any()).Return(stored, nil)

		got, err := uc.Get(context.Background())
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != stored {
			t.Errorf("Get() = %+v, want stored record", got)
		}
	})

	t.Run("storage errors propagate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(entities.Settings{}, errors.New("db"))

		if _, err := uc.Get(context.Background()); err == nil {
			t.Fatal("Get() expected error")
		}
	})
}

func TestSettingsUseCase_Update(t *testing.T) {
	t.Run("empty patch fields keep stored values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		stored := entities.Settings{
			ID:           entities.SettingsID,
			WorkshopName: "Oficina do Zé",
			WhatsApp:     "+55 11 99999-0000",
			Email:        "ze@example.com",
		}
		repo.EXPECT().Get(gomock.Any()).Return(stored, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Settings) (entities.Settings, error) {
				if s.WorkshopName != "Oficina Nova" {
					t.Errorf("WorkshopName = %q, want patched value", s.WorkshopName)
				}
				if s.WhatsApp != stored.WhatsApp || s.Email != stored.Email {
					t.Errorf("untouched fields changed: %+v", s)
				}
				return s, nil
			})

		_, err := uc.Update(context.Background(), SettingsPatch{WorkshopName: "Oficina Nova"})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	})

	t.Run("update on a fresh install seeds defaults first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(entities.Settings{}, nil)
		repo.EXPECT().Put(gomock.Any(), entities.DefaultSettings()).Return(entities.DefaultSettings(), nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Settings) (entities.Settings, error) {
				if s.Address != "Rua A, 1" {
					t.Errorf("Address = %q, want patched value", s.Address)
				}
				return s, nil
			})

		if _, err := uc.Update(context.Background(), SettingsPatch{Address: "Rua A, 1"}); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	})
}
