package usecase

import (
	"context"

	"oficina_ibs/internal/domain/entities"
	"oficina_ibs/internal/usecase/interfaces"
)

// SettingsPatch is a partial update; empty fields keep their stored value.
type SettingsPatch struct {
	WorkshopName string
	WhatsApp     string
	Email        string
	EmailAPIKey  string
	Address      string
}

// ISettingsUseCase manages the settings singleton, creating it lazily with
// defaults on first read.
type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.Settings, error)
	Update(ctx context.Context, patch SettingsPatch) (entities.Settings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.Settings, error) {
	s, err := u.repo.Get(ctx)
	if err != nil {
		return entities.Settings{}, err
	}
	if s.ID == "" {
		return u.repo.Put(ctx, entities.DefaultSettings())
	}
	return s, nil
}

func (u *SettingsUseCase) Update(ctx context.Context, patch SettingsPatch) (entities.Settings, error) {
	s, err := u.Get(ctx)
	if err != nil {
		return entities.Settings{}, err
	}

	if patch.WorkshopName != "" {
		s.WorkshopName = patch.WorkshopName
	}
	if patch.WhatsApp != "" {
		s.WhatsApp = patch.WhatsApp
	}
	if patch.Email != "" {
		s.Email = patch.Email
	}
	if patch.EmailAPIKey != "" {
		s.EmailAPIKey = patch.EmailAPIKey
	}
	if patch.Address != "" {
		s.Address = patch.Address
	}

	return u.repo.Put(ctx, s)
}
