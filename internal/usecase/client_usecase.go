package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina_ibs/internal/domain/entities"
	"oficina_ibs/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidClientData = errors.New("invalid client data")
)

type ClientDraft struct {
	Name    string
	Phone   string
	Email   string
	CPF     string
	Address string
}

type IClientUseCase interface {
	List(ctx context.Context) ([]entities.Client, error)
	Create(ctx context.Context, draft ClientDraft) (entities.Client, error)
	Update(ctx context.Context, id string, draft ClientDraft) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

func (u *ClientUseCase) Create(ctx context.Context, draft ClientDraft) (entities.Client, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" || strings.TrimSpace(draft.Phone) == "" {
		return entities.Client{}, ErrInvalidClientData
	}
	return u.repo.Create(ctx, entities.Client{
		ID:        uuid.NewString(),
		Name:      draft.Name,
		Phone:     draft.Phone,
		Email:     draft.Email,
		CPF:       draft.CPF,
		Address:   draft.Address,
		CreatedAt: time.Now().UTC(),
	})
}

func (u *ClientUseCase) Update(ctx context.Context, id string, draft ClientDraft) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" || strings.TrimSpace(draft.Phone) == "" {
		return entities.Client{}, ErrInvalidClientData
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if existing.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}

	updated, err := u.repo.Replace(ctx, entities.Client{
		ID:        existing.ID,
		Name:      draft.Name,
		Phone:     draft.Phone,
		Email:     draft.Email,
		CPF:       draft.CPF,
		Address:   draft.Address,
		CreatedAt: existing.CreatedAt,
	})
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrClientNotFound
	}
	return nil
}
