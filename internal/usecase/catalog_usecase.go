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
	ErrServiceNotFound    = errors.New("service not found")
	ErrInvalidServiceID   = errors.New("invalid service id")
	ErrInvalidServiceData = errors.New("invalid service data")
	ErrPartNotFound       = errors.New("part not found")
	ErrInvalidPartID      = errors.New("invalid part id")
	ErrInvalidPartData    = errors.New("invalid part data")
)

type ServiceDraft struct {
	Name         string
	Description  string
	DefaultPrice float64
}

type PartDraft struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}

type ICatalogUseCase interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	CreateService(ctx context.Context, draft ServiceDraft) (entities.Service, error)
	UpdateService(ctx context.Context, id string, draft ServiceDraft) (entities.Service, error)
	DeleteService(ctx context.Context, id string) error

	ListParts(ctx context.Context) ([]entities.Part, error)
	CreatePart(ctx context.Context, draft PartDraft) (entities.Part, error)
	UpdatePart(ctx context.Context, id string, draft PartDraft) (entities.Part, error)
	DeletePart(ctx context.Context, id string) error
}

// CatalogUseCase covers the two priced catalogs quotes draw line items from.
type CatalogUseCase struct {
	services interfaces.IServiceRepository
	parts    interfaces.IPartRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(services interfaces.IServiceRepository, parts interfaces.IPartRepository) *CatalogUseCase {
	return &CatalogUseCase{services: services, parts: parts}
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	return u.services.List(ctx)
}

func (u *CatalogUseCase) CreateService(ctx context.Context, draft ServiceDraft) (entities.Service, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" || draft.DefaultPrice < 0 {
		return entities.Service{}, ErrInvalidServiceData
	}
	return u.services.Create(ctx, entities.Service{
		ID:           uuid.NewString(),
		Name:         draft.Name,
		Description:  draft.Description,
		DefaultPrice: draft.DefaultPrice,
		CreatedAt:    time.Now().UTC(),
	})
}

func (u *CatalogUseCase) UpdateService(ctx context.Context, id string, draft ServiceDraft) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" || draft.DefaultPrice < 0 {
		return entities.Service{}, ErrInvalidServiceData
	}

	existing, err := u.services.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if existing.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	updated, err := u.services.Replace(ctx, entities.Service{
		ID:           existing.ID,
		Name:         draft.Name,
		Description:  draft.Description,
		DefaultPrice: draft.DefaultPrice,
		CreatedAt:    existing.CreatedAt,
	})
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeleteService(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}
	found, err := u.services.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrServiceNotFound
	}
	return nil
}

func (u *CatalogUseCase) ListParts(ctx context.Context) ([]entities.Part, error) {
	return u.parts.List(ctx)
}

func (u *CatalogUseCase) CreatePart(ctx context.Context, draft PartDraft) (entities.Part, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" || draft.Price < 0 || draft.Stock < 0 {
		return entities.Part{}, ErrInvalidPartData
	}
	return u.parts.Create(ctx, entities.Part{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Stock:       draft.Stock,
		CreatedAt:   time.Now().UTC(),
	})
}

func (u *CatalogUseCase) UpdatePart(ctx context.Context, id string, draft PartDraft) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPartID
	}
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" || draft.Price < 0 || draft.Stock < 0 {
		return entities.Part{}, ErrInvalidPartData
	}

	existing, err := u.parts.GetByID(ctx, id)
	if err != nil {
		return entities.Part{}, err
	}
	if existing.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}

	updated, err := u.parts.Replace(ctx, entities.Part{
		ID:          existing.ID,
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Stock:       draft.Stock,
		CreatedAt:   existing.CreatedAt,
	})
	if err != nil {
		return entities.Part{}, err
	}
	if updated.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeletePart(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPartID
	}
	found, err := u.parts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrPartNotFound
	}
	return nil
}
