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
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrInvalidVehicleID   = errors.New("invalid vehicle id")
	ErrInvalidVehicleData = errors.New("invalid vehicle data")
)

type VehicleDraft struct {
	ClientID     string
	LicensePlate string
	Model        string
	Brand        string
	Year         int
	Color        string
	Transmission string
	FuelType     string
	Mileage      int
	Engine       string
	Notes        string
}

type IVehicleUseCase interface {
	List(ctx context.Context) ([]entities.Vehicle, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Vehicle, error)
	Create(ctx context.Context, draft VehicleDraft) (entities.Vehicle, error)
	Update(ctx context.Context, id string, draft VehicleDraft) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type VehicleUseCase struct {
	repo interfaces.IVehicleRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

func (d VehicleDraft) validate() error {
	if strings.TrimSpace(d.ClientID) == "" || strings.TrimSpace(d.LicensePlate) == "" ||
		strings.TrimSpace(d.Model) == "" || strings.TrimSpace(d.Brand) == "" {
		return ErrInvalidVehicleData
	}
	return nil
}

func (d VehicleDraft) toEntity(id string, createdAt time.Time) entities.Vehicle {
	return entities.Vehicle{
		ID:           id,
		ClientID:     strings.TrimSpace(d.ClientID),
		LicensePlate: strings.TrimSpace(d.LicensePlate),
		Model:        d.Model,
		Brand:        d.Brand,
		Year:         d.Year,
		Color:        d.Color,
		Transmission: d.Transmission,
		FuelType:     d.FuelType,
		Mileage:      d.Mileage,
		Engine:       d.Engine,
		Notes:        d.Notes,
		CreatedAt:    createdAt,
	}
}

func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.List(ctx)
}

func (u *VehicleUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.Vehicle, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}

func (u *VehicleUseCase) Create(ctx context.Context, draft VehicleDraft) (entities.Vehicle, error) {
	if err := draft.validate(); err != nil {
		return entities.Vehicle{}, err
	}
	return u.repo.Create(ctx, draft.toEntity(uuid.NewString(), time.Now().UTC()))
}

func (u *VehicleUseCase) Update(ctx context.Context, id string, draft VehicleDraft) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	if err := draft.validate(); err != nil {
		return entities.Vehicle{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if existing.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}

	updated, err := u.repo.Replace(ctx, draft.toEntity(existing.ID, existing.CreatedAt))
	if err != nil {
		return entities.Vehicle{}, err
	}
	if updated.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, nil
}

func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidVehicleID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrVehicleNotFound
	}
	return nil
}
