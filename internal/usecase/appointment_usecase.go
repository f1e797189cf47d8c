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
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrInvalidAppointmentID   = errors.New("invalid appointment id")
	ErrInvalidAppointmentData = errors.New("invalid appointment data")
)

type AppointmentDraft struct {
	ClientID        string
	VehicleID       string
	AppointmentDate time.Time
	Status          entities.AppointmentStatus
	Notes           string
}

type IAppointmentUseCase interface {
	List(ctx context.Context) ([]entities.Appointment, error)
	Create(ctx context.Context, draft AppointmentDraft) (entities.Appointment, error)
	Update(ctx context.Context, id string, draft AppointmentDraft) (entities.Appointment, error)
	Delete(ctx context.Context, id string) error
}

type AppointmentUseCase struct {
	repo interfaces.IAppointmentRepository
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(repo interfaces.IAppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo}
}

func (d *AppointmentDraft) normalize() error {
	d.ClientID = strings.TrimSpace(d.ClientID)
	d.VehicleID = strings.TrimSpace(d.VehicleID)
	if d.ClientID == "" || d.VehicleID == "" || d.AppointmentDate.IsZero() {
		return ErrInvalidAppointmentData
	}
	if d.Status == "" {
		d.Status = entities.AppointmentStatusScheduled
	}
	if !d.Status.Valid() {
		return ErrInvalidAppointmentData
	}
	return nil
}

func (u *AppointmentUseCase) List(ctx context.Context) ([]entities.Appointment, error) {
	return u.repo.List(ctx)
}

func (u *AppointmentUseCase) Create(ctx context.Context, draft AppointmentDraft) (entities.Appointment, error) {
	if err := draft.normalize(); err != nil {
		return entities.Appointment{}, err
	}
	return u.repo.Create(ctx, entities.Appointment{
		ID:              uuid.NewString(),
		ClientID:        draft.ClientID,
		VehicleID:       draft.VehicleID,
		AppointmentDate: draft.AppointmentDate,
		Status:          draft.Status,
		Notes:           draft.Notes,
		CreatedAt:       time.Now().UTC(),
	})
}

func (u *AppointmentUseCase) Update(ctx context.Context, id string, draft AppointmentDraft) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}
	if err := draft.normalize(); err != nil {
		return entities.Appointment{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if existing.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}

	updated, err := u.repo.Replace(ctx, entities.Appointment{
		ID:              existing.ID,
		ClientID:        draft.ClientID,
		VehicleID:       draft.VehicleID,
		AppointmentDate: draft.AppointmentDate,
		Status:          draft.Status,
		Notes:           draft.Notes,
		CreatedAt:       existing.CreatedAt,
	})
	if err != nil {
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return updated, nil
}

func (u *AppointmentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAppointmentID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrAppointmentNotFound
	}
	return nil
}
