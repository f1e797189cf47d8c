package interfaces

import (
	"context"

	"oficina_ibs/internal/domain/entities"
)

// IAppointmentRepository abstracts DynamoDB persistence for Appointment.
type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	List(ctx context.Context) ([]entities.Appointment, error)
	Replace(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	Delete(ctx context.Context, id string) (bool, error)
}
