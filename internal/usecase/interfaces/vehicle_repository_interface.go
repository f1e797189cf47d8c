package interfaces

import (
	"context"

	"oficina_ibs/internal/domain/entities"
)

// IVehicleRepository abstracts DynamoDB persistence for Vehicle.
type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Vehicle, error)
	Replace(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}
