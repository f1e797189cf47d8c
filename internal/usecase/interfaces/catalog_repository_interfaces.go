package interfaces

import (
	"context"

	"oficina_ibs/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for the service catalog.
type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Replace(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IPartRepository abstracts DynamoDB persistence for the parts inventory.
type IPartRepository interface {
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	List(ctx context.Context) ([]entities.Part, error)
	Replace(ctx context.Context, p entities.Part) (entities.Part, error)
	Delete(ctx context.Context, id string) (bool, error)
}
