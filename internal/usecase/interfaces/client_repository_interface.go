package interfaces

import (
	"context"

	"oficina_ibs/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Replace(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}
