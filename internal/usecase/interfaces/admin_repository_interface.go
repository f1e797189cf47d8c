package interfaces

import (
	"context"

	"oficina_ibs/internal/domain/entities"
)

// IAdminRepository abstracts DynamoDB persistence for Admin users.
type IAdminRepository interface {
	GetByUsername(ctx context.Context, username string) (entities.Admin, error)
	Create(ctx context.Context, a entities.Admin) (entities.Admin, error)
}
