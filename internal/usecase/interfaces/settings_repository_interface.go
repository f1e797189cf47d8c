package interfaces

import (
	"context"

	"oficina_ibs/internal/domain/entities"
)

// ISettingsRepository abstracts persistence for the settings singleton.
// Get returns a zero-value Settings (empty ID) when the record was never
// written; Put upserts.
type ISettingsRepository interface {
	Get(ctx context.Context) (entities.Settings, error)
	Put(ctx context.Context, s entities.Settings) (entities.Settings, error)
}
