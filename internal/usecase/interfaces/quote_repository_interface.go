package interfaces

import (
	"context"
	"time"

	"oficina_ibs/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Conventions shared by all repositories in this module:
//   - a zero-value entity (empty ID) means "not found"; errors are reserved
//     for storage failures
//   - Replace swaps the full record and fails the condition when the id is
//     absent (last write wins; there is no version field)
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Replace(ctx context.Context, q entities.Quote) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, approvedAt *time.Time) (entities.Quote, error)
	Delete(ctx context.Context, id string) (bool, error)
}
