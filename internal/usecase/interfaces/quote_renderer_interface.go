package interfaces

import "oficina_ibs/internal/domain/entities"

// IQuoteDocumentRenderer turns a quote snapshot into a printable document.
// client and vehicle may be nil when the weak references do not resolve; the
// renderer degrades to placeholder text instead of failing. No side effects.
type IQuoteDocumentRenderer interface {
	Render(q entities.Quote, client *entities.Client, vehicle *entities.Vehicle, settings entities.Settings) ([]byte, error)
}
