package request

import (
	"strings"

	"oficina_ibs/internal/domain/entities"
	"oficina_ibs/internal/usecase"
)

type QuoteItemRequest struct {
	Type      string  `json:"type" binding:"required"`
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// QuoteRequest covers both creation and full update. Status is only honored
// on update; line item totals are recomputed server-side regardless of what
// the caller sends.
type QuoteRequest struct {
	ClientID  string             `json:"client_id" binding:"required"`
	VehicleID string             `json:"vehicle_id" binding:"required"`
	Items     []QuoteItemRequest `json:"items"`
	Discount  float64            `json:"discount"`
	LaborCost float64            `json:"labor_cost"`
	Notes     string             `json:"notes"`
	Status    string             `json:"status"`
}

func (r QuoteRequest) ResolveItems() []entities.QuoteItem {
	items := make([]entities.QuoteItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.QuoteItem{
			Type:      entities.QuoteItemType(strings.TrimSpace(it.Type)),
			ItemID:    strings.TrimSpace(it.ItemID),
			Name:      strings.TrimSpace(it.Name),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return items
}

func (r QuoteRequest) ResolveStatus() entities.QuoteStatus {
	return entities.QuoteStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

// ToDraft builds the use case command. withStatus distinguishes update, where
// a status change may ride along, from create, where it is ignored.
func (r QuoteRequest) ToDraft(withStatus bool) usecase.QuoteDraft {
	draft := usecase.QuoteDraft{
		ClientID:  r.ClientID,
		VehicleID: r.VehicleID,
		Items:     r.ResolveItems(),
		Discount:  r.Discount,
		LaborCost: r.LaborCost,
		Notes:     strings.TrimSpace(r.Notes),
	}
	if withStatus {
		draft.Status = r.ResolveStatus()
	}
	return draft
}
