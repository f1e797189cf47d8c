package response

import (
	"time"

	"oficina_ibs/internal/domain/entities"
)

type QuoteItemResponse struct {
	Type      string  `json:"type"`
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

type QuoteResponse struct {
	ID         string              `json:"id"`
	ClientID   string              `json:"client_id"`
	VehicleID  string              `json:"vehicle_id"`
	Items      []QuoteItemResponse `json:"items"`
	Subtotal   float64             `json:"subtotal"`
	Discount   float64             `json:"discount"`
	LaborCost  float64             `json:"labor_cost"`
	Total      float64             `json:"total"`
	Status     string              `json:"status"`
	Notes      string              `json:"notes,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	ApprovedAt *time.Time          `json:"approved_at,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse{
			Type:      string(it.Type),
			ItemID:    it.ItemID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
		})
	}
	return QuoteResponse{
		ID:         q.ID,
		ClientID:   q.ClientID,
		VehicleID:  q.VehicleID,
		Items:      items,
		Subtotal:   q.Subtotal,
		Discount:   q.Discount,
		LaborCost:  q.LaborCost,
		Total:      q.Total,
		Status:     string(q.Status),
		Notes:      q.Notes,
		CreatedAt:  q.CreatedAt,
		ApprovedAt: q.ApprovedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
