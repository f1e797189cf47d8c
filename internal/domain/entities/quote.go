package entities

import (
	"errors"
	"time"
)

// QuoteStatus represents the lifecycle of a quote (orçamento).
//
// Domain notes:
//   - A quote starts pending and is approved or rejected by explicit actions.
//   - "completed" is only reachable through the generic update path; there is
//     no dedicated complete action, matching the front-end contract.

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusApproved  QuoteStatus = "approved"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCompleted QuoteStatus = "completed"
)

// Valid reports whether s is one of the known quote statuses.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusApproved, QuoteStatusRejected, QuoteStatusCompleted:
		return true
	}
	return false
}

var ErrTransitionNotAllowed = errors.New("quote status transition not allowed")

// strictTransitions is the hardened state machine: pending is decided once,
// approved quotes can be completed, rejected and completed are terminal.
var strictTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusPending:  {QuoteStatusApproved, QuoteStatusRejected},
	QuoteStatusApproved: {QuoteStatusCompleted},
}

// TransitionStatus is the single place deciding whether a quote may move from
// current to requested. In permissive mode (strict=false) any requested status
// wins, which keeps historical behavior such as re-approving a rejected quote.
// Re-entering the current status is always allowed.
func TransitionStatus(current, requested QuoteStatus, strict bool) (QuoteStatus, error) {
	if !requested.Valid() {
		return current, ErrTransitionNotAllowed
	}
	if !strict || current == requested {
		return requested, nil
	}
	for _, next := range strictTransitions[current] {
		if next == requested {
			return requested, nil
		}
	}
	return current, ErrTransitionNotAllowed
}

// QuoteItemType discriminates a quote line item.

type QuoteItemType string

const (
	QuoteItemTypeService QuoteItemType = "service"
	QuoteItemTypePart    QuoteItemType = "part"
)

func (t QuoteItemType) Valid() bool {
	return t == QuoteItemTypeService || t == QuoteItemTypePart
}

// QuoteItem is one priced entry within a quote. ItemID is a weak reference to
// the service/part catalog record used only at creation time; Name and
// UnitPrice are copied into the item and never re-derived.
type QuoteItem struct {
	Type      QuoteItemType `json:"type"`
	ItemID    string        `json:"item_id"`
	Name      string        `json:"name"`
	Quantity  int           `json:"quantity"`
	UnitPrice float64       `json:"unit_price"`
	Total     float64       `json:"total"`
}

// Quote is the proposed bill of services/parts persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ClientID and VehicleID are weak references: deleting the referenced records
// neither cascades nor blocks. Subtotal and Total are always recomputed
// server-side; values supplied on the wire are discarded.
type Quote struct {
	ID         string      `json:"id"`
	ClientID   string      `json:"client_id"`
	VehicleID  string      `json:"vehicle_id"`
	Items      []QuoteItem `json:"items"`
	Subtotal   float64     `json:"subtotal"`
	Discount   float64     `json:"discount"`
	LaborCost  float64     `json:"labor_cost"`
	Total      float64     `json:"total"`
	Status     QuoteStatus `json:"status"`
	Notes      string      `json:"notes,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	ApprovedAt *time.Time  `json:"approved_at,omitempty"`
}
