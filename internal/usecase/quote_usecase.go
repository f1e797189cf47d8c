package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"oficina_ibs/internal/domain/entities"
	"oficina_ibs/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrQuoteClientNotFound  = errors.New("quote client not found")
	ErrQuoteVehicleNotFound = errors.New("quote vehicle not found")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrInvalidQuoteDraft    = errors.New("invalid quote draft")
)

// QuoteDraft carries the editable fields of a quote. Status is optional and
// only honored on update; when empty the stored status is kept. Any totals
// present on the wire are discarded — the engine recomputes everything.
type QuoteDraft struct {
	ClientID  string
	VehicleID string
	Items     []entities.QuoteItem
	Discount  float64
	LaborCost float64
	Notes     string
	Status    entities.QuoteStatus
}

// QuoteConfig names the two behaviors that used to be implicit accidents of
// the schemaless store. Both default to false for compatibility: weak
// references are not checked and every status transition is allowed.
type QuoteConfig struct {
	StrictTransitions bool
	VerifyReferences  bool
}

func QuoteConfigFromEnv() QuoteConfig {
	return QuoteConfig{
		StrictTransitions: envBool("QUOTE_STRICT_TRANSITIONS"),
		VerifyReferences:  envBool("QUOTE_VERIFY_REFERENCES"),
	}
}

// IQuoteUseCase exposes the quote lifecycle and document generation.
type IQuoteUseCase interface {
	List(ctx context.Context) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Create(ctx context.Context, draft QuoteDraft) (entities.Quote, error)
	Update(ctx context.Context, id string, draft QuoteDraft) (entities.Quote, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	RenderPDF(ctx context.Context, id string) ([]byte, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	clients  interfaces.IClientRepository
	vehicles interfaces.IVehicleRepository
	settings interfaces.ISettingsRepository
	renderer interfaces.IQuoteDocumentRenderer
	cfg      QuoteConfig
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	clients interfaces.IClientRepository,
	vehicles interfaces.IVehicleRepository,
	settings interfaces.ISettingsRepository,
	renderer interfaces.IQuoteDocumentRenderer,
	cfg QuoteConfig,
) *QuoteUseCase {
	return &QuoteUseCase{
		repo:     repo,
		clients:  clients,
		vehicles: vehicles,
		settings: settings,
		renderer: renderer,
		cfg:      cfg,
	}
}

// ComputeQuoteTotals recomputes every line total as quantity × unit price and
// derives subtotal = Σ line totals, total = subtotal + labor − discount.
// Caller-supplied line totals are overwritten rather than rejected, so a
// fabricated total can never reach storage. A negative grand total (discount
// above subtotal + labor) is allowed.
func ComputeQuoteTotals(items []entities.QuoteItem, discount, laborCost float64) (subtotal, total float64, normalized []entities.QuoteItem) {
	normalized = make([]entities.QuoteItem, len(items))
	for i, it := range items {
		it.Total = float64(it.Quantity) * it.UnitPrice
		normalized[i] = it
		subtotal += it.Total
	}
	total = subtotal + laborCost - discount
	return subtotal, total, normalized
}

func validateQuoteDraft(draft *QuoteDraft) error {
	draft.ClientID = strings.TrimSpace(draft.ClientID)
	draft.VehicleID = strings.TrimSpace(draft.VehicleID)
	if draft.ClientID == "" || draft.VehicleID == "" {
		return ErrInvalidQuoteDraft
	}
	if draft.Discount < 0 || draft.LaborCost < 0 {
		return ErrInvalidQuoteDraft
	}
	for _, it := range draft.Items {
		if !it.Type.Valid() || it.Quantity < 1 || it.UnitPrice < 0 {
			return ErrInvalidQuoteDraft
		}
	}
	if draft.Status != "" && !draft.Status.Valid() {
		return ErrInvalidQuoteDraft
	}
	return nil
}

func (u *QuoteUseCase) verifyReferences(ctx context.Context, draft QuoteDraft) error {
	if !u.cfg.VerifyReferences {
		return nil
	}
	c, err := u.clients.GetByID(ctx, draft.ClientID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrQuoteClientNotFound
	}
	v, err := u.vehicles.GetByID(ctx, draft.VehicleID)
	if err != nil {
		return err
	}
	if v.ID == "" {
		return ErrQuoteVehicleNotFound
	}
	return nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) Create(ctx context.Context, draft QuoteDraft) (entities.Quote, error) {
	if err := validateQuoteDraft(&draft); err != nil {
		return entities.Quote{}, err
	}
	if err := u.verifyReferences(ctx, draft); err != nil {
		return entities.Quote{}, err
	}

	subtotal, total, items := ComputeQuoteTotals(draft.Items, draft.Discount, draft.LaborCost)
	q := entities.Quote{
		ID:        uuid.NewString(),
		ClientID:  draft.ClientID,
		VehicleID: draft.VehicleID,
		Items:     items,
		Subtotal:  subtotal,
		Discount:  draft.Discount,
		LaborCost: draft.LaborCost,
		Total:     total,
		Status:    entities.QuoteStatusPending,
		Notes:     draft.Notes,
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, q)
}

// Update replaces all editable fields and recomputes totals with the same
// rule as Create. CreatedAt and ApprovedAt are never touched; status changes
// only when the draft requests one, routed through the transition policy.
func (u *QuoteUseCase) Update(ctx context.Context, id string, draft QuoteDraft) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if err := validateQuoteDraft(&draft); err != nil {
		return entities.Quote{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if existing.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	if err := u.verifyReferences(ctx, draft); err != nil {
		return entities.Quote{}, err
	}

	status := existing.Status
	if draft.Status != "" {
		status, err = entities.TransitionStatus(existing.Status, draft.Status, u.cfg.StrictTransitions)
		if err != nil {
			return entities.Quote{}, err
		}
	}

	subtotal, total, items := ComputeQuoteTotals(draft.Items, draft.Discount, draft.LaborCost)
	q := entities.Quote{
		ID:         existing.ID,
		ClientID:   draft.ClientID,
		VehicleID:  draft.VehicleID,
		Items:      items,
		Subtotal:   subtotal,
		Discount:   draft.Discount,
		LaborCost:  draft.LaborCost,
		Total:      total,
		Status:     status,
		Notes:      draft.Notes,
		CreatedAt:  existing.CreatedAt,
		ApprovedAt: existing.ApprovedAt,
	}

	updated, err := u.repo.Replace(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// Approve stamps ApprovedAt on every call; in permissive mode re-approving an
// already decided quote overwrites the previous decision.
func (u *QuoteUseCase) Approve(ctx context.Context, id string) error {
	now := time.Now().UTC()
	return u.decide(ctx, id, entities.QuoteStatusApproved, &now)
}

// Reject flips the status only; a previously stamped ApprovedAt is preserved.
func (u *QuoteUseCase) Reject(ctx context.Context, id string) error {
	return u.decide(ctx, id, entities.QuoteStatusRejected, nil)
}

func (u *QuoteUseCase) decide(ctx context.Context, id string, status entities.QuoteStatus, approvedAt *time.Time) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrQuoteNotFound
	}
	if _, err := entities.TransitionStatus(existing.Status, status, u.cfg.StrictTransitions); err != nil {
		return err
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status, approvedAt)
	if err != nil {
		return err
	}
	if updated.ID == "" {
		return ErrQuoteNotFound
	}
	return nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrQuoteNotFound
	}
	return nil
}

// RenderPDF loads the quote and its related records and delegates to the
// renderer. Unresolved client/vehicle references degrade to nil (rendered as
// placeholders); unavailable settings fall back to defaults. Only a missing
// quote is an error.
func (u *QuoteUseCase) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var client *entities.Client
	if c, err := u.clients.GetByID(ctx, q.ClientID); err != nil {
		log.Printf("[quote][usecase] pdf client lookup failed quote_id=%s client_id=%s err=%v", q.ID, q.ClientID, err)
	} else if c.ID != "" {
		client = &c
	}

	var vehicle *entities.Vehicle
	if v, err := u.vehicles.GetByID(ctx, q.VehicleID); err != nil {
		log.Printf("[quote][usecase] pdf vehicle lookup failed quote_id=%s vehicle_id=%s err=%v", q.ID, q.VehicleID, err)
	} else if v.ID != "" {
		vehicle = &v
	}

	settings, err := u.settings.Get(ctx)
	if err != nil || settings.ID == "" {
		settings = entities.DefaultSettings()
	}

	return u.renderer.Render(q, client, vehicle, settings)
}
