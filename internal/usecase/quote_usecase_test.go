package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_ibs/internal/domain/entities"
	mock_interfaces "oficina_ibs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func quoteDraftFixture() QuoteDraft {
	return QuoteDraft{
		ClientID:  "client-1",
		VehicleID: "vehicle-1",
		Items: []entities.QuoteItem{
			{Type: entities.QuoteItemTypeService, ItemID: "svc-1", Name: "Revisão", Quantity: 1, UnitPrice: 80},
			{Type: entities.QuoteItemTypePart, ItemID: "part-1", Name: "Filtro", Quantity: 1, UnitPrice: 50},
		},
		Discount:  20,
		LaborCost: 30,
	}
}

func TestComputeQuoteTotals(t *testing.T) {
	t.Run("subtotal and total from the documented example", func(t *testing.T) {
		draft := quoteDraftFixture()
		subtotal, total, items := ComputeQuoteTotals(draft.Items, draft.Discount, draft.LaborCost)
		if subtotal != 130 {
			t.Errorf("subtotal = %v, want 130", subtotal)
		}
		if total != 140 {
			t.Errorf("total = %v, want 140", total)
		}
		if items[0].Total != 80 || items[1].Total != 50 {
			t.Errorf("line totals = %v, %v; want 80, 50", items[0].Total, items[1].Total)
		}
	})

	t.Run("caller-supplied line totals are overwritten", func(t *testing.T) {
		items := []entities.QuoteItem{
			{Type: entities.QuoteItemTypePart, Name: "Pneu", Quantity: 4, UnitPrice: 250, Total: 1},
		}
		subtotal, total, normalized := ComputeQuoteTotals(items, 0, 0)
		if normalized[0].Total != 1000 {
			t.Errorf("line total = %v, want 1000", normalized[0].Total)
		}
		if subtotal != 1000 || total != 1000 {
			t.Errorf("subtotal, total = %v, %v; want 1000, 1000", subtotal, total)
		}
	})

	t.Run("discount above subtotal plus labor goes negative", func(t *testing.T) {
		items := []entities.QuoteItem{
			{Type: entities.QuoteItemTypeService, Name: "Lavagem", Quantity: 1, UnitPrice: 50},
		}
		_, total, _ := ComputeQuoteTotals(items, 100, 10)
		if total != -40 {
			t.Errorf("total = %v, want -40", total)
		}
	})

	t.Run("empty items yield zero subtotal", func(t *testing.T) {
		subtotal, total, items := ComputeQuoteTotals(nil, 5, 20)
		if subtotal != 0 || total != 15 {
			t.Errorf("subtotal, total = %v, %v; want 0, 15", subtotal, total)
		}
		if len(items) != 0 {
			t.Errorf("items = %v, want empty", items)
		}
	})
}

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("persists pending quote with computed totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil, QuoteConfig{})

		var stored entities.Quote
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				stored = q
				return q, nil
			})

		got, err := uc.Create(context.Background(), quoteDraftFixture())
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got.ID == "" {
			t.Error("Create() did not assign an id")
		}
		if stored.Status != entities.QuoteStatusPending {
			t.Errorf("status = %q, want pending", stored.Status)
		}
		if stored.Subtotal != 130 || stored.Total != 140 {
			t.Errorf("subtotal, total = %v, %v; want 130, 140", stored.Subtotal, stored.Total)
		}
		if stored.ApprovedAt != nil {
			t.Error("new quote must not carry an approval stamp")
		}
		if stored.CreatedAt.IsZero() {
			t.Error("CreatedAt not set")
		}
	})

	t.Run("invalid drafts are rejected before hitting the repository", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, QuoteConfig{})

		bad := []QuoteDraft{
			{VehicleID: "vehicle-1"},
			{ClientID: "client-1"},
			{ClientID: "client-1", VehicleID: "vehicle-1", Discount: -1},
			{ClientID: "client-1", VehicleID: "vehicle-1", LaborCost: -1},
			{ClientID: "client-1", VehicleID: "vehicle-1", Items: []entities.QuoteItem{{Type: "labor", Quantity: 1}}},
			{ClientID: "client-1", VehicleID: "vehicle-1", Items: []entities.QuoteItem{{Type: entities.QuoteItemTypePart, Quantity: 0}}},
			{ClientID: "client-1", VehicleID: "vehicle-1", Items: []entities.QuoteItem{{Type: entities.QuoteItemTypePart, Quantity: 1, UnitPrice: -5}}},
		}
		for i, draft := range bad {
			if _, err := uc.Create(context.Background(), draft); !errors.Is(err, ErrInvalidQuoteDraft) {
				t.Errorf("draft %d: error = %v, want ErrInvalidQuoteDraft", i, err)
			}
		}
	})

	t.Run("reference checks run when enabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewQuoteUseCase(repo, clients, nil, nil, nil, QuoteConfig{VerifyReferences: true})

		clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), quoteDraftFixture())
		if !errors.Is(err, ErrQuoteClientNotFound) {
			t.Fatalf("error = %v, want ErrQuoteClientNotFound", err)
		}
	})
}

func TestQuoteUseCase_Update(t *testing.T) {
	existing := entities.Quote{
		ID:        "quote-1",
		ClientID:  "client-1",
		VehicleID: "vehicle-1",
		Status:    entities.QuoteStatusPending,
		CreatedAt: time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC),
	}

	t.Run("preserves created_at and recomputes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil, QuoteConfig{})

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(existing, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if !q.CreatedAt.Equal(existing.CreatedAt) {
					t.Errorf("CreatedAt changed: %v", q.CreatedAt)
				}
				if q.Subtotal != 130 || q.Total != 140 {
					t.Errorf("subtotal, total = %v, %v; want 130, 140", q.Subtotal, q.Total)
				}
				if q.Status != entities.QuoteStatusPending {
					t.Errorf("status = %q, want unchanged pending", q.Status)
				}
				return q, nil
			})

		if _, err := uc.Update(context.Background(), "quote-1", quoteDraftFixture()); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	})

	t.Run("status change rides along through the transition policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil, QuoteConfig{})

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(existing, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusCompleted {
					t.Errorf("status = %q, want completed", q.Status)
				}
				return q, nil
			})

		draft := quoteDraftFixture()
		draft.Status = entities.QuoteStatusCompleted

		if _, err := uc.Update(context.Background(), "quote-1", draft); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	})

	t.Run("strict mode refuses pending to completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil, QuoteConfig{StrictTransitions: true})

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(existing, nil)

		draft := quoteDraftFixture()
		draft.Status = entities.QuoteStatusCompleted

		if _, err := uc.Update(context.Background(), "quote-1", draft); !errors.Is(err, entities.ErrTransitionNotAllowed) {
			t.Fatalf("error = %v, want ErrTransitionNotAllowed", err)
		}
	})

	t.Run("missing quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil, QuoteConfig{})

		repo.EXPECT().GetByID(gomock.Any(), "quote-x").Return(entities.Quote{}, nil)

		if _, err := uc.Update(context.Background(), "quote-x", quoteDraftFixture()); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("error = %v, want ErrQuoteNotFound", err)
		}
	})
}

func TestQuoteUseCase_ApproveReject(t *testing.T) {
	pending := entities.Quote{ID: "quote-1", Status: entities.QuoteStatusPending}

	t.Run("approve stamps approved_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil, QuoteConfig{})

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(pending, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "quote-1", entities.QuoteStatusApproved, gomock.Not(gomock.Nil())).
			Return(entities.Quote{ID: "quote-1", Status: entities.QuoteStatusApproved}, nil)

		if err := uc.Approve(context.Background(), "quote-1"); err != nil {
			t.Fatalf("Approve() error = %v", err)
		}
	})

	t.Run("reject never touches approved_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil, QuoteConfig{})

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(pending, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "quote-1", entities.QuoteStatusRejected, gomock.Nil()).
			Return(entities.Quote{ID: "quote-1", Status: entities.QuoteStatusRejected}, nil)

		if err := uc.Reject(context.Background(), "quote-1"); err != nil {
			t.Fatalf("Reject() error = %v", err)
		}
	})

	t.Run("permissive mode re-approves a rejected quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil, QuoteConfig{})

		rejected := entities.Quote{ID: "quote-1", Status: entities.QuoteStatusRejected}
		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(rejected, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "quote-1", entities.QuoteStatusApproved, gomock.Any()).
			Return(entities.Quote{ID: "quote-1", Status: entities.QuoteStatusApproved}, nil)

		if err := uc.Approve(context.Background(), "quote-1"); err != nil {
			t.Fatalf("Approve() error = %v", err)
		}
	})

	t.Run("strict mode refuses re-approving a rejected quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil, QuoteConfig{StrictTransitions: true})

		rejected := entities.Quote{ID: "quote-1", Status: entities.QuoteStatusRejected}
		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(rejected, nil)

		if err := uc.Approve(context.Background(), "quote-1"); !errors.Is(err, entities.ErrTransitionNotAllowed) {
			t.Fatalf("error = %v, want ErrTransitionNotAllowed", err)
		}
	})

	t.Run("missing quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil, QuoteConfig{})

		repo.EXPECT().GetByID(gomock.Any(), "quote-x").Return(entities.Quote{}, nil)

		if err := uc.Approve(context.Background(), "quote-x"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("error = %v, want ErrQuoteNotFound", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, QuoteConfig{})
		if err := uc.Approve(context.Background(), "  "); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("error = %v, want ErrInvalidQuoteID", err)
		}
	})
}

func TestQuoteUseCase_Delete(t *testing.T) {
	t.Run("deletes unconditionally regardless of status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil, QuoteConfig{})

		repo.EXPECT().Delete(gomock.Any(), "quote-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "quote-1"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
	})

	t.Run("missing quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil, QuoteConfig{})

		repo.EXPECT().Delete(gomock.Any(), "quote-x").Return(false, nil)

		if err := uc.Delete(context.Background(), "quote-x"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("error = %v, want ErrQuoteNotFound", err)
		}
	})
}

func TestQuoteUseCase_RenderPDF(t *testing.T) {
	quote := entities.Quote{ID: "quote-1", ClientID: "client-1", VehicleID: "vehicle-1", Status: entities.QuoteStatusPending}

	t.Run("passes resolved references and stored settings to the renderer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteDocumentRenderer(ctrl)
		uc := NewQuoteUseCase(repo, clients, vehicles, settings, renderer, QuoteConfig{})

		client := entities.Client{ID: "client-1", Name: "João"}
		vehicle := entities.Vehicle{ID: "vehicle-1", Brand: "Fiat"}
		stored := entities.Settings{ID: entities.SettingsID, WorkshopName: "Oficina do Zé"}

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(quote, nil)
		clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(client, nil)
		vehicles.EXPECT().GetByID(gomock.Any(), "vehicle-1").Return(vehicle, nil)
		settings.EXPECT().Get(gomock.Any()).Return(stored, nil)
		renderer.EXPECT().Render(quote, &client, &vehicle, stored).Return([]byte("%PDF-fake"), nil)

		doc, err := uc.RenderPDF(context.Background(), "quote-1")
		if err != nil {
			t.Fatalf("RenderPDF() error = %v", err)
		}
		if string(doc) != "%PDF-fake" {
			t.Errorf("doc = %q", doc)
		}
	})

	t.Run("dangling references degrade to nil, settings fall back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteDocumentRenderer(ctrl)
		uc := NewQuoteUseCase(repo, clients, vehicles, settings, renderer, QuoteConfig{})

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(quote, nil)
		clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{}, nil)
		vehicles.EXPECT().GetByID(gomock.Any(), "vehicle-1").Return(entities.Vehicle{}, errors.New("db"))
		settings.EXPECT().Get(gomock.Any()).Return(entities.Settings{}, nil)
		renderer.EXPECT().Render(quote, nil, nil, entities.DefaultSettings()).Return([]byte("%PDF-fake"), nil)

		if _, err := uc.RenderPDF(context.Background(), "quote-1"); err != nil {
			t.Fatalf("RenderPDF() error = %v", err)
		}
	})

	t.Run("missing quote fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil, QuoteConfig{})

		repo.EXPECT().GetByID(gomock.Any(), "quote-x").Return(entities.Quote{}, nil)

		if _, err := uc.RenderPDF(context.Background(), "quote-x"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("error = %v, want ErrQuoteNotFound", err)
		}
	})
}
