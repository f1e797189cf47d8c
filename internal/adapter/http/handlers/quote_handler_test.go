package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oficina_ibs/internal/adapter/http/handlers/mocks"
	"oficina_ibs/internal/domain/entities"
	"oficina_ibs/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.GET("/api/quotes", h.ListQuotes)
	r.POST("/api/quotes", h.CreateQuote)
	r.GET("/api/quotes/:quote_id", h.GetQuote)
	r.PUT("/api/quotes/:quote_id", h.UpdateQuote)
	r.DELETE("/api/quotes/:quote_id", h.DeleteQuote)
	r.POST("/api/quotes/:quote_id/approve", h.ApproveQuote)
	r.POST("/api/quotes/:quote_id/reject", h.RejectQuote)
	r.GET("/api/quotes/:quote_id/pdf", h.DownloadQuotePDF)
	return r, uc
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newQuoteRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("status field is ignored on create", func(t *testing.T) {
		r, uc := newQuoteRouter(t)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, draft usecase.QuoteDraft) (entities.Quote, error) {
				if draft.Status != "" {
					t.Errorf("draft status = %q, want empty", draft.Status)
				}
				return entities.Quote{ID: "quote-1", Status: entities.QuoteStatusPending}, nil
			})

		body := `{"client_id":"client-1","vehicle_id":"vehicle-1","status":"approved","items":[{"type":"service","name":"Revisão","quantity":1,"unit_price":80}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid draft maps to 400", func(t *testing.T) {
		r, uc := newQuoteRouter(t)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrInvalidQuoteDraft)

		body := `{"client_id":"client-1","vehicle_id":"vehicle-1","discount":-5}`
		req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r, uc := newQuoteRouter(t)

		uc.EXPECT().GetByID(gomock.Any(), "quote-1").Return(entities.Quote{
			ID:        "quote-1",
			Status:    entities.QuoteStatusPending,
			CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/quotes/quote-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["id"] != "quote-1" || body["status"] != "pending" {
			t.Errorf("body = %v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newQuoteRouter(t)

		uc.EXPECT().GetByID(gomock.Any(), "quote-x").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/quotes/quote-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ApproveReject(t *testing.T) {
	t.Run("approve returns confirmation message", func(t *testing.T) {
		r, uc := newQuoteRouter(t)

		uc.EXPECT().Approve(gomock.Any(), "quote-1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/quote-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"message":"Quote approved successfully"}` {
			t.Errorf("body = %s", body)
		}
	})

	t.Run("reject on missing quote", func(t *testing.T) {
		r, uc := newQuoteRouter(t)

		uc.EXPECT().Reject(gomock.Any(), "quote-x").Return(usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/quote-x/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("transition refusal maps to 400", func(t *testing.T) {
		r, uc := newQuoteRouter(t)

		uc.EXPECT().Approve(gomock.Any(), "quote-1").Return(entities.ErrTransitionNotAllowed)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/quote-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_DeleteQuote(t *testing.T) {
	r, uc := newQuoteRouter(t)

	uc.EXPECT().Delete(gomock.Any(), "quote-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/quotes/quote-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != `{"message":"Quote deleted successfully"}` {
		t.Errorf("body = %s", body)
	}
}

func TestQuoteHandler_DownloadQuotePDF(t *testing.T) {
	t.Run("streams the document with download headers", func(t *testing.T) {
		r, uc := newQuoteRouter(t)

		uc.EXPECT().RenderPDF(gomock.Any(), "0f9a2b3c-4d5e").Return([]byte("%PDF-fake"), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/quotes/0f9a2b3c-4d5e/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("Content-Type = %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != "attachment; filename=orcamento_0f9a2b3c.pdf" {
			t.Errorf("Content-Disposition = %q", cd)
		}
		if w.Body.String() != "%PDF-fake" {
			t.Errorf("body = %q", w.Body.String())
		}
	})

	t.Run("missing quote", func(t *testing.T) {
		r, uc := newQuoteRouter(t)

		uc.EXPECT().RenderPDF(gomock.Any(), "quote-x").Return(nil, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/quotes/quote-x/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
