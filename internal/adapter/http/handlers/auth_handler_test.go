package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"oficina_ibs/internal/adapter/http/handlers/mocks"
	"oficina_ibs/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	return r, uc
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		r, uc := newAuthRouter(t)

		uc.EXPECT().Login(gomock.Any(), "ibs", "ibs1234").Return("jwt-token", "ibs", nil)

		body := `{"username":"ibs","password":"ibs1234"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"token":"jwt-token"`) {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		r, uc := newAuthRouter(t)

		uc.EXPECT().Login(gomock.Any(), "ibs", "wrong").Return("", "", usecase.ErrInvalidCredentials)

		body := `{"username":"ibs","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Invalid credentials") {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		body := `{"username":"ibs"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
