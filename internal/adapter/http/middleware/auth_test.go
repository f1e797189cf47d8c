package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_ibs/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func setupRouter(t *testing.T) (*gin.Engine, *mocks.MockITokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	tokens := mocks.NewMockITokenService(ctrl)

	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": Principal(c)})
	})
	return r, tokens
}

func TestRequireAuth(t *testing.T) {
	t.Run("valid token passes and sets principal", func(t *testing.T) {
		r, tokens := setupRouter(t)
		tokens.EXPECT().Verify("good-token").Return("ibs", nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if body := w.Body.String(); body != `{"user":"ibs"}` {
			t.Errorf("body = %s", body)
		}
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		r, _ := setupRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		r, _ := setupRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		r, tokens := setupRouter(t)
		tokens.EXPECT().Verify("bad-token").Return("", errors.New("invalid or expired token"))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})
}
