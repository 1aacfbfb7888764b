package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newTestRouter(capture *uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/scoped", RequireUser(), func(c *gin.Context) {
		*capture = UserID(c)
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireUser_AcceptsValidHeader(t *testing.T) {
	var got uuid.UUID
	r := newTestRouter(&got)

	want := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	req.Header.Set("X-User-ID", want.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got != want {
		t.Fatalf("expected scoped user %s, got %s", want, got)
	}
}

func TestRequireUser_RejectsMissingHeader(t *testing.T) {
	var got uuid.UUID
	r := newTestRouter(&got)

	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if got != uuid.Nil {
		t.Fatalf("handler ran without a user header")
	}
}

func TestRequireUser_RejectsMalformedHeader(t *testing.T) {
	var got uuid.UUID
	r := newTestRouter(&got)

	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	req.Header.Set("X-User-ID", "not-a-uuid")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
