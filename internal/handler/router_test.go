package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"toystore-be/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newFullRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	sessions := session.NewManager(session.NewMemoryStore())

	return NewRouter(
		NewCartHandler(new(MockCartService), new(MockOrderService), sessions),
		NewProductHandler(new(MockCatalogService)),
		NewAuthHandler(new(MockAdminService)),
		NewAdminHandler(new(MockCatalogService), new(MockOrderService)),
	).Setup()
}

func TestRouterSetup(t *testing.T) {
	r := newFullRouter()

	t.Run("Health", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ok")
	})

	t.Run("AdminRoutesAreGuarded", func(t *testing.T) {
		paths := []struct {
			method string
			path   string
		}{
			{http.MethodGet, "/admin/dashboard"},
			{http.MethodGet, "/admin/orders"},
			{http.MethodPost, "/admin/register"},
		}

		for _, p := range paths {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(p.method, p.path, strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code, p.path)
		}
	})
}
