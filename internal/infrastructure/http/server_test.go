package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	handlers "github.com/akmalhakim05/fundizen-backend-sub000/internal/adapter/handler/http"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/config"
	httpServer "github.com/akmalhakim05/fundizen-backend-sub000/internal/infrastructure/http"
)

func testServer() *httpServer.Server {
	logger := zap.NewNop()
	cfg := &config.Config{}
	cfg.Service.Name = "fundizen-test"
	cfg.Service.JWTSecret = "test-secret"
	cfg.Service.ClientURL = "http://localhost:3000"

	return httpServer.NewServer(cfg, logger, &httpServer.Services{
		Webhooks: handlers.NewWebhookHandler(nil, nil, logger),
	})
}

func TestServer_Health(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
	assert.Contains(t, rec.Body.String(), "fundizen-test")
}

func TestServer_ErrorShape(t *testing.T) {
	srv := testServer()

	t.Run("unknown route returns uniform not found body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
		rec := httptest.NewRecorder()
		srv.Echo().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "NOT_FOUND", body["error"])
		assert.NotEmpty(t, body["message"])
	})

	t.Run("protected route without session is unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/donations/mine", nil)
		rec := httptest.NewRecorder()
		srv.Echo().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
	})

	t.Run("profile routes are registered behind a session", func(t *testing.T) {
		for _, method := range []string{http.MethodGet, http.MethodPut} {
			req := httptest.NewRequest(method, "/api/users/me", nil)
			rec := httptest.NewRecorder()
			srv.Echo().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
		}
	})

	t.Run("admin route rejects a plain user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		rec := httptest.NewRecorder()
		srv.Echo().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
