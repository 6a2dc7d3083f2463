package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/middleware/auth"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func validClaims(role string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   uuid.NewString(),
		"email": "donor@example.com",
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func doRequest(middleware echo.MiddlewareFunc, authHeader string, extra ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, *auth.AuthUser) {
	e := echo.New()

	var captured *auth.AuthUser
	handler := func(c echo.Context) error {
		if user, err := auth.GetUserFromContext(c); err == nil {
			captured = user
		}
		return c.NoContent(http.StatusOK)
	}

	chain := handler
	for i := len(extra) - 1; i >= 0; i-- {
		chain = extra[i](chain)
	}
	chain = middleware(chain)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	_ = chain(e.NewContext(req, rec))
	return rec, captured
}

func TestRequired(t *testing.T) {
	cfg := auth.JWTConfig{Secret: testSecret, Logger: zap.NewNop()}

	t.Run("accepts a valid token and attaches the user", func(t *testing.T) {
		claims := validClaims("user")
		rec, user := doRequest(auth.Required(cfg), "Bearer "+signToken(t, testSecret, claims))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, user)
		assert.Equal(t, claims["sub"], user.UserID)
		assert.Equal(t, "donor@example.com", user.Email)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		rec, user := doRequest(auth.Required(cfg), "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, user)
		assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		rec, _ := doRequest(auth.Required(cfg), "Bearer "+signToken(t, "wrong-secret", validClaims("user")))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		claims := validClaims("user")
		claims["exp"] = time.Now().Add(-time.Hour).Unix()
		rec, _ := doRequest(auth.Required(cfg), "Bearer "+signToken(t, testSecret, claims))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a token without a subject", func(t *testing.T) {
		claims := validClaims("user")
		delete(claims, "sub")
		rec, _ := doRequest(auth.Required(cfg), "Bearer "+signToken(t, testSecret, claims))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOptional(t *testing.T) {
	cfg := auth.JWTConfig{Secret: testSecret, Logger: zap.NewNop()}

	t.Run("continues without a token", func(t *testing.T) {
		rec, user := doRequest(auth.Optional(cfg), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, user)
	})

	t.Run("continues with an invalid token", func(t *testing.T) {
		rec, user := doRequest(auth.Optional(cfg), "Bearer garbage")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, user)
	})

	t.Run("attaches the user when the token is valid", func(t *testing.T) {
		rec, user := doRequest(auth.Optional(cfg), "Bearer "+signToken(t, testSecret, validClaims("admin")))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, user)
		assert.Equal(t, "admin", user.Role)
	})
}

func TestRequireRole(t *testing.T) {
	cfg := auth.JWTConfig{Secret: testSecret, Logger: zap.NewNop()}
	adminOnly := auth.RequireRole("admin", zap.NewNop())

	t.Run("admin passes", func(t *testing.T) {
		rec, _ := doRequest(auth.Required(cfg),
			"Bearer "+signToken(t, testSecret, validClaims("admin")), adminOnly)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		rec, _ := doRequest(auth.Required(cfg),
			"Bearer "+signToken(t, testSecret, validClaims("user")), adminOnly)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "FORBIDDEN")
	})

	t.Run("unauthenticated is rejected before the role check", func(t *testing.T) {
		rec, _ := doRequest(auth.Required(cfg), "", adminOnly)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
