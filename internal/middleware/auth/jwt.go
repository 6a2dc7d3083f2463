package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthUser represents an authenticated user from a session JWT.
type AuthUser struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// contextKey is used for storing user in context
type contextKey string

const userContextKey contextKey = "authenticated_user"

// JWTConfig holds the configuration for the JWT middleware.
type JWTConfig struct {
	Secret string
	Logger *zap.Logger
}

// Required validates the session token and rejects requests without a valid
// one.
func Required(config JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := parseRequest(c, config)
			if err != nil {
				config.Logger.Warn("Authentication rejected",
					zap.String("path", c.Request().URL.Path),
					zap.Error(err))
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error":   "UNAUTHENTICATED",
					"message": "Invalid or missing token",
				})
			}

			setUser(c, user)
			return next(c)
		}
	}
}

// Optional attaches the user when a valid token is present and lets the
// request proceed unauthenticated otherwise. Public reads and anonymous
// donation creation run behind this mode.
func Optional(config JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := parseRequest(c, config)
			if err != nil {
				config.Logger.Debug("Proceeding unauthenticated",
					zap.String("path", c.Request().URL.Path),
					zap.Error(err))
				return next(c)
			}

			setUser(c, user)
			return next(c)
		}
	}
}

// RequireRole rejects authenticated users without the given role. It must
// run after Required.
func RequireRole(role string, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := GetUserFromContext(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error":   "UNAUTHENTICATED",
					"message": "Authentication required",
				})
			}

			if user.Role != role {
				logger.Warn("Role check failed",
					zap.String("user_id", user.UserID),
					zap.String("required_role", role),
					zap.String("role", user.Role))
				return c.JSON(http.StatusForbidden, echo.Map{
					"error":   "FORBIDDEN",
					"message": "Insufficient permissions",
				})
			}

			return next(c)
		}
	}
}

func parseRequest(c echo.Context, config JWTConfig) (*AuthUser, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("missing authorization header")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, fmt.Errorf("authorization header is not a bearer token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	userID, _ := claims["sub"].(string)
	if userID == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &AuthUser{
		UserID: userID,
		Email:  email,
		Role:   role,
	}, nil
}

func setUser(c echo.Context, user *AuthUser) {
	ctx := context.WithValue(c.Request().Context(), userContextKey, user)
	c.SetRequest(c.Request().WithContext(ctx))
	c.Set("user_id", user.UserID)
}

// GetUserFromContext extracts the authenticated user from the request context
func GetUserFromContext(c echo.Context) (*AuthUser, error) {
	user, ok := c.Request().Context().Value(userContextKey).(*AuthUser)
	if !ok || user == nil {
		return nil, fmt.Errorf("no authenticated user found in context")
	}
	return user, nil
}
