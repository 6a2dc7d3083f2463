package identity

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/provider"
)

// JWTVerifier verifies tokens issued by the external identity provider using
// the shared HMAC signing secret.
type JWTVerifier struct {
	secret string
	logger *zap.Logger
}

// NewJWTVerifier creates a verifier for the external provider's tokens.
func NewJWTVerifier(secret string, logger *zap.Logger) *JWTVerifier {
	return &JWTVerifier{secret: secret, logger: logger}
}

func (v *JWTVerifier) Verify(ctx context.Context, tokenString string) (*provider.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.secret), nil
	})
	if err != nil {
		v.logger.Warn("External token verification failed", zap.Error(err))
		return nil, fmt.Errorf("token verification failed: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	email, _ := claims["email"].(string)
	emailVerified, _ := claims["email_verified"].(bool)

	return &provider.Identity{
		Subject:       subject,
		Email:         email,
		EmailVerified: emailVerified,
	}, nil
}
