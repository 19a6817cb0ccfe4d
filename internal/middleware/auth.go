package middleware

import (
	"context"
	"strings"

	"tienda/internal/config"
	"tienda/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// ClaimsKey is the fiber.Ctx local holding *models.UserClaims.
const ClaimsKey = "claims"

// TokenStore persists the session's auth token, standing in for the
// browser's old localStorage "token" entry.
type TokenStore interface {
	SetToken(ctx context.Context, sessionID, token string) error
	Token(ctx context.Context, sessionID string) (string, error)
	DeleteToken(ctx context.Context, sessionID string) error
}

// AuthMiddleware resolves the request identity. It never rejects a
// request: the checkout flow decides per operation whether a user or a
// token is required.
type AuthMiddleware struct {
	tokens TokenStore
	log    *zap.Logger
}

func NewAuthMiddleware(tokens TokenStore, logger *zap.Logger) *AuthMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{tokens: tokens, log: logger}
}

// Handler attaches claims to the request when an identity is available.
// A Bearer token in the Authorization header wins and is persisted for
// the session; otherwise the stored token is used. Invalid stored
// tokens are dropped so the session reads as logged out.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	sid := SessionID(c)

	if token := bearerToken(c); token != "" {
		claims, err := parseClaims(token)
		if err != nil {
			m.log.Warn("rejected bearer token", zap.Error(err))
			return c.Next()
		}
		if err := m.tokens.SetToken(c.Context(), sid, token); err != nil {
			m.log.Error("failed to persist session token", zap.Error(err))
		}
		c.Locals(ClaimsKey, claims)
		return c.Next()
	}

	stored, err := m.tokens.Token(c.Context(), sid)
	if err != nil {
		m.log.Error("token lookup failed", zap.Error(err))
		return c.Next()
	}
	if stored == "" {
		return c.Next()
	}

	claims, err := parseClaims(stored)
	if err != nil {
		m.log.Warn("dropping invalid stored token", zap.Error(err))
		_ = m.tokens.DeleteToken(c.Context(), sid)
		return c.Next()
	}
	c.Locals(ClaimsKey, claims)
	return c.Next()
}

// Claims returns the authenticated user's claims, or nil.
func Claims(c *fiber.Ctx) *models.UserClaims {
	claims, _ := c.Locals(ClaimsKey).(*models.UserClaims)
	return claims
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func parseClaims(tokenString string) (*models.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.UserClaims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(config.GetEnv("JWT_SECRET", "tienda")), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
