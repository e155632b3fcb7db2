package middleware

import (
	"errors"
	"strings"

	"skillnuron/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxEmailKey = "email"
	CtxRoleKey  = "role"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxEmailKey, claims.Email())
		c.Locals(CtxRoleKey, claims.Role)

		return c.Next()
	}
}

// EmailFromCtx returns the authenticated caller's email set by Middleware.
func EmailFromCtx(c fiber.Ctx) (string, bool) {
	email, ok := c.Locals(CtxEmailKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
