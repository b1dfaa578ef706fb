package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// localUserID is the fiber locals key carrying the authenticated subject.
// Content handlers do not consume it; it is attached for access logs and any
// outer layers mounted on the same app.
const localUserID = "user_id"

// requireAdmin gates /admin/* behind an HS256 bearer token. An empty secret
// rejects every request instead of leaving the admin surface open.
func (s *Server) requireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if s.cfg.JWTSecret == "" {
			return fiber.NewError(fiber.StatusForbidden, "admin API is not configured")
		}

		token, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		claims := jwt.MapClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(s.cfg.JWTSecret), nil
		})
		if err != nil || !parsed.Valid {
			s.log.Warn("admin token rejected", "path", c.Path(), "error", errString(err))
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		if sub, ok := claims["sub"].(string); ok && sub != "" {
			c.Locals(localUserID, sub)
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "malformed authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

func errString(err error) string {
	if err == nil {
		return "token marked invalid"
	}
	return err.Error()
}
