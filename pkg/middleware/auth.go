// Package middleware provides request guards for protected routes.
package middleware

import (
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/geldtransfer/backoffice/pkg/config"
	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/pkg/service/auth"
)

// JwtProtected verifies the bearer token and stores it in c.Locals("user").
func JwtProtected(cfg config.JwtConfig) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if strings.Contains(strings.ToLower(err.Error()), "missing or malformed") {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

// SessionFromCtx extracts the session placed by JwtProtected. It returns
// ErrUnauthorized when no verified token is present.
func SessionFromCtx(c *fiber.Ctx) (domain.Session, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return domain.Session{}, domain.ErrUnauthorized
	}
	return auth.SessionFromToken(token)
}
