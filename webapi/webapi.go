// Package webapi provides HTTP handlers and API endpoints for the transfer
// back office. It is organized into sub-packages per domain:
// - auth: login and session endpoints
// - transfer: ledger and totals endpoints
// - employee: employee management endpoints
// - audit: audit log endpoint
package webapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"github.com/geldtransfer/backoffice/pkg/app"
	auditweb "github.com/geldtransfer/backoffice/webapi/audit"
	authweb "github.com/geldtransfer/backoffice/webapi/auth"
	"github.com/geldtransfer/backoffice/webapi/common"
	employeeweb "github.com/geldtransfer/backoffice/webapi/employee"
	transferweb "github.com/geldtransfer/backoffice/webapi/transfer"
)

// SetupApp initializes Fiber with the application routes and middleware.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		WithCredentials:      true,
		PersistAuthorization: true,
		OAuth2RedirectUrl:    "/auth/login",
	}))

	// Rate limiting keyed by client IP; uses X-Forwarded-For when behind a
	// proxy, falling back to X-Real-IP and then the direct IP.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Geldtransfer back office is running")
	})

	authweb.Routes(fiberApp, a.AuthService, a.EmployeeService, a.Config)
	transferweb.Routes(fiberApp, a.TransferService, a.Config)
	employeeweb.Routes(fiberApp, a.EmployeeService, a.Config)
	auditweb.Routes(fiberApp, a.AuditService, a.Config)
	return fiberApp
}
