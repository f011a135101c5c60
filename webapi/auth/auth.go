// Package auth provides the authentication endpoints.
package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/geldtransfer/backoffice/pkg/config"
	"github.com/geldtransfer/backoffice/pkg/dto"
	"github.com/geldtransfer/backoffice/pkg/middleware"
	authsvc "github.com/geldtransfer/backoffice/pkg/service/auth"
	"github.com/geldtransfer/backoffice/pkg/service/employee"
	"github.com/geldtransfer/backoffice/webapi/common"
)

// Routes registers the auth endpoints.
func Routes(app *fiber.App, svc *authsvc.Service, empSvc *employee.Service, cfg *config.AppConfig) {
	app.Post("/auth/login", Login(svc))
	app.Post("/auth/logout", middleware.JwtProtected(cfg.Jwt), Logout())
	app.Get("/auth/whoami", middleware.JwtProtected(cfg.Jwt), Whoami(empSvc))
}

// Login authenticates an employee and returns a bearer token.
// @Summary Employee login
// @Description Authenticate with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Router /auth/login [post]
func Login(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.LoginRequest](c)
		if input == nil {
			return err
		}
		result, err := svc.Login(c.Context(), input.Username, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Login failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Login successful", result)
	}
}

// Logout acknowledges a logout. Tokens are stateless; the client discards
// its copy and the token expires on its own.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} common.Response
// @Router /auth/logout [post]
// @Security Bearer
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Logged out", nil)
	}
}

// Whoami returns the account behind the current session token.
// @Summary Current session account
// @Tags auth
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /auth/whoami [get]
// @Security Bearer
func Whoami(empSvc *employee.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := middleware.SessionFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		u, err := empSvc.Whoami(c.Context(), session)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Current account", u)
	}
}
