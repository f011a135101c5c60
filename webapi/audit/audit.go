// Package audit provides the audit log endpoint.
package audit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/geldtransfer/backoffice/pkg/config"
	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/pkg/middleware"
	auditsvc "github.com/geldtransfer/backoffice/pkg/service/audit"
	"github.com/geldtransfer/backoffice/webapi/common"
)

// Routes registers the audit endpoints.
func Routes(app *fiber.App, svc *auditsvc.Service, cfg *config.AppConfig) {
	app.Get("/audit", middleware.JwtProtected(cfg.Jwt), List(svc))
}

// List returns the newest audit entries.
// @Summary Read the audit log
// @Description Newest entries first. Admin or owner only.
// @Tags audit
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Param user query string false "Filter by acting user id"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Router /audit [get]
// @Security Bearer
func List(svc *auditsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := middleware.SessionFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		var userID *uuid.UUID
		if raw := c.Query("user"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid user filter",
					domain.NewValidationError("user", "must be a valid user id"))
			}
			userID = &id
		}
		entries, err := svc.List(c.Context(), session, userID, c.QueryInt("limit"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to read audit log", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Audit log", entries)
	}
}
