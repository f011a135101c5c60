// Package transfer provides the transfer ledger endpoints: recording,
// listing, totals, cancellation, deletion and CSV export.
package transfer

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/geldtransfer/backoffice/pkg/config"
	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/pkg/dto"
	"github.com/geldtransfer/backoffice/pkg/middleware"
	transfersvc "github.com/geldtransfer/backoffice/pkg/service/transfer"
	"github.com/geldtransfer/backoffice/webapi/common"
)

// Routes registers the transfer endpoints. All of them require a session.
func Routes(app *fiber.App, svc *transfersvc.Service, cfg *config.AppConfig) {
	guard := middleware.JwtProtected(cfg.Jwt)
	app.Post("/transfers", guard, Create(svc))
	app.Get("/transfers", guard, List(svc))
	app.Get("/transfers/totals", guard, Totals(svc))
	app.Get("/transfers/export", guard, Export(svc))
	app.Post("/transfers/:id/cancel", guard, Cancel(svc))
	app.Delete("/transfers/:id", guard, Delete(svc))
}

// Create records a new posted transfer.
// @Summary Record a transfer
// @Description Records a posted money transfer. Amounts accept both comma and dot decimal notation.
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body dto.TransferCreate true "Transfer details"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Router /transfers [post]
// @Security Bearer
func Create(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := middleware.SessionFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[dto.TransferCreate](c)
		if input == nil {
			return err
		}
		t, err := svc.Create(c.Context(), session, *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to record transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transfer recorded", t)
	}
}

// List returns non-deleted transfers matching the query filters.
// @Summary List transfers
// @Tags transfers
// @Produce json
// @Param provider query string false "Provider filter (WU, RIA, MONEYGRAM)"
// @Param type query string false "Type filter (SEND, PAYOUT, DEDUCTION)"
// @Param status query string false "Status filter (posted, cancelled)"
// @Param reference query string false "Reference substring filter"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD), inclusive"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /transfers [get]
// @Security Bearer
func List(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := middleware.SessionFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		filter, err := filterFromQuery(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid date filter", err, fiber.StatusBadRequest)
		}
		list, err := svc.List(c.Context(), session, filter)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list transfers", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfers", list)
	}
}

// Totals returns the signed aggregate over the visible transfer set.
// @Summary Transfer totals
// @Description Signed sum of amounts and fees. Cancelled transfers and payouts count negative.
// @Tags transfers
// @Produce json
// @Param provider query string false "Provider filter"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD), inclusive"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /transfers/totals [get]
// @Security Bearer
func Totals(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := middleware.SessionFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		from, to, err := dto.ParseDateRange(c.Query("from"), c.Query("to"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid date filter", err, fiber.StatusBadRequest)
		}
		totals, err := svc.Totals(c.Context(), session, dto.TotalsFilter{
			Provider: c.Query("provider"),
			From:     from,
			To:       to,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to compute totals", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Totals", totals)
	}
}

// Cancel transitions a posted transfer to cancelled.
// @Summary Cancel a transfer
// @Tags transfers
// @Accept json
// @Produce json
// @Param id path string true "Transfer ID"
// @Param request body CancelRequest true "Cancellation reason"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /transfers/{id}/cancel [post]
// @Security Bearer
func Cancel(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := middleware.SessionFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transfer ID", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[CancelRequest](c)
		if input == nil {
			return err
		}
		t, err := svc.Cancel(c.Context(), session, id, input.Reason)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to cancel transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer cancelled", t)
	}
}

// CancelRequest carries the reason for a cancellation.
type CancelRequest struct {
	Reason string `json:"reason" validate:"required,min=5,max=500"`
}

// Delete soft-deletes a transfer.
// @Summary Delete a transfer
// @Description Soft-deletes a transfer. Admin or owner only.
// @Tags transfers
// @Produce json
// @Param id path string true "Transfer ID"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /transfers/{id} [delete]
// @Security Bearer
func Delete(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := middleware.SessionFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transfer ID", err, fiber.StatusBadRequest)
		}
		t, err := svc.Delete(c.Context(), session, id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer deleted", t)
	}
}

// Export streams the filtered transfer listing as CSV.
// @Summary Export transfers as CSV
// @Tags transfers
// @Produce text/csv
// @Param provider query string false "Provider filter"
// @Param type query string false "Type filter"
// @Param status query string false "Status filter"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD), inclusive"
// @Success 200 {string} string "CSV payload"
// @Failure 401 {object} common.ProblemDetails
// @Router /transfers/export [get]
// @Security Bearer
func Export(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := middleware.SessionFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		filter, err := filterFromQuery(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid date filter", err, fiber.StatusBadRequest)
		}
		list, err := svc.List(c.Context(), session, filter)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to export transfers", err)
		}

		var sb strings.Builder
		w := csv.NewWriter(&sb)
		_ = w.Write([]string{"id", "provider", "type", "amount", "fee", "reference", "status", "cancel_reason", "created_at"})
		for _, t := range list {
			ref, reason := "", ""
			if t.Reference != nil {
				ref = *t.Reference
			}
			if t.CancelReason != nil {
				reason = *t.CancelReason
			}
			_ = w.Write([]string{
				t.ID.String(),
				t.Provider,
				t.Type,
				fmt.Sprintf("%.2f", t.Amount),
				fmt.Sprintf("%.2f", t.Fee),
				ref,
				t.Status,
				reason,
				t.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to export transfers", err)
		}

		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="transfers.csv"`)
		return c.SendString(sb.String())
	}
}

func filterFromQuery(c *fiber.Ctx) (dto.TransferFilter, error) {
	from, to, err := dto.ParseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return dto.TransferFilter{}, domain.NewValidationError("date", err.Error())
	}
	return dto.TransferFilter{
		Provider:  c.Query("provider"),
		Type:      c.Query("type"),
		Status:    c.Query("status"),
		Reference: c.Query("reference"),
		From:      from,
		To:        to,
	}, nil
}
