// Package employee provides the employee management endpoints.
package employee

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/geldtransfer/backoffice/pkg/config"
	"github.com/geldtransfer/backoffice/pkg/dto"
	"github.com/geldtransfer/backoffice/pkg/middleware"
	employeesvc "github.com/geldtransfer/backoffice/pkg/service/employee"
	"github.com/geldtransfer/backoffice/webapi/common"
)

// Routes registers the employee endpoints. Authorization is enforced in the
// service layer; the routes only require a verified token.
func Routes(app *fiber.App, svc *employeesvc.Service, cfg *config.AppConfig) {
	guard := middleware.JwtProtected(cfg.Jwt)
	app.Post("/employees", guard, Create(svc))
	app.Get("/employees", guard, List(svc))
	app.Patch("/employees/:id", guard, Update(svc))
	app.Delete("/employees/:id", guard, Delete(svc))
	app.Post("/employees/:id/toggle", guard, Toggle(svc))
	app.Post("/employees/:id/password", guard, ResetPassword(svc))
}

// Create registers a new employee account.
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param request body dto.EmployeeCreate true "Employee details"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /employees [post]
// @Security Bearer
func Create(svc *employeesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := middleware.SessionFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[dto.EmployeeCreate](c)
		if input == nil {
			return err
		}
		u, err := svc.Create(c.Context(), session, *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create employee", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Employee created", u)
	}
}

// List returns all employee accounts.
// @Summary List employees
// @Tags employees
// @Produce json
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /employees [get]
// @Security Bearer
func List(svc *employeesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := middleware.SessionFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		list, err := svc.List(c.Context(), session)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list employees", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Employees", list)
	}
}

// Update applies a partial update to an employee account.
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body dto.EmployeeUpdate true "Fields to update"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /employees/{id} [patch]
// @Security Bearer
func Update(svc *employeesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := middleware.SessionFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid employee ID", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[dto.EmployeeUpdate](c)
		if input == nil {
			return err
		}
		u, err := svc.Update(c.Context(), session, id, *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update employee", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Employee updated", u)
	}
}

// Delete removes an employee account.
// @Summary Delete an employee
// @Description Fails while historical transfers still reference the employee.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /employees/{id} [delete]
// @Security Bearer
func Delete(svc *employeesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := middleware.SessionFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid employee ID", err, fiber.StatusBadRequest)
		}
		if err := svc.Delete(c.Context(), session, id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete employee", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Employee deleted", nil)
	}
}

// Toggle flips the employee's active flag.
// @Summary Toggle employee active status
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /employees/{id}/toggle [post]
// @Security Bearer
func Toggle(svc *employeesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := middleware.SessionFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid employee ID", err, fiber.StatusBadRequest)
		}
		u, err := svc.Toggle(c.Context(), session, id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to toggle employee", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Employee status changed", u)
	}
}

// ResetPassword sets a new password for the employee.
// @Summary Reset an employee's password
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body dto.PasswordReset true "New password"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /employees/{id}/password [post]
// @Security Bearer
func ResetPassword(svc *employeesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := middleware.SessionFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid employee ID", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[dto.PasswordReset](c)
		if input == nil {
			return err
		}
		if err := svc.ResetPassword(c.Context(), session, id, input.Password); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to reset password", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Password reset", nil)
	}
}
