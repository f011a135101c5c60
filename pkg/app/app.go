// Package app assembles the services from their shared dependencies.
package app

import (
	"log/slog"

	"github.com/geldtransfer/backoffice/pkg/config"
	"github.com/geldtransfer/backoffice/pkg/repository"
	auditsvc "github.com/geldtransfer/backoffice/pkg/service/audit"
	authsvc "github.com/geldtransfer/backoffice/pkg/service/auth"
	employeesvc "github.com/geldtransfer/backoffice/pkg/service/employee"
	transfersvc "github.com/geldtransfer/backoffice/pkg/service/transfer"
)

// Deps contains the shared dependencies of all services.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
}

// App holds the wired services and the configuration.
type App struct {
	Deps   *Deps
	Config *config.AppConfig

	AuthService     *authsvc.Service
	TransferService *transfersvc.Service
	EmployeeService *employeesvc.Service
	AuditService    *auditsvc.Service
}

// New wires all services over the shared unit of work.
func New(deps *Deps, cfg *config.AppConfig) *App {
	return &App{
		Deps:            deps,
		Config:          cfg,
		AuthService:     authsvc.New(deps.Uow, cfg.Jwt, deps.Logger),
		TransferService: transfersvc.New(deps.Uow, deps.Logger),
		EmployeeService: employeesvc.New(deps.Uow, deps.Logger),
		AuditService:    auditsvc.New(deps.Uow, deps.Logger),
	}
}
