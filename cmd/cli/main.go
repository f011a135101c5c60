package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/geldtransfer/backoffice/infra"
	infraseed "github.com/geldtransfer/backoffice/infra/seed"
	"github.com/geldtransfer/backoffice/pkg/config"
	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/pkg/dto"
	"github.com/geldtransfer/backoffice/pkg/repository"
	"github.com/geldtransfer/backoffice/pkg/service/employee"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	logger := slog.Default()
	cfg, err := config.Load(logger)
	if err != nil {
		fail("failed to load configuration: %v", err)
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		fail("failed to connect to database: %v", err)
	}
	if err := infra.AutoMigrate(db); err != nil {
		fail("failed to migrate schema: %v", err)
	}
	uow := infra.NewUoW(db)

	switch os.Args[1] {
	case "seed":
		if err := infraseed.Run(context.Background(), uow, logger); err != nil {
			fail("seeding failed: %v", err)
		}
		color.Green("Seeding complete")
	case "create-employee":
		createEmployee(uow, logger)
	default:
		fmt.Println("Unknown command:", os.Args[1])
		usage()
	}
}

func usage() {
	fmt.Println("Usage: backoffice-cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  seed                                         bootstrap the demo accounts")
	fmt.Println("  create-employee <username> <name> <role>     create an employee (prompts for password)")
}

// createEmployee runs as the owner so that bootstrap administration works
// without an existing admin account.
func createEmployee(uow repository.UnitOfWork, logger *slog.Logger) {
	if len(os.Args) < 5 {
		fmt.Println("Usage: backoffice-cli create-employee <username> <name> <role>")
		return
	}
	username, name, role := os.Args[2], os.Args[3], os.Args[4]

	fmt.Print("Password: ")
	password, err := term.ReadPassword(syscall.Stdin)
	fmt.Println()
	if err != nil {
		fail("failed to read password: %v", err)
	}

	svc := employee.New(uow, logger)
	ownerSession := domain.Session{UserID: cliActorID(uow), Role: domain.RoleOwner}
	u, err := svc.Create(context.Background(), ownerSession, dto.EmployeeCreate{
		Username: username,
		Name:     name,
		Password: strings.TrimSpace(string(password)),
		Role:     role,
	})
	if err != nil {
		fail("failed to create employee: %v", err)
	}
	color.Green("Employee created: %s (%s)", u.Username, u.Role)
}

// cliActorID resolves the owner account so audit entries name a real actor.
func cliActorID(uow repository.UnitOfWork) (id uuid.UUID) {
	_ = uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		owner, err := users.GetByUsername(context.Background(), "owner")
		if err != nil {
			return err
		}
		id = owner.ID
		return nil
	})
	return id
}

func fail(format string, args ...any) {
	color.Red(format, args...)
	os.Exit(1)
}
