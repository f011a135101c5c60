// Package employee provides management of back-office employee accounts.
// Every operation is gated to admin/owner and audited.
package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/pkg/dto"
	"github.com/geldtransfer/backoffice/pkg/repository"
	"github.com/geldtransfer/backoffice/pkg/utils"
	"github.com/google/uuid"
)

var adminRoles = []domain.Role{domain.RoleAdmin, domain.RoleOwner}

// Service provides employee account management.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates an employee Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

func (s *Service) authorize(session domain.Session, action string) error {
	if !session.Authenticated() {
		return domain.ErrUnauthorized
	}
	if !session.HasRole(adminRoles...) {
		return &domain.ForbiddenError{
			Reason: fmt.Sprintf("only admins or the owner may %s employees", action),
		}
	}
	return nil
}

// Create registers a new active employee. Usernames are unique; the owner
// role cannot be granted through this operation.
func (s *Service) Create(
	ctx context.Context,
	session domain.Session,
	input dto.EmployeeCreate,
) (*dto.EmployeeRead, error) {
	log := s.logger.With("context", "Create")
	if err := s.authorize(session, "create"); err != nil {
		return nil, err
	}
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleOwner {
		return nil, domain.NewValidationError("role", "the owner role cannot be assigned")
	}
	var email *string
	if input.Email != "" {
		email = &input.Email
	}
	u, err := domain.NewUser(input.Username, input.Name, input.Password, role, email)
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		existing, err := users.GetByUsername(ctx, u.Username)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if existing != nil {
			return domain.ErrUsernameTaken
		}
		if err := users.Create(ctx, u); err != nil {
			return err
		}
		return s.audit(ctx, uow, session.UserID, domain.ActionEmployeeCreate,
			fmt.Sprintf("employee created: %s (%s)", u.Username, u.Role))
	})
	if err != nil {
		log.Error("create failed", "username", input.Username, "error", err)
		return nil, err
	}
	log.Info("employee created", "id", u.ID, "role", u.Role)
	return mapToRead(u), nil
}

// Update applies an explicit patch field by field to the stored record.
func (s *Service) Update(
	ctx context.Context,
	session domain.Session,
	id uuid.UUID,
	patch dto.EmployeeUpdate,
) (*dto.EmployeeRead, error) {
	log := s.logger.With("context", "Update", "id", id)
	if err := s.authorize(session, "update"); err != nil {
		return nil, err
	}

	var u *domain.User
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = users.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := applyPatch(u, patch); err != nil {
			return err
		}
		if err := users.Update(ctx, u); err != nil {
			return err
		}
		return s.audit(ctx, uow, session.UserID, domain.ActionEmployeeUpdate,
			fmt.Sprintf("employee updated: %s", u.Username))
	})
	if err != nil {
		log.Error("update failed", "error", err)
		return nil, err
	}
	log.Info("employee updated")
	return mapToRead(u), nil
}

// Delete removes an employee account. Users referenced by historical
// transfers (as creator or canceller) cannot be deleted; this restriction
// keeps the audit trail free of dangling actor references.
func (s *Service) Delete(
	ctx context.Context,
	session domain.Session,
	id uuid.UUID,
) error {
	log := s.logger.With("context", "Delete", "id", id)
	if err := s.authorize(session, "delete"); err != nil {
		return err
	}

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err := users.Get(ctx, id)
		if err != nil {
			return err
		}
		transfers, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		referenced, err := transfers.ReferencesUser(ctx, id)
		if err != nil {
			return err
		}
		if referenced {
			return domain.ErrUserReferenced
		}
		if err := users.Delete(ctx, id); err != nil {
			return err
		}
		return s.audit(ctx, uow, session.UserID, domain.ActionEmployeeDelete,
			fmt.Sprintf("employee deleted: %s", u.Username))
	})
	if err != nil {
		log.Error("delete failed", "error", err)
		return err
	}
	log.Info("employee deleted")
	return nil
}

// Toggle flips the employee's active flag. Inactive employees cannot log in.
func (s *Service) Toggle(
	ctx context.Context,
	session domain.Session,
	id uuid.UUID,
) (*dto.EmployeeRead, error) {
	log := s.logger.With("context", "Toggle", "id", id)
	if err := s.authorize(session, "toggle"); err != nil {
		return nil, err
	}

	var u *domain.User
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = users.Get(ctx, id)
		if err != nil {
			return err
		}
		u.Active = !u.Active
		if err := users.Update(ctx, u); err != nil {
			return err
		}
		return s.audit(ctx, uow, session.UserID, domain.ActionEmployeeToggle,
			fmt.Sprintf("employee status changed: %s, active: %t", u.Username, u.Active))
	})
	if err != nil {
		log.Error("toggle failed", "error", err)
		return nil, err
	}
	log.Info("employee status changed", "active", u.Active)
	return mapToRead(u), nil
}

// ResetPassword sets a new password for the employee.
func (s *Service) ResetPassword(
	ctx context.Context,
	session domain.Session,
	id uuid.UUID,
	password string,
) error {
	log := s.logger.With("context", "ResetPassword", "id", id)
	if err := s.authorize(session, "reset passwords for"); err != nil {
		return err
	}
	if len(password) < domain.MinPasswordLen {
		return domain.NewValidationError("password", "must be at least 4 characters")
	}

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err := users.Get(ctx, id)
		if err != nil {
			return err
		}
		hash, err := utils.HashPassword(password)
		if err != nil {
			return err
		}
		u.PasswordHash = hash
		if err := users.Update(ctx, u); err != nil {
			return err
		}
		return s.audit(ctx, uow, session.UserID, domain.ActionEmployeePasswordReset,
			fmt.Sprintf("password reset for: %s", u.Username))
	})
	if err != nil {
		log.Error("password reset failed", "error", err)
		return err
	}
	log.Info("password reset")
	return nil
}

// Whoami returns the session's own account. Any authenticated session may
// look itself up.
func (s *Service) Whoami(
	ctx context.Context,
	session domain.Session,
) (*dto.EmployeeRead, error) {
	if !session.Authenticated() {
		return nil, domain.ErrUnauthorized
	}

	var u *domain.User
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = users.Get(ctx, session.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return mapToRead(u), nil
}

// List returns all employees, newest first.
func (s *Service) List(
	ctx context.Context,
	session domain.Session,
) ([]*dto.EmployeeRead, error) {
	if err := s.authorize(session, "list"); err != nil {
		return nil, err
	}

	var out []*dto.EmployeeRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		list, err := users.List(ctx)
		if err != nil {
			return err
		}
		out = make([]*dto.EmployeeRead, 0, len(list))
		for _, u := range list {
			out = append(out, mapToRead(u))
		}
		return nil
	})
	if err != nil {
		s.logger.Error("list failed", "error", err)
		return nil, err
	}
	return out, nil
}

func applyPatch(u *domain.User, patch dto.EmployeeUpdate) error {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if len(name) < domain.MinNameLen {
			return domain.NewValidationError("name", "must be at least 2 characters")
		}
		u.Name = name
	}
	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		if email == "" {
			u.Email = nil
		} else {
			if !utils.IsEmail(email) {
				return domain.NewValidationError("email", "invalid email address")
			}
			u.Email = &email
		}
	}
	if patch.Role != nil {
		role, err := domain.ParseRole(*patch.Role)
		if err != nil {
			return err
		}
		if role == domain.RoleOwner {
			return domain.NewValidationError("role", "the owner role cannot be assigned")
		}
		u.Role = role
	}
	if patch.Active != nil {
		u.Active = *patch.Active
	}
	return nil
}

func (s *Service) audit(
	ctx context.Context,
	uow repository.UnitOfWork,
	actor uuid.UUID,
	action, details string,
) error {
	audits, err := uow.AuditRepository()
	if err != nil {
		return err
	}
	return audits.Create(ctx, domain.NewAuditEntry(actor, action, details))
}

func mapToRead(u *domain.User) *dto.EmployeeRead {
	return &dto.EmployeeRead{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
