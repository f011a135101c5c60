// Package auth provides login, token issuing and session extraction. The
// engine trusts the verified token's claims per request; credentials are
// only checked at login.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/geldtransfer/backoffice/pkg/config"
	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/pkg/dto"
	"github.com/geldtransfer/backoffice/pkg/repository"
	"github.com/geldtransfer/backoffice/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Service authenticates employees and issues session tokens.
type Service struct {
	uow    repository.UnitOfWork
	cfg    config.JwtConfig
	logger *slog.Logger
}

// New creates an auth Service.
func New(uow repository.UnitOfWork, cfg config.JwtConfig, logger *slog.Logger) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// Login verifies the credentials of an active employee and returns a signed
// token. Unknown username, wrong password and inactive account all produce
// the same ErrInvalidCredentials so the response does not leak which it was.
func (s *Service) Login(
	ctx context.Context,
	username, password string,
) (*dto.LoginResult, error) {
	log := s.logger.With("context", "Login", "username", username)

	var u *domain.User
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = users.GetByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrInvalidCredentials
			}
			return err
		}
		if !u.Active {
			return domain.ErrInvalidCredentials
		}
		if !utils.CheckPasswordHash(password, u.PasswordHash) {
			return domain.ErrInvalidCredentials
		}
		audits, err := uow.AuditRepository()
		if err != nil {
			return err
		}
		return audits.Create(ctx, domain.NewAuditEntry(u.ID, domain.ActionLogin,
			fmt.Sprintf("login: %s", u.Username)))
	})
	if err != nil {
		log.Warn("login rejected", "error", err)
		return nil, err
	}

	token, err := s.GenerateToken(u)
	if err != nil {
		log.Error("token generation failed", "error", err)
		return nil, err
	}
	log.Info("login successful", "userID", u.ID, "role", u.Role)
	return &dto.LoginResult{
		Token: token,
		User: dto.EmployeeRead{
			ID:        u.ID,
			Username:  u.Username,
			Name:      u.Name,
			Email:     u.Email,
			Role:      string(u.Role),
			Active:    u.Active,
			CreatedAt: u.CreatedAt,
		},
	}, nil
}

// GenerateToken signs an HS256 token carrying the session claims.
func (s *Service) GenerateToken(u *domain.User) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = u.ID.String()
	claims["username"] = u.Username
	claims["role"] = string(u.Role)
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	return token.SignedString([]byte(s.cfg.Secret))
}

// SessionFromToken builds the explicit session value from a verified token.
func SessionFromToken(token *jwt.Token) (domain.Session, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Session{}, domain.ErrUnauthorized
	}
	rawID, ok := claims["user_id"].(string)
	if !ok {
		return domain.Session{}, domain.ErrUnauthorized
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return domain.Session{}, domain.ErrUnauthorized
	}
	rawRole, _ := claims["role"].(string)
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return domain.Session{}, domain.ErrUnauthorized
	}
	return domain.Session{UserID: userID, Role: role}, nil
}
