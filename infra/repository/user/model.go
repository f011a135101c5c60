package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/geldtransfer/backoffice/pkg/domain"
)

// User is the gorm model for the users table.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Username     string    `gorm:"uniqueIndex;not null;size:50"`
	Name         string    `gorm:"not null;size:100"`
	Email        *string   `gorm:"size:255"`
	Role         string    `gorm:"not null;size:20;index"`
	PasswordHash string    `gorm:"not null;size:100"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func mapModelToDomain(m *User) *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Name:         m.Name,
		Email:        m.Email,
		Role:         domain.Role(m.Role),
		PasswordHash: m.PasswordHash,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
	}
}

func mapDomainToModel(u *domain.User) *User {
	return &User{
		ID:           u.ID,
		Username:     u.Username,
		Name:         u.Name,
		Email:        u.Email,
		Role:         string(u.Role),
		PasswordHash: u.PasswordHash,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
	}
}
