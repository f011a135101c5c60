// Package user implements the employee repository on gorm.
package user

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	infrarepo "github.com/geldtransfer/backoffice/infra/repository"
	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/pkg/repository"
)

type repo struct {
	db *gorm.DB
}

// New creates a gorm-backed UserRepository.
func New(db *gorm.DB) repository.UserRepository {
	return &repo{db: db}
}

func (r *repo) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var m User
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModelToDomain(&m), nil
}

func (r *repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModelToDomain(&m), nil
}

func (r *repo) List(ctx context.Context) ([]*domain.User, error) {
	var models []User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	out := make([]*domain.User, 0, len(models))
	for i := range models {
		out = append(out, mapModelToDomain(&models[i]))
	}
	return out, nil
}

func (r *repo) Create(ctx context.Context, u *domain.User) error {
	return infrarepo.MapGormErrorToDomain(
		r.db.WithContext(ctx).Create(mapDomainToModel(u)).Error)
}

func (r *repo) Update(ctx context.Context, u *domain.User) error {
	return infrarepo.MapGormErrorToDomain(
		r.db.WithContext(ctx).Model(&User{}).Where("id = ?", u.ID).
			Updates(map[string]interface{}{
				"name":          u.Name,
				"email":         u.Email,
				"role":          string(u.Role),
				"password_hash": u.PasswordHash,
				"active":        u.Active,
			}).Error)
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	return infrarepo.MapGormErrorToDomain(
		r.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error)
}

func (r *repo) ExistsByRole(ctx context.Context, role domain.Role) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).
		Where("role = ?", string(role)).Count(&count).Error
	if err != nil {
		return false, infrarepo.MapGormErrorToDomain(err)
	}
	return count > 0, nil
}
