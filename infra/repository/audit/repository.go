// Package audit implements the append-only audit log repository on gorm.
package audit

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

// New creates a gorm-backed AuditRepository.
func New(db *gorm.DB) repository.AuditRepository {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, e *domain.AuditEntry) error {
	return infrarepo.MapGormErrorToDomain(
		r.db.WithContext(ctx).Create(mapDomainToModel(e)).Error)
}

func (r *repo) List(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	var models []AuditLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Limit(limit).Find(&models).Error
	if err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModels(models), nil
}

func (r *repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.AuditEntry, error) {
	var models []AuditLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&models).Error
	if err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModels(models), nil
}

func mapModels(models []AuditLog) []*domain.AuditEntry {
	out := make([]*domain.AuditEntry, 0, len(models))
	for i := range models {
		out = append(out, mapModelToDomain(&models[i]))
	}
	return out
}
