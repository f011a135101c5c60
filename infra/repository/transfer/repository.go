// Package transfer implements the transfer repository on gorm.
package transfer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	infrarepo "github.com/geldtransfer/backoffice/infra/repository"
	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/pkg/dto"
	"github.com/geldtransfer/backoffice/pkg/repository"
)

type repo struct {
	db *gorm.DB
}

// New creates a gorm-backed TransferRepository.
func New(db *gorm.DB) repository.TransferRepository {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, t *domain.MoneyTransfer) error {
	return infrarepo.MapGormErrorToDomain(
		r.db.WithContext(ctx).Create(mapDomainToModel(t)).Error)
}

func (r *repo) Get(ctx context.Context, id uuid.UUID) (*domain.MoneyTransfer, error) {
	var m MoneyTransfer
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModelToDomain(&m), nil
}

func (r *repo) List(ctx context.Context, f dto.TransferFilter) ([]*domain.MoneyTransfer, error) {
	q := r.db.WithContext(ctx).Model(&MoneyTransfer{}).
		Where("status <> ?", string(domain.StatusDeleted))
	if f.Provider != "" {
		q = q.Where("provider = ?", f.Provider)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Reference != "" {
		q = q.Where("reference LIKE ?", "%"+f.Reference+"%")
	}
	q = applyDateRange(q, f.From, f.To)

	var models []MoneyTransfer
	if err := q.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModels(models), nil
}

func (r *repo) ListForTotals(ctx context.Context, f dto.TotalsFilter) ([]*domain.MoneyTransfer, error) {
	q := r.db.WithContext(ctx).Model(&MoneyTransfer{}).
		Where("status <> ?", string(domain.StatusDeleted))
	if f.Provider != "" {
		q = q.Where("provider = ?", f.Provider)
	}
	q = applyDateRange(q, f.From, f.To)

	var models []MoneyTransfer
	if err := q.Find(&models).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModels(models), nil
}

func (r *repo) UpdateStatusIf(
	ctx context.Context,
	id uuid.UUID,
	from domain.TransferStatus,
	patch repository.TransferPatch,
) (int64, error) {
	res := r.db.WithContext(ctx).Model(&MoneyTransfer{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]interface{}{
			"status":          string(patch.Status),
			"cancel_reason":   patch.CancelReason,
			"cancelled_at":    patch.CancelledAt,
			"cancelled_by_id": patch.CancelledByID,
		})
	if res.Error != nil {
		return 0, infrarepo.MapGormErrorToDomain(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *repo) MarkDeleted(ctx context.Context, id uuid.UUID) error {
	return infrarepo.MapGormErrorToDomain(
		r.db.WithContext(ctx).Model(&MoneyTransfer{}).
			Where("id = ?", id).
			Update("status", string(domain.StatusDeleted)).Error)
}

func (r *repo) ReferencesUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&MoneyTransfer{}).
		Where("created_by_id = ? OR cancelled_by_id = ?", userID, userID).
		Count(&count).Error
	if err != nil {
		return false, infrarepo.MapGormErrorToDomain(err)
	}
	return count > 0, nil
}

func applyDateRange(q *gorm.DB, from, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at <= ?", *to)
	}
	return q
}

func mapModels(models []MoneyTransfer) []*domain.MoneyTransfer {
	out := make([]*domain.MoneyTransfer, 0, len(models))
	for i := range models {
		out = append(out, mapModelToDomain(&models[i]))
	}
	return out
}
