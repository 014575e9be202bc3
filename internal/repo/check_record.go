package repo

import (
	"context"

	"github.com/relwatch/update-backend/internal/model/types"

	"gorm.io/gorm"
)

type CheckRecord struct {
	db *gorm.DB
}

func NewCheckRecord(db *gorm.DB) *CheckRecord {
	return &CheckRecord{
		db: db,
	}
}

func (r *CheckRecord) Create(ctx context.Context, record *types.CheckRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *CheckRecord) ListByTarget(ctx context.Context, targetID string, limit int) ([]types.CheckRecord, error) {
	var records []types.CheckRecord
	err := r.db.WithContext(ctx).
		Where("target_id = ?", targetID).
		Order("checked_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
