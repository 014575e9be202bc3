package repo

import (
	"context"

	"github.com/relwatch/update-backend/internal/model/types"

	"gorm.io/gorm"
)

type Target struct {
	db *gorm.DB
}

func NewTarget(db *gorm.DB) *Target {
	return &Target{
		db: db,
	}
}

func (r *Target) CreateTx(tx *gorm.DB, target *types.Target) error {
	return tx.Create(target).Error
}

func (r *Target) GetBySlug(ctx context.Context, slug string) (*types.Target, error) {
	var target types.Target
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&target).Error
	if err != nil {
		return nil, err
	}
	return &target, nil
}

func (r *Target) ExistsBySlugTx(tx *gorm.DB, slug string) (bool, error) {
	var count int64
	err := tx.Model(&types.Target{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *Target) List(ctx context.Context) ([]types.Target, error) {
	var targets []types.Target
	err := r.db.WithContext(ctx).Order("slug").Find(&targets).Error
	if err != nil {
		return nil, err
	}
	return targets, nil
}

func (r *Target) DeleteBySlug(ctx context.Context, slug string) (int64, error) {
	ret := r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&types.Target{})
	return ret.RowsAffected, ret.Error
}

func (r *Target) UpdateInstalledVersion(ctx context.Context, slug, version string) (int64, error) {
	ret := r.db.WithContext(ctx).
		Model(&types.Target{}).
		Where("slug = ?", slug).
		Update("installed_version", version)
	return ret.RowsAffected, ret.Error
}
