package repo

import (
	"context"

	"github.com/relwatch/update-backend/internal/model/types"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{
		db: db,
	}
}

// Migrate creates or updates the schema for all persisted types.
func (r *Repo) Migrate() error {
	return r.db.AutoMigrate(
		&types.Target{},
		&types.CheckRecord{},
	)
}

func (r *Repo) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
