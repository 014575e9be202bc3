package provider

import (
	"github.com/relwatch/update-backend/internal/repo"

	"github.com/google/wire"
)

var RepoSet = wire.NewSet(
	repo.NewRepo,
	repo.NewTarget,
	repo.NewCheckRecord,
)
