package provider

import (
	"github.com/relwatch/update-backend/internal/logic"
	"github.com/relwatch/update-backend/internal/source"

	"github.com/google/wire"
)

var LogicSet = wire.NewSet(
	source.NewReleaseSource,
	logic.NewCheckerLogic,
	logic.NewTargetLogic,
)
