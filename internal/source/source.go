package source

import (
	"context"

	"github.com/relwatch/update-backend/internal/model"
)

// FetchQuery addresses one release endpoint request.
type FetchQuery struct {
	Endpoint  string
	AuthToken string
}

// ReleaseSource loads the latest release from a remote endpoint.
type ReleaseSource interface {
	FetchLatest(ctx context.Context, query FetchQuery) (*model.RemoteRelease, error)
}
