package source

import (
	"github.com/relwatch/update-backend/internal/config"
)

// NewReleaseSource builds the default release source from config.
func NewReleaseSource(conf *config.Config) ReleaseSource {
	return NewGitHubSource(conf.Checker.FetchTimeout)
}
