package source

import (
	"context"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/relwatch/update-backend/internal/model"
	"github.com/relwatch/update-backend/internal/pkg/errs"

	"github.com/bytedance/sonic"
	"github.com/minio/sha256-simd"
	"github.com/pkg/errors"
)

const DefaultFetchTimeout = 10 * time.Second

// GitHubSource fetches release metadata from GitHub-style JSON
// endpoints. Any endpoint answering the latest-release shape works,
// self-hosted forges included.
type GitHubSource struct {
	client *http.Client
}

func NewGitHubSource(timeout time.Duration) *GitHubSource {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &GitHubSource{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *GitHubSource) FetchLatest(ctx context.Context, query FetchQuery) (*model.RemoteRelease, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, query.Endpoint, nil)
	if err != nil {
		return nil, errs.ErrReleaseUnreachable.Wrap(errors.WithMessage(err, "building release request"))
	}
	req.Header.Set("Accept", "application/json")
	if query.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+query.AuthToken)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errs.ErrReleaseUnreachable.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.ErrReleaseUnreachable.Wrap(errors.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.ErrReleaseUnreachable.Wrap(err)
	}
	if len(body) == 0 {
		return nil, errs.ErrReleaseUnreachable.Wrap(errors.New("empty response body"))
	}

	var payload releasePayload
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return nil, errs.ErrReleaseMalformed.Wrap(err)
	}
	if payload.TagName == "" {
		return nil, errs.ErrReleaseMalformed.Wrap(errors.New("missing tag_name"))
	}

	digest := sha256.Sum256(body)

	return &model.RemoteRelease{
		TagName:      payload.TagName,
		DownloadURL:  payload.downloadURL(),
		PublishedAt:  payload.PublishedAt,
		ReleaseNotes: payload.Body,
		Digest:       hex.EncodeToString(digest[:]),
	}, nil
}
