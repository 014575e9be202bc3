package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/relwatch/update-backend/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

const latestReleaseBody = `{
	"tag_name": "v1.3.0",
	"name": "v1.3.0",
	"body": "bugfixes",
	"html_url": "https://example.com/releases/v1.3.0",
	"published_at": "2025-02-04T11:40:23Z",
	"assets": [
		{"name": "plugin.zip", "content_type": "application/zip", "size": 1024, "browser_download_url": "https://example.com/dl/plugin.zip"}
	]
}`

func TestGitHubSourceFetchLatest(t *testing.T) {
	var gotAccept, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(latestReleaseBody))
	}))
	defer srv.Close()

	s := NewGitHubSource(time.Second)
	release, err := s.FetchLatest(context.Background(), FetchQuery{
		Endpoint:  srv.URL,
		AuthToken: "s3cret",
	})
	require.NoError(t, err)

	require.Equal(t, "application/json", gotAccept)
	require.Equal(t, "Bearer s3cret", gotAuth)

	require.Equal(t, "v1.3.0", release.TagName)
	require.Equal(t, "https://example.com/dl/plugin.zip", release.DownloadURL)
	require.Equal(t, "bugfixes", release.ReleaseNotes)
	require.False(t, release.PublishedAt.IsZero())
	require.NotEmpty(t, release.Digest)
}

func TestGitHubSourceNoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(latestReleaseBody))
	}))
	defer srv.Close()

	s := NewGitHubSource(time.Second)
	_, err := s.FetchLatest(context.Background(), FetchQuery{Endpoint: srv.URL})
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestGitHubSourceDownloadURLFallsBackToReleasePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name": "v2.0.0", "html_url": "https://example.com/releases/v2.0.0"}`))
	}))
	defer srv.Close()

	s := NewGitHubSource(time.Second)
	release, err := s.FetchLatest(context.Background(), FetchQuery{Endpoint: srv.URL})
	require.NoError(t, err)
	require.Equal(t, "https://example.com/releases/v2.0.0", release.DownloadURL)
}

func TestGitHubSourceErrors(t *testing.T) {
	testCases := []struct {
		Name     string
		Handler  http.HandlerFunc
		Expected error
	}{
		{
			Name: "ServerError",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			Expected: errs.ErrReleaseUnreachable,
		},
		{
			Name:     "EmptyBody",
			Handler:  func(w http.ResponseWriter, r *http.Request) {},
			Expected: errs.ErrReleaseUnreachable,
		},
		{
			Name: "MalformedJSON",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"tag_name": `))
			},
			Expected: errs.ErrReleaseMalformed,
		},
		{
			Name: "MissingTagName",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"name": "nightly"}`))
			},
			Expected: errs.ErrReleaseMalformed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			srv := httptest.NewServer(tc.Handler)
			defer srv.Close()

			s := NewGitHubSource(time.Second)
			release, err := s.FetchLatest(context.Background(), FetchQuery{Endpoint: srv.URL})
			require.Nil(t, release)
			require.ErrorIs(t, err, tc.Expected)
		})
	}
}

func TestGitHubSourceTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(latestReleaseBody))
	}))
	defer srv.Close()

	s := NewGitHubSource(50 * time.Millisecond)
	_, err := s.FetchLatest(context.Background(), FetchQuery{Endpoint: srv.URL})
	require.ErrorIs(t, err, errs.ErrReleaseUnreachable)
}
