package model

import "time"

// ReleaseQuery carries everything one check needs. It is immutable for
// the duration of the check.
type ReleaseQuery struct {
	Identifier        string
	CurrentVersion    string
	ReleaseEndpoint   string
	AuthToken         string
	IncludeMinorBumps bool
	CacheEnabled      bool
	CacheKey          string
	CacheTTL          time.Duration
}

// Key returns the cache key for the query, falling back to the
// identifier when none was set.
func (q ReleaseQuery) Key() string {
	if q.CacheKey != "" {
		return q.CacheKey
	}
	return q.Identifier
}

// RemoteRelease is the parsed shape of a release endpoint payload.
type RemoteRelease struct {
	TagName      string    `json:"tag_name"`
	DownloadURL  string    `json:"download_url,omitempty"`
	PublishedAt  time.Time `json:"published_at,omitempty"`
	ReleaseNotes string    `json:"release_notes,omitempty"`
	// Digest is the sha256 of the raw payload the release was parsed
	// from, useful for detecting re-tagged releases.
	Digest string `json:"digest,omitempty"`
}

type UpdateResult struct {
	UpdateAvailable bool      `json:"update_available"`
	CurrentVersion  string    `json:"current_version"`
	LatestVersion   string    `json:"latest_version,omitempty"`
	DownloadURL     string    `json:"download_url,omitempty"`
	ReleaseNotes    string    `json:"release_notes,omitempty"`
	PublishedAt     time.Time `json:"published_at,omitempty"`
	// Stale marks a result served from a last-known snapshot after a
	// failed refresh.
	Stale bool `json:"stale,omitempty"`
	// Err is never nil together with UpdateAvailable=true. Callers
	// must check it before trusting the result.
	Err error `json:"-"`
}

// TargetCheckOutcome pairs a registered target with its check result
// during a sweep.
type TargetCheckOutcome struct {
	Slug   string       `json:"slug"`
	Result UpdateResult `json:"result"`
	Error  string       `json:"error,omitempty"`
}
