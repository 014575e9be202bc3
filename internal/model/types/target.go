package types

import "time"

// Target is a registered piece of software whose releases get watched.
type Target struct {
	ID                string    `gorm:"primaryKey;size:27" json:"id"`
	Slug              string    `gorm:"uniqueIndex;size:128;not null" json:"slug"`
	Name              string    `gorm:"size:255" json:"name,omitempty"`
	ReleaseEndpoint   string    `gorm:"size:1024;not null" json:"release_endpoint"`
	AuthToken         string    `gorm:"size:255" json:"-"`
	InstalledVersion  string    `gorm:"size:64;not null" json:"installed_version"`
	IncludeMinorBumps bool      `json:"include_minor_bumps"`
	CacheEnabled      bool      `json:"cache_enabled"`
	CacheTTLSeconds   int64     `json:"cache_ttl_seconds"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CheckRecord is one audit row per performed target check.
type CheckRecord struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TargetID        string    `gorm:"index;size:27;not null" json:"target_id"`
	CurrentVersion  string    `gorm:"size:64" json:"current_version"`
	LatestVersion   string    `gorm:"size:64" json:"latest_version"`
	UpdateAvailable bool      `json:"update_available"`
	Stale           bool      `json:"stale"`
	Error           string    `gorm:"size:512" json:"error,omitempty"`
	CheckedAt       time.Time `gorm:"autoCreateTime;index" json:"checked_at"`
}
