package model

type CheckUpdateRequest struct {
	Identifier        string `json:"identifier" validate:"required,slug"`
	CurrentVersion    string `json:"current_version" validate:"required"`
	ReleaseEndpoint   string `json:"release_endpoint" validate:"required,url"`
	AuthToken         string `json:"auth_token"`
	IncludeMinorBumps bool   `json:"include_minor_bumps"`
	CacheEnabled      *bool  `json:"cache_enabled"`
	CacheKey          string `json:"cache_key"`
	CacheTTLSeconds   int64  `json:"cache_ttl_seconds" validate:"gte=0"`
}

type CreateTargetRequest struct {
	Slug              string `json:"slug" validate:"required,slug"`
	Name              string `json:"name"`
	ReleaseEndpoint   string `json:"release_endpoint" validate:"required,url"`
	AuthToken         string `json:"auth_token"`
	InstalledVersion  string `json:"installed_version" validate:"required"`
	IncludeMinorBumps bool   `json:"include_minor_bumps"`
	CacheEnabled      *bool  `json:"cache_enabled"`
	CacheTTLSeconds   int64  `json:"cache_ttl_seconds" validate:"gte=0"`
}

type BumpInstalledRequest struct {
	InstalledVersion string `json:"installed_version" validate:"required"`
}
