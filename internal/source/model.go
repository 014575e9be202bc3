package source

import "time"

// releasePayload is the wire shape of a GitHub-style latest-release
// endpoint. Only tag_name is required, everything else passes through
// as available.
type releasePayload struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	Body        string    `json:"body"`
	Draft       bool      `json:"draft"`
	Prerelease  bool      `json:"prerelease"`
	HTMLURL     string    `json:"html_url"`
	PublishedAt time.Time `json:"published_at"`
	Assets      []asset   `json:"assets"`
}

type asset struct {
	Name               string `json:"name"`
	ContentType        string `json:"content_type"`
	Size               int64  `json:"size"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// downloadURL prefers the first downloadable asset and falls back to
// the release page.
func (p *releasePayload) downloadURL() string {
	for _, a := range p.Assets {
		if a.BrowserDownloadURL != "" {
			return a.BrowserDownloadURL
		}
	}
	return p.HTMLURL
}
