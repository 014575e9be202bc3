package vercomp

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

type SemVerParser struct{}

func parseSemVer(v string) (*semver.Version, error) {
	// tags commonly carry a leading v
	return semver.StrictNewVersion(strings.TrimPrefix(v, "v"))
}

func (p *SemVerParser) Name() string {
	return "SemVerParser"
}

func (p *SemVerParser) CanParse(v string) bool {
	_, err := parseSemVer(v)
	return err == nil
}

func (p *SemVerParser) Parse(v string) (interface{}, error) {
	return parseSemVer(v)
}

func (p *SemVerParser) Compare(a, b interface{}) int {
	verA := a.(*semver.Version)
	verB := b.(*semver.Version)
	return verA.Compare(verB)
}
