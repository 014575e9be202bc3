package vercomp

import (
	"time"

	"github.com/Masterminds/semver/v3"
)

// compare result
const (
	Less    = -1
	Equal   = 0
	Greater = 1
)

type CompareResult struct {
	Comparable bool
	Result     int // Less, Equal or Greater; meaningless when not comparable
}

type Parser interface {
	CanParse(version string) bool
	Parse(version string) (interface{}, error)
	Compare(a, b interface{}) int
}

type VersionComparator struct {
	parsers []Parser
}

func NewComparator() *VersionComparator {
	return &VersionComparator{
		parsers: []Parser{
			&SemVerParser{}, // 1: SemVer
			&DateTimeParser{ // 2: DateTime
				Layouts: []string{
					time.RFC3339,
					time.DateTime,
					CompactLayout,
				},
			},
		},
	}
}

func (c *VersionComparator) AddParser(p Parser) {
	c.parsers = append(c.parsers, p)
}

func (c *VersionComparator) Compare(v1, v2 string) CompareResult {
	// try parsing both versions
	parsed1, parser := c.parseVersion(v1)
	parsed2, _ := c.parseVersion(v2)

	// must use the same type of parser
	if parser != nil && parser == c.getParserForValue(parsed2) {
		return CompareResult{
			Comparable: true,
			Result:     parser.Compare(parsed1, parsed2),
		}
	}
	return CompareResult{Comparable: false}
}

// Eligible reports whether remote should be surfaced as an update over
// current. Ordering is full precedence comparison; when includeMinor is
// false a remote that does not raise the major component is suppressed.
// The gate only has meaning for semver-shaped versions, datetime tags
// pass through on plain ordering.
func (c *VersionComparator) Eligible(current, remote string, includeMinor bool) (bool, bool) {
	ret := c.Compare(remote, current)
	if !ret.Comparable {
		return false, false
	}
	if ret.Result != Greater {
		return false, true
	}
	if !includeMinor {
		cur, err1 := parseSemVer(current)
		rem, err2 := parseSemVer(remote)
		if err1 == nil && err2 == nil && rem.Major() <= cur.Major() {
			return false, true
		}
	}
	return true, true
}

func (c *VersionComparator) parseVersion(v string) (interface{}, Parser) {
	for _, p := range c.parsers {
		if p.CanParse(v) {
			if parsed, err := p.Parse(v); err == nil {
				return parsed, p
			}
		}
	}
	return nil, nil
}

func (c *VersionComparator) getParserForValue(val interface{}) Parser {
	for _, p := range c.parsers {
		switch val.(type) {
		case *semver.Version:
			if _, ok := p.(*SemVerParser); ok {
				return p
			}
		case time.Time:
			if _, ok := p.(*DateTimeParser); ok {
				return p
			}
		}
	}
	return nil
}
