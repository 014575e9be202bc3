package vercomp

import (
	"fmt"
	"strings"
	"time"
)

// CompactLayout matches timestamp-style tags such as 20250204114023.
const CompactLayout = "20060102150405"

type DateTimeParser struct {
	Layouts []string // supported date formats
}

func (p *DateTimeParser) Name() string {
	return "DateTimeParser"
}

func (p *DateTimeParser) CanParse(v string) bool {
	v = strings.TrimPrefix(v, "v")
	for _, layout := range p.Layouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}

func (p *DateTimeParser) Parse(v string) (interface{}, error) {
	v = strings.TrimPrefix(v, "v")
	for _, layout := range p.Layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("unsupported datetime format")
}

func (p *DateTimeParser) Compare(a, b interface{}) int {
	timeA := a.(time.Time)
	timeB := b.(time.Time)
	if timeA.Before(timeB) {
		return Less
	} else if timeA.After(timeB) {
		return Greater
	}
	return Equal
}
