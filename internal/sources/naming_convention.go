package sources

import (
	"strings"
	"time"

	"log-analyzer/internal/models"
)

// NamingConvention describes how rotated access logs are named, e.g.
// nginx-access-ui.log-20170630 or nginx-access-ui.log-20170630.gz.
type NamingConvention struct {
	ProductMarker string // must appear in every eligible name
	PlainMarker   string // a "-" segment of an uncompressed log must contain it
	CompressedExt string
	DateLayout    string // layout of the last "-" segment
}

const segmentDelimiter = "-"

func DefaultNamingConvention() NamingConvention {
	return NamingConvention{
		ProductMarker: "nginx",
		PlainMarker:   "ui.log",
		CompressedExt: ".gz",
		DateLayout:    "20060102",
	}
}

// Parse returns the LogSource described by name, or false when name is not an
// eligible log file or its date token cannot be parsed.
func (c NamingConvention) Parse(name string) (*models.LogSource, bool) {
	if !strings.Contains(name, c.ProductMarker) {
		return nil, false
	}

	compressed := c.CompressedExt != "" && strings.HasSuffix(name, c.CompressedExt)
	base := name
	if compressed {
		base = strings.TrimSuffix(name, c.CompressedExt)
	}

	segments := strings.Split(base, segmentDelimiter)
	if len(segments) < 2 {
		return nil, false
	}
	if !compressed && !containsMarker(segments[:len(segments)-1], c.PlainMarker) {
		return nil, false
	}

	date, err := time.Parse(c.DateLayout, segments[len(segments)-1])
	if err != nil {
		return nil, false
	}

	return &models.LogSource{
		Key:        name,
		Date:       date,
		Compressed: compressed,
	}, true
}

func containsMarker(segments []string, marker string) bool {
	for _, segment := range segments {
		if strings.Contains(segment, marker) {
			return true
		}
	}
	return false
}
