package parsers

import (
	"regexp"
	"strconv"
	"strings"

	"log-analyzer/internal/models"
)

// nginx ui_short format:
//
//	$remote_addr  $remote_user $http_x_real_ip [$time_local] "$request" $status $body_bytes_sent
//	"$http_referer" "$http_user_agent" "$http_x_forwarded_for" "$http_X_REQUEST_ID" "$http_X_RB_USER"
//	$request_time
var (
	lineRegexp = regexp.MustCompile(
		`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3} -?.+ - \[.*?\]\s"[A-Z]{3}\s(/.*?)\sHTTP/\d\.\d".*\s(\d+(?:\.\d+)?)$`)
	quotedFieldRegexp = regexp.MustCompile(`"([^"]*)"`)
)

const userAgentFieldIndex = 2 // request, referer, user agent

//go:generate mockgen -source=log_line_matcher.go -destination=./mocks/log_line_matcher_mock.go -package=mocks
type LogLineMatcher interface {
	// Match extracts a LogLine from raw. It returns false for any line that is not
	// in the recognized shape.
	Match(raw string) (*models.LogLine, bool)
}

type logLineMatcher struct{}

func NewLogLineMatcher() LogLineMatcher {
	return &logLineMatcher{}
}

func (m *logLineMatcher) Match(raw string) (*models.LogLine, bool) {
	raw = strings.TrimRight(raw, "\r\n")
	groups := lineRegexp.FindStringSubmatch(raw)
	if groups == nil {
		return nil, false
	}

	endpoint := strings.Fields(groups[1])[0]
	latency, err := strconv.ParseFloat(groups[2], 64)
	if err != nil || latency < 0 {
		return nil, false
	}

	return &models.LogLine{
		Endpoint:  endpoint,
		Latency:   latency,
		UserAgent: userAgent(raw),
	}, true
}

// userAgent returns the user agent quoted field, or "" when the line has none.
func userAgent(raw string) string {
	fields := quotedFieldRegexp.FindAllStringSubmatch(raw, userAgentFieldIndex+1)
	if len(fields) <= userAgentFieldIndex {
		return ""
	}
	ua := strings.TrimSpace(fields[userAgentFieldIndex][1])
	if ua == "-" {
		return ""
	}
	return ua
}
