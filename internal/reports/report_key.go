package reports

import (
	"fmt"
	"strings"
	"time"
)

const (
	reportKeyPrefix  = "report-"
	reportKeySuffix  = ".html"
	reportDateLayout = "2006-01-02"
)

// ReportKey names the report of a calendar date, e.g. report-2017-06-30.html.
func ReportKey(date time.Time) string {
	return fmt.Sprintf("%s%s%s", reportKeyPrefix, date.Format(reportDateLayout), reportKeySuffix)
}

// ParseReportDate parses a YYYY-MM-DD report date.
func ParseReportDate(value string) (time.Time, error) {
	return time.Parse(reportDateLayout, value)
}

// reportDateFromKey is the inverse of ReportKey.
func reportDateFromKey(key string) (time.Time, bool) {
	if !strings.HasPrefix(key, reportKeyPrefix) || !strings.HasSuffix(key, reportKeySuffix) {
		return time.Time{}, false
	}
	date, err := ParseReportDate(strings.TrimSuffix(strings.TrimPrefix(key, reportKeyPrefix), reportKeySuffix))
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
