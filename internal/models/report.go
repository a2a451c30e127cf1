package models

import "time"

// EndpointSummary is one row of the latency report. JSON names are the ones the
// report template reads.
//
// Example JSON:
//
//	{
//	  "url": "/api/v2/banner/25019354",
//	  "count": 2,
//	  "count_perc": 0.004,
//	  "time_sum": 0.78,
//	  "time_perc": 0.012,
//	  "time_avg": 0.39,
//	  "time_max": 0.401,
//	  "time_med": 0.39
//	}
type EndpointSummary struct {
	URL       string  `json:"url"`
	Count     uint64  `json:"count"`
	CountPerc float64 `json:"count_perc"`
	TimeSum   float64 `json:"time_sum"`
	TimePerc  float64 `json:"time_perc"`
	TimeAvg   float64 `json:"time_avg"`
	TimeMax   float64 `json:"time_max"`
	TimeMed   float64 `json:"time_med"`

	// RawTimeSum is TimeSum before rounding, used for ranking only.
	RawTimeSum float64 `json:"-"`
}

// ClientSummary is one row of the client (user agent family) breakdown.
type ClientSummary struct {
	Client    string  `json:"client"`
	Count     uint64  `json:"count"`
	CountPerc float64 `json:"count_perc"`
}

// Report is the finalized, not yet ranked content of a daily report.
type Report struct {
	Date          time.Time
	Endpoints     []*EndpointSummary
	Clients       []*ClientSummary
	TotalRequests uint64
	TotalTime     float64
}

func (r *Report) IsEmpty() bool {
	return len(r.Endpoints) == 0
}
