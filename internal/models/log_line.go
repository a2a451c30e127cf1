package models

// LogLine is one request extracted from a raw access-log line.
type LogLine struct {
	Endpoint  string
	Latency   float64 // seconds, as written by nginx $request_time
	UserAgent string
}
