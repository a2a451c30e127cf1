package models

import "time"

// LogSource identifies the rotated access-log file picked for a run.
type LogSource struct {
	Key        string    `json:"key"`
	Date       time.Time `json:"date"`
	Compressed bool      `json:"compressed"`
}
