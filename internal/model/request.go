// Package model contains the transient values passed between layers.
// Nothing here outlives a single request or process run.
package model

import (
	"fmt"
	"time"
)

// TimestampLayout renders timestamps the way an ISO-8601 UTC clock with
// millisecond precision does, e.g. 2024-05-01T09:30:00.123Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// RequestRecord describes one incoming request. It is written once and never
// read back by the servers themselves.
type RequestRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Method    string    `json:"method"`
	URL       string    `json:"url"`
	RequestID string    `json:"request_id,omitempty"`
}

// NewRequestRecord stamps a record with the given time normalized to UTC.
func NewRequestRecord(at time.Time, method, url, requestID string) RequestRecord {
	return RequestRecord{
		Timestamp: at.UTC(),
		Method:    method,
		URL:       url,
		RequestID: requestID,
	}
}

// FormatTimestamp returns t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// LogLine is the request-file format, terminated by a newline:
//
//	[<timestamp>] Method: <method>, URL: <url>
func (r RequestRecord) LogLine() string {
	return fmt.Sprintf("[%s] Method: %s, URL: %s\n", FormatTimestamp(r.Timestamp), r.Method, r.URL)
}

// ConsoleLine is the format printed by the routed server's logging step.
func (r RequestRecord) ConsoleLine() string {
	return fmt.Sprintf("[%s] Request: %s %s", FormatTimestamp(r.Timestamp), r.Method, r.URL)
}
