package model

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestRecord_LogLine(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 30, 0, 123_000_000, time.UTC)
	rec := NewRequestRecord(at, "GET", "/about?x=1", "")

	assert.Equal(t, "[2024-05-01T09:30:00.123Z] Method: GET, URL: /about?x=1\n", rec.LogLine())
}

func TestRequestRecord_ConsoleLine(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	rec := NewRequestRecord(at, "POST", "/contact", "rid")

	assert.Equal(t, "[2024-05-01T09:30:00.000Z] Request: POST /contact", rec.ConsoleLine())
}

func TestNewRequestRecord_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	at := time.Date(2024, 5, 1, 16, 0, 0, 0, loc)

	rec := NewRequestRecord(at, "GET", "/", "")

	assert.Equal(t, time.UTC, rec.Timestamp.Location())
	assert.Regexp(t, regexp.MustCompile(`^\[2024-05-01T09:00:00\.000Z\] `), rec.LogLine())
}
