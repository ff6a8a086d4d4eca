package reqlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webbasics/internal/logging"
	repoMocks "webbasics/internal/repository/mocks"
)

func TestLogErrors(t *testing.T) {
	tests := []struct {
		name     string
		writer   Writer
		wantMsg  string
		wantSink any
	}{
		{name: "file", writer: NewFileWriter("requests.txt"), wantMsg: "Error writing to log file:", wantSink: "file"},
		{name: "database", writer: NewRepositoryWriter(new(repoMocks.MockRequestLogRepository)), wantMsg: "Error storing request log:", wantSink: "database"},
		{name: "other", writer: &memWriter{}, wantMsg: "request_log_write_failed", wantSink: "*reqlog.memWriter"},
		{name: "closed", writer: nil, wantMsg: "request_log_refused", wantSink: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			report := LogErrors(logging.New(&buf, time.UTC))

			report(tt.writer, rec("GET", "/about?x=1"), errors.New("boom"))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "error", entry["level"])
			assert.Equal(t, tt.wantMsg, entry["msg"])
			assert.Equal(t, "boom", entry["error"])
			assert.Equal(t, "/about?x=1", entry["url"])
			assert.Equal(t, tt.wantSink, entry["sink"])
		})
	}
}

func TestLogErrors_FilePath(t *testing.T) {
	var buf bytes.Buffer
	LogErrors(logging.New(&buf, time.UTC))(NewFileWriter("logs/requests.txt"), rec("GET", "/"), errors.New("denied"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "logs/requests.txt", entry["path"])
}
