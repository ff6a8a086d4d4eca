package reqlog

import (
	"fmt"

	"webbasics/internal/logging"
	"webbasics/internal/model"
)

// LogErrors reports recorder failures on log, tagging each entry with the
// sink the record was headed for.
func LogErrors(log *logging.Logger) ErrorFunc {
	return func(w Writer, rec model.RequestRecord, err error) {
		fields := map[string]any{"method": rec.Method, "url": rec.URL}
		switch w := w.(type) {
		case *FileWriter:
			fields["sink"] = "file"
			fields["path"] = w.Path()
			log.Error("Error writing to log file:", err, fields)
		case *RepositoryWriter:
			fields["sink"] = "database"
			log.Error("Error storing request log:", err, fields)
		case nil:
			log.Error("request_log_refused", err, fields)
		default:
			fields["sink"] = fmt.Sprintf("%T", w)
			log.Error("request_log_write_failed", err, fields)
		}
	}
}
