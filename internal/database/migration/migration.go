package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"webbasics/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_request_logs",
		SQL: `CREATE TABLE IF NOT EXISTS request_logs (
  id         BIGSERIAL   PRIMARY KEY,
  logged_at  TIMESTAMPTZ NOT NULL,
  method     TEXT        NOT NULL,
  url        TEXT        NOT NULL,
  request_id TEXT
);`,
	},
	{
		Name: "create_index_request_logs_logged_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_request_logs_logged_at ON request_logs (logged_at);`,
	},
}

// EnsureMigrated creates the request_logs schema unless it already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *logging.Logger, dbHost string) error {
	start := time.Now()
	log = log.With("database")

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.request_logs') IS NOT NULL").Scan(&exists); err != nil {
		log.Error("db_migration_failed", err, map[string]any{
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("check request_logs table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip", map[string]any{
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed", err, map[string]any{
				"migration_step": step.Name,
				"db_host":        dbHost,
				"duration_ms":    time.Since(start).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step", map[string]any{
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	log.Info("db_migration_success", map[string]any{
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}
