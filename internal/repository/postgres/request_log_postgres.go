package postgres

import (
	"context"
	"database/sql"
	"time"

	"webbasics/internal/model"
	"webbasics/internal/repository"
)

// RequestLogPostgres is a PostgreSQL implementation of repository.RequestLogRepository.
type RequestLogPostgres struct {
	db *sql.DB
}

// NewRequestLogPostgres creates a new RequestLogPostgres repository.
func NewRequestLogPostgres(db *sql.DB) *RequestLogPostgres {
	return &RequestLogPostgres{db: db}
}

var _ repository.RequestLogRepository = (*RequestLogPostgres)(nil)

// Create inserts a request_logs row.
func (r *RequestLogPostgres) Create(ctx context.Context, rec model.RequestRecord) error {
	const q = `
		INSERT INTO request_logs (logged_at, method, url, request_id)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, q, rec.Timestamp, rec.Method, rec.URL, nullString(rec.RequestID))
	return err
}

// CountSince counts rows logged at or after since.
func (r *RequestLogPostgres) CountSince(ctx context.Context, since time.Time) (int, error) {
	const q = `SELECT COUNT(*) FROM request_logs WHERE logged_at >= $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, since).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
