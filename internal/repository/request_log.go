// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"context"
	"time"

	"webbasics/internal/model"
)

// RequestLogRepository persists request records using SQL queries only.
type RequestLogRepository interface {
	// Create inserts one record.
	Create(ctx context.Context, rec model.RequestRecord) error

	// CountSince returns how many records were stored at or after since.
	CountSince(ctx context.Context, since time.Time) (int, error)
}
