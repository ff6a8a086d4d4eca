package reqlog

import (
	"context"
	"fmt"

	"webbasics/internal/model"
	"webbasics/internal/repository"
)

// RepositoryWriter stores records through a RequestLogRepository.
type RepositoryWriter struct {
	repo repository.RequestLogRepository
}

// NewRepositoryWriter wraps repo as a Writer.
func NewRepositoryWriter(repo repository.RequestLogRepository) *RepositoryWriter {
	return &RepositoryWriter{repo: repo}
}

func (w *RepositoryWriter) Write(ctx context.Context, rec model.RequestRecord) error {
	if err := w.repo.Create(ctx, rec); err != nil {
		return fmt.Errorf("store request log: %w", err)
	}
	return nil
}
