package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"webbasics/internal/model"
)

type MockRequestLogRepository struct {
	mock.Mock
}

func (m *MockRequestLogRepository) Create(ctx context.Context, rec model.RequestRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRequestLogRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}
