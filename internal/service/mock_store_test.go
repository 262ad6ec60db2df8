package service_test

import (
	"context"

	"github.com/finance-visualizer/backend/internal/models"
	"github.com/finance-visualizer/backend/internal/validate"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) List(ctx context.Context) ([]models.Transaction, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Transaction)
	return list, args.Error(1)
}

func (m *mockStore) Get(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Transaction), args.Error(1)
}

func (m *mockStore) Create(ctx context.Context, t validate.Transaction) (models.Transaction, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(models.Transaction), args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, id uuid.UUID, t validate.Transaction) (models.Transaction, error) {
	args := m.Called(ctx, id, t)
	return args.Get(0).(models.Transaction), args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockStore) Close() error {
	return m.Called().Error(0)
}
