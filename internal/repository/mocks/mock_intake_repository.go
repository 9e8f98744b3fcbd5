package mocks

import (
	"context"

	"casewrite/internal/model"
	"casewrite/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockIntakeRepository struct {
	mock.Mock
}

func (m *MockIntakeRepository) Record(ctx context.Context, rec *model.IntakeRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockIntakeRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.IntakeRecord], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.IntakeRecord]), args.Error(1)
}
