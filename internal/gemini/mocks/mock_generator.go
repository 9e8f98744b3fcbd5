package mocks

import (
	"context"

	"casewrite/internal/gemini"

	"github.com/stretchr/testify/mock"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateContent(ctx context.Context, model string, req *gemini.GenerateContentRequest) (string, error) {
	args := m.Called(ctx, model, req)
	return args.String(0), args.Error(1)
}
