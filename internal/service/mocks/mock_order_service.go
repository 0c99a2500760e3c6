package mocks

import (
	"context"

	"bakeryapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Handoff(ctx context.Context, req service.OrderRequest) (*service.OrderHandoff, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OrderHandoff), args.Error(1)
}
