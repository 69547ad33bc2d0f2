package mocks

import (
	"context"

	"campus-sync/core/push"

	"github.com/stretchr/testify/mock"
)

// Dispatcher is a mock implementation of push.Dispatcher
type Dispatcher struct {
	mock.Mock
}

func (m *Dispatcher) Send(ctx context.Context, n push.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
