package jobs

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStalledOrdersHandler is a mock implementation of stalledOrdersHandler.
type MockStalledOrdersHandler struct {
	mock.Mock
}

func (m *MockStalledOrdersHandler) Handle(
	ctx context.Context, query queries.GetStalledOrdersQuery,
) ([]queries.GetStalledOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	stalled, _ := args.Get(0).([]queries.GetStalledOrdersQueryResponse)
	return stalled, args.Error(1)
}

func TestSweep_PassesCutoffDerivedFromThreshold(t *testing.T) {
	handler := new(MockStalledOrdersHandler)
	var gotCutoff time.Time
	handler.On("Handle", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			query, ok := args.Get(1).(queries.GetStalledOrdersQuery)
			require.True(t, ok)
			gotCutoff = query.Cutoff()
		}).
		Return([]queries.GetStalledOrdersQueryResponse{}, nil)

	job := NewStalledOrderJob(handler, 48*time.Hour, slog.Default())
	job.sweep()

	expected := time.Now().UTC().Add(-48 * time.Hour)
	assert.WithinDuration(t, expected, gotCutoff, 5*time.Second)
	handler.AssertExpectations(t)
}

func TestSweep_StalledOrders_AreReported(t *testing.T) {
	handler := new(MockStalledOrdersHandler)
	handler.On("Handle", mock.Anything, mock.Anything).Return([]queries.GetStalledOrdersQueryResponse{
		{
			ID:           kernel.NewUUID(),
			Customer:     "Acme Metalworks",
			Status:       order.Machining,
			LastActivity: time.Now().UTC().Add(-72 * time.Hour),
		},
	}, nil)

	job := NewStalledOrderJob(handler, 48*time.Hour, slog.Default())
	job.sweep()

	handler.AssertExpectations(t)
}

func TestSweep_HandlerFailure_DoesNotPanic(t *testing.T) {
	handler := new(MockStalledOrdersHandler)
	handler.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("database offline"))

	job := NewStalledOrderJob(handler, 48*time.Hour, slog.Default())

	assert.NotPanics(t, job.sweep)
	handler.AssertExpectations(t)
}

func TestJobManager_StartAndStop(t *testing.T) {
	handler := new(MockStalledOrdersHandler)
	manager := NewJobManager(handler, 48*time.Hour, slog.Default())

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
