package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/maverick1978/3dlabmod1/internal/domain"
)

type mockCounters struct{ mock.Mock }

func (m *mockCounters) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
func (m *mockCounters) CountNotifications(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
func (m *mockCounters) CountTasksByStatus(ctx context.Context, status string) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}
func (m *mockCounters) CountClasses(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
func (m *mockCounters) CountRecommendations(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestSummary(t *testing.T) {
	c := &mockCounters{}
	c.On("CountUsers", mock.Anything).Return(4, nil)
	c.On("CountTasksByStatus", mock.Anything, domain.TaskStatusPending).Return(2, nil)
	c.On("CountTasksByStatus", mock.Anything, domain.TaskStatusCompleted).Return(3, nil)
	c.On("CountNotifications", mock.Anything).Return(5, nil)

	got, err := NewService(c).Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &domain.Report{Users: 4, PendingTasks: 2, CompletedTasks: 3, Notifications: 5}, got)
}

func TestAdminStats_CountsRecommendationsAsReports(t *testing.T) {
	c := &mockCounters{}
	c.On("CountUsers", mock.Anything).Return(4, nil)
	c.On("CountTasksByStatus", mock.Anything, domain.TaskStatusPending).Return(2, nil)
	c.On("CountTasksByStatus", mock.Anything, domain.TaskStatusCompleted).Return(3, nil)
	c.On("CountClasses", mock.Anything).Return(6, nil)
	c.On("CountRecommendations", mock.Anything).Return(7, nil)

	got, err := NewService(c).AdminStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, got.TotalReports)
	assert.Equal(t, 6, got.TotalClasses)
}

func TestSummary_PropagatesError(t *testing.T) {
	c := &mockCounters{}
	c.On("CountUsers", mock.Anything).Return(0, errors.New("db closed"))

	_, err := NewService(c).Summary(context.Background())
	assert.Error(t, err)
}
