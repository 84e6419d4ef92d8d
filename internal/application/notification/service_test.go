package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/maverick1978/3dlabmod1/internal/domain"
)

// --- mocks ---

type mockStore struct{ mock.Mock }

func (m *mockStore) Create(ctx context.Context, title, detail, typ, message string) (*domain.Notification, error) {
	args := m.Called(ctx, title, detail, typ, message)
	if n, _ := args.Get(0).(*domain.Notification); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) ListAll(ctx context.Context, typ string) ([]domain.Notification, error) {
	args := m.Called(ctx, typ)
	if ns, _ := args.Get(0).([]domain.Notification); ns != nil {
		return ns, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) MarkRead(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockBroadcaster struct{ mock.Mock }

func (m *mockBroadcaster) Publish(event string, data any) {
	m.Called(event, data)
}

func newTestService(repo *mockStore, b *mockBroadcaster) Service {
	return NewService(repo, b, domain.DefaultNotificationDefaults())
}

// --- Create ---

func TestCreate_AppliesDefaults(t *testing.T) {
	repo := &mockStore{}
	b := &mockBroadcaster{}
	created := &domain.Notification{
		ID:        1,
		Title:     "Reunión",
		Detail:    "Sala 2",
		Type:      "general",
		Message:   "Mensaje por defecto",
		Timestamp: time.Now().UTC(),
	}
	repo.On("Create", mock.Anything, "Reunión", "Sala 2", "general", "Mensaje por defecto").Return(created, nil)
	b.On("Publish", EventCreated, created).Once()

	svc := newTestService(repo, b)
	n, err := svc.Create(context.Background(), domain.CreateNotificationRequest{
		Title:  "Reunión",
		Detail: "Sala 2",
	})

	require.NoError(t, err)
	assert.Equal(t, created, n)
	repo.AssertExpectations(t)
	b.AssertExpectations(t)
}

func TestCreate_ExplicitTypeAndMessageWin(t *testing.T) {
	repo := &mockStore{}
	b := &mockBroadcaster{}
	created := &domain.Notification{ID: 2, Title: "t", Detail: "d", Type: "urgente", Message: "m"}
	repo.On("Create", mock.Anything, "t", "d", "urgente", "m").Return(created, nil)
	b.On("Publish", EventCreated, created).Once()

	svc := newTestService(repo, b)
	_, err := svc.Create(context.Background(), domain.CreateNotificationRequest{
		Title: "t", Detail: "d", Type: "urgente", Message: "m",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreate_MissingTitleFailsValidation(t *testing.T) {
	repo := &mockStore{}
	b := &mockBroadcaster{}

	svc := newTestService(repo, b)
	_, err := svc.Create(context.Background(), domain.CreateNotificationRequest{Detail: "d"})

	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	b.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreate_NoPublishOnStoreError(t *testing.T) {
	repo := &mockStore{}
	b := &mockBroadcaster{}
	repo.On("Create", mock.Anything, "t", "d", "general", "Mensaje por defecto").
		Return(nil, errors.New("disk full"))

	svc := newTestService(repo, b)
	_, err := svc.Create(context.Background(), domain.CreateNotificationRequest{Title: "t", Detail: "d"})

	require.Error(t, err)
	b.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

// --- MarkRead / Delete ---

func TestMarkRead_PropagatesNotFound(t *testing.T) {
	repo := &mockStore{}
	repo.On("MarkRead", mock.Anything, int64(99)).Return(domain.ErrNotFound)

	svc := newTestService(repo, &mockBroadcaster{})
	err := svc.MarkRead(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkRead_RejectsNonPositiveID(t *testing.T) {
	svc := newTestService(&mockStore{}, &mockBroadcaster{})
	assert.ErrorIs(t, svc.MarkRead(context.Background(), 0), domain.ErrValidation)
}

func TestDelete_PublishesBareID(t *testing.T) {
	repo := &mockStore{}
	b := &mockBroadcaster{}
	repo.On("Delete", mock.Anything, int64(5)).Return(nil)
	b.On("Publish", EventDeleted, int64(5)).Once()

	svc := newTestService(repo, b)
	require.NoError(t, svc.Delete(context.Background(), 5))
	b.AssertExpectations(t)
}

func TestDelete_NoPublishWhenMissing(t *testing.T) {
	repo := &mockStore{}
	b := &mockBroadcaster{}
	repo.On("Delete", mock.Anything, int64(5)).Return(domain.ErrNotFound)

	svc := newTestService(repo, b)
	err := svc.Delete(context.Background(), 5)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	b.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
