package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/maverick1978/3dlabmod1/internal/domain"
)

// --- mock ---

type mockNotificationSvc struct{ mock.Mock }

func (m *mockNotificationSvc) Create(ctx context.Context, req domain.CreateNotificationRequest) (*domain.Notification, error) {
	args := m.Called(ctx, req)
	if n, _ := args.Get(0).(*domain.Notification); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotificationSvc) ListAll(ctx context.Context, typ string) ([]domain.Notification, error) {
	args := m.Called(ctx, typ)
	if ns, _ := args.Get(0).([]domain.Notification); ns != nil {
		return ns, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotificationSvc) MarkRead(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockNotificationSvc) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// --- helpers ---

func notificationsRouter(svc *mockNotificationSvc) http.Handler {
	h := NewNotificationHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/notifications", h.List)
	r.Post("/api/notifications", h.Create)
	r.Post("/api/notifications/{id}/read", h.MarkRead)
	r.Delete("/api/notifications/{id}", h.Delete)
	return r
}

// --- tests ---

func TestNotificationsList_ReturnsBareArray(t *testing.T) {
	svc := &mockNotificationSvc{}
	svc.On("ListAll", mock.Anything, "").Return([]domain.Notification{
		{ID: 1, Title: "Reunión de padres", Detail: "Este viernes", Type: "general", Message: "Mensaje por defecto", Timestamp: time.Now().UTC()},
	}, nil)

	rec := httptest.NewRecorder()
	notificationsRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notifications", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Reunión de padres", got[0].Title)
	assert.False(t, got[0].Read)
}

func TestNotificationsList_TypeFilterPassedThrough(t *testing.T) {
	svc := &mockNotificationSvc{}
	svc.On("ListAll", mock.Anything, "urgente").Return([]domain.Notification{}, nil)

	rec := httptest.NewRecorder()
	notificationsRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notifications?type=urgente", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
	svc.AssertExpectations(t)
}

func TestNotificationsCreate_Returns201WithRecord(t *testing.T) {
	svc := &mockNotificationSvc{}
	created := &domain.Notification{ID: 7, Title: "t", Detail: "d", Type: "general", Message: "Mensaje por defecto"}
	svc.On("Create", mock.Anything, domain.CreateNotificationRequest{Title: "t", Detail: "d"}).Return(created, nil)

	body, _ := json.Marshal(map[string]string{"title": "t", "detail": "d"})
	rec := httptest.NewRecorder()
	notificationsRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.EqualValues(t, 7, got.ID)
}

func TestNotificationsCreate_ValidationIs400(t *testing.T) {
	svc := &mockNotificationSvc{}
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	body, _ := json.Marshal(map[string]string{"detail": "d"})
	rec := httptest.NewRecorder()
	notificationsRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationsMarkRead_OKMessage(t *testing.T) {
	svc := &mockNotificationSvc{}
	svc.On("MarkRead", mock.Anything, int64(3)).Return(nil)

	rec := httptest.NewRecorder()
	notificationsRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/notifications/3/read", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var env MessageEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Notificación marcada como leída", env.Message)
}

func TestNotificationsMarkRead_UnknownIDIs404(t *testing.T) {
	svc := &mockNotificationSvc{}
	svc.On("MarkRead", mock.Anything, int64(99)).Return(domain.ErrNotFound)

	rec := httptest.NewRecorder()
	notificationsRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/notifications/99/read", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotificationsDelete_OKMessage(t *testing.T) {
	svc := &mockNotificationSvc{}
	svc.On("Delete", mock.Anything, int64(3)).Return(nil)

	rec := httptest.NewRecorder()
	notificationsRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/notifications/3", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var env MessageEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Notificación eliminada con éxito.", env.Message)
}

func TestNotifications_NonNumericIDIs400(t *testing.T) {
	svc := &mockNotificationSvc{}

	rec := httptest.NewRecorder()
	notificationsRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/notifications/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
