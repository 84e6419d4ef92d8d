package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/maverick1978/3dlabmod1/internal/application/notification"
	"github.com/maverick1978/3dlabmod1/internal/domain"
)

type mockNotificationService struct{ mock.Mock }

func (m *mockNotificationService) Create(ctx context.Context, req domain.CreateNotificationRequest) (*domain.Notification, error) {
	args := m.Called(ctx, req)
	if n, _ := args.Get(0).(*domain.Notification); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockNotificationService) ListAll(ctx context.Context, typ string) ([]domain.Notification, error) {
	args := m.Called(ctx, typ)
	if ns, _ := args.Get(0).([]domain.Notification); ns != nil {
		return ns, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockNotificationService) MarkRead(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockNotificationService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func dialTestServer(t *testing.T, h *Handler) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_PublishReachesConnectedClient(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	conn := dialTestServer(t, NewHandler(hub, &mockNotificationService{}))

	// Registration races the first publish; poke until the frame arrives.
	deadline := time.Now().Add(2 * time.Second)
	conn.SetReadDeadline(deadline)
	go func() {
		for time.Now().Before(deadline) {
			hub.Publish(notification.EventCreated, &domain.Notification{ID: 1, Title: "hola"})
			time.Sleep(20 * time.Millisecond)
		}
	}()

	var env Envelope
	require.NoError(t, conn.ReadJSON(&env))
	assert.Equal(t, notification.EventCreated, env.Event)

	var n domain.Notification
	require.NoError(t, json.Unmarshal(env.Data, &n))
	assert.Equal(t, "hola", n.Title)
}

func TestHub_DeletedEventCarriesBareID(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	conn := dialTestServer(t, NewHandler(hub, &mockNotificationService{}))

	deadline := time.Now().Add(2 * time.Second)
	conn.SetReadDeadline(deadline)
	go func() {
		for time.Now().Before(deadline) {
			hub.Publish(notification.EventDeleted, int64(5))
			time.Sleep(20 * time.Millisecond)
		}
	}()

	var env Envelope
	require.NoError(t, conn.ReadJSON(&env))
	assert.Equal(t, notification.EventDeleted, env.Event)
	// The data field is the id itself, not an object wrapping it.
	assert.Equal(t, "5", string(env.Data))
}

func TestHandler_InboundCreateEvent(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	svc := &mockNotificationService{}
	created := make(chan domain.CreateNotificationRequest, 1)
	svc.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created <- args.Get(1).(domain.CreateNotificationRequest)
	}).Return(&domain.Notification{ID: 1}, nil)

	conn := dialTestServer(t, NewHandler(hub, svc))

	payload, err := json.Marshal(map[string]string{"title": "Aviso", "detail": "Detalle"})
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Envelope{Event: notification.EventCreated, Data: payload}))

	select {
	case req := <-created:
		assert.Equal(t, "Aviso", req.Title)
		assert.Equal(t, "Detalle", req.Detail)
	case <-time.After(2 * time.Second):
		t.Fatal("inbound event never reached the notification service")
	}
}

func TestHandler_UnknownEventIgnored(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	svc := &mockNotificationService{}
	conn := dialTestServer(t, NewHandler(hub, svc))

	require.NoError(t, conn.WriteJSON(Envelope{Event: "typing", Data: json.RawMessage(`{}`)}))
	time.Sleep(100 * time.Millisecond)

	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHub_ShutdownUnwindsClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	conn := dialTestServer(t, NewHandler(hub, &mockNotificationService{}))

	cancel()

	// The hub closes every send channel on shutdown, which makes the write
	// pump send a close frame; the client's read must terminate promptly.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)

	// Teardown after shutdown must not block: a client going away now hits
	// the done channel instead of a stopped registry.
	done := make(chan struct{})
	go func() {
		conn.Close()
		hub.Publish(notification.EventDeleted, int64(1))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("client teardown blocked after hub shutdown")
	}
}

func TestHandler_ConnectAfterShutdownRefused(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	cancel()
	<-hub.done

	conn := dialTestServer(t, NewHandler(hub, &mockNotificationService{}))

	// The upgrade succeeds but the handler closes the connection instead of
	// registering it against the stopped hub.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestHub_PublishWithNoClientsDoesNotBlock(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Publish(notification.EventDeleted, map[string]int64{"id": int64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked without subscribers")
	}
}
