package notification

import (
	"context"
	"fmt"

	"github.com/maverick1978/3dlabmod1/internal/domain"
	"github.com/maverick1978/3dlabmod1/internal/pkg/validate"
)

// EventCreated and EventDeleted are the channel event names pushed to
// connected clients after a write commits.
const (
	EventCreated = "new-notification"
	EventDeleted = "notification-deleted"
)

type Store interface {
	Create(ctx context.Context, title, detail, typ, message string) (*domain.Notification, error)
	ListAll(ctx context.Context, typ string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// Broadcaster fans an event out to every connected channel client.
// Delivery is best effort; Publish must never block the caller.
type Broadcaster interface {
	Publish(event string, data any)
}

type Service interface {
	Create(ctx context.Context, req domain.CreateNotificationRequest) (*domain.Notification, error)
	ListAll(ctx context.Context, typ string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo        Store
	broadcaster Broadcaster
	defaults    domain.NotificationDefaults
}

func NewService(repo Store, broadcaster Broadcaster, defaults domain.NotificationDefaults) Service {
	return &service{repo: repo, broadcaster: broadcaster, defaults: defaults}
}

func (s *service) Create(ctx context.Context, req domain.CreateNotificationRequest) (*domain.Notification, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	typ := req.Type
	if typ == "" {
		typ = s.defaults.Type
	}
	message := req.Message
	if message == "" {
		message = s.defaults.Message
	}
	n, err := s.repo.Create(ctx, req.Title, req.Detail, typ, message)
	if err != nil {
		return nil, err
	}
	// Publish only after the row is committed so subscribers never see a
	// notification that a concurrent GET would not also return.
	s.broadcaster.Publish(EventCreated, n)
	return n, nil
}

func (s *service) ListAll(ctx context.Context, typ string) ([]domain.Notification, error) {
	return s.repo.ListAll(ctx, typ)
}

func (s *service) MarkRead(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid notification id: %w", domain.ErrValidation)
	}
	return s.repo.MarkRead(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid notification id: %w", domain.ErrValidation)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	// The deleted event carries the bare id, not an object.
	s.broadcaster.Publish(EventDeleted, id)
	return nil
}
