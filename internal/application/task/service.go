package task

import (
	"context"
	"fmt"
	"time"

	"github.com/maverick1978/3dlabmod1/internal/domain"
	"github.com/maverick1978/3dlabmod1/internal/pkg/validate"
)

type Store interface {
	Create(ctx context.Context, t *domain.Task) error
	List(ctx context.Context, status string) ([]domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	Create(ctx context.Context, req domain.TaskRequest) (*domain.Task, error)
	List(ctx context.Context, status string) ([]domain.Task, error)
	Update(ctx context.Context, id int64, req domain.TaskRequest) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Store
}

func NewService(repo Store) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req domain.TaskRequest) (*domain.Task, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	date, err := normalizeDate(req.Date)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = domain.TaskStatusPending
	}
	if err := validStatus(status); err != nil {
		return nil, err
	}
	t := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Date:        date,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) List(ctx context.Context, status string) ([]domain.Task, error) {
	if status != "" {
		if err := validStatus(status); err != nil {
			return nil, err
		}
	}
	return s.repo.List(ctx, status)
}

func (s *service) Update(ctx context.Context, id int64, req domain.TaskRequest) (*domain.Task, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	date, err := normalizeDate(req.Date)
	if err != nil {
		return nil, err
	}
	t.Title = req.Title
	t.Description = req.Description
	t.Date = date
	if req.Status != "" {
		if err := validStatus(req.Status); err != nil {
			return nil, err
		}
		t.Status = req.Status
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// normalizeDate accepts either a bare date or an RFC 3339 timestamp and
// stores the calendar day only.
func normalizeDate(raw string) (string, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.Format("2006-01-02"), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format("2006-01-02"), nil
	}
	return "", fmt.Errorf("fecha inválida %q: %w", raw, domain.ErrValidation)
}

func validStatus(status string) error {
	switch status {
	case domain.TaskStatusPending, domain.TaskStatusCompleted:
		return nil
	}
	return fmt.Errorf("estado desconocido %q: %w", status, domain.ErrValidation)
}
