package report

import (
	"context"

	"github.com/maverick1978/3dlabmod1/internal/domain"
)

// Counters is the slice of each repository the aggregation queries need.
type Counters interface {
	CountUsers(ctx context.Context) (int, error)
	CountNotifications(ctx context.Context) (int, error)
	CountTasksByStatus(ctx context.Context, status string) (int, error)
	CountClasses(ctx context.Context) (int, error)
	CountRecommendations(ctx context.Context) (int, error)
}

type Service interface {
	Summary(ctx context.Context) (*domain.Report, error)
	AdminStats(ctx context.Context) (*domain.AdminStats, error)
}

type service struct {
	counters Counters
}

func NewService(counters Counters) Service {
	return &service{counters: counters}
}

func (s *service) Summary(ctx context.Context) (*domain.Report, error) {
	users, err := s.counters.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.counters.CountTasksByStatus(ctx, domain.TaskStatusPending)
	if err != nil {
		return nil, err
	}
	completed, err := s.counters.CountTasksByStatus(ctx, domain.TaskStatusCompleted)
	if err != nil {
		return nil, err
	}
	notifications, err := s.counters.CountNotifications(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Report{
		Users:          users,
		PendingTasks:   pending,
		CompletedTasks: completed,
		Notifications:  notifications,
	}, nil
}

func (s *service) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	users, err := s.counters.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.counters.CountTasksByStatus(ctx, domain.TaskStatusPending)
	if err != nil {
		return nil, err
	}
	completed, err := s.counters.CountTasksByStatus(ctx, domain.TaskStatusCompleted)
	if err != nil {
		return nil, err
	}
	classes, err := s.counters.CountClasses(ctx)
	if err != nil {
		return nil, err
	}
	reports, err := s.counters.CountRecommendations(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.AdminStats{
		TotalUsers:     users,
		PendingTasks:   pending,
		TotalClasses:   classes,
		CompletedTasks: completed,
		TotalReports:   reports,
	}, nil
}
