package profile

import (
	"context"
	"fmt"

	"github.com/maverick1978/3dlabmod1/internal/domain"
	"github.com/maverick1978/3dlabmod1/internal/pkg/validate"
)

type Store interface {
	Create(ctx context.Context, p *domain.Profile) error
	List(ctx context.Context) ([]domain.Profile, error)
	Get(ctx context.Context, id int64) (*domain.Profile, error)
	Delete(ctx context.Context, id int64) error
	CountUsers(ctx context.Context, role string) (int, error)
}

type Service interface {
	Create(ctx context.Context, req domain.ProfileRequest) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	CheckUsers(ctx context.Context, id int64) (*domain.ProfileUsage, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Store
}

func NewService(repo Store) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req domain.ProfileRequest) (*domain.Profile, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if !domain.ValidRole(req.Role) {
		return nil, fmt.Errorf("rol desconocido %q: %w", req.Role, domain.ErrValidation)
	}
	p := &domain.Profile{Role: req.Role, Description: req.Description}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) List(ctx context.Context) ([]domain.Profile, error) {
	return s.repo.List(ctx)
}

// CheckUsers reports how many users hold the profile's role, so the admin
// screens can warn before a delete attempt.
func (s *service) CheckUsers(ctx context.Context, id int64) (*domain.ProfileUsage, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := s.repo.CountUsers(ctx, p.Role)
	if err != nil {
		return nil, err
	}
	return &domain.ProfileUsage{Role: p.Role, UserCount: n, CanDelete: n == 0}, nil
}

// Delete refuses to remove a profile while users still hold its role.
func (s *service) Delete(ctx context.Context, id int64) error {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.repo.CountUsers(ctx, p.Role)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("el perfil %q tiene %d usuarios asignados: %w", p.Role, n, domain.ErrConflict)
	}
	return s.repo.Delete(ctx, id)
}
