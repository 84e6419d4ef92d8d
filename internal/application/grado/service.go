package grado

import (
	"context"

	"github.com/maverick1978/3dlabmod1/internal/domain"
	"github.com/maverick1978/3dlabmod1/internal/pkg/validate"
)

type Store interface {
	Create(ctx context.Context, g *domain.Grado) error
	List(ctx context.Context) ([]domain.Grado, error)
	Get(ctx context.Context, id int64) (*domain.Grado, error)
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	Create(ctx context.Context, req domain.GradoRequest) (*domain.Grado, error)
	List(ctx context.Context) ([]domain.Grado, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Store
}

func NewService(repo Store) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req domain.GradoRequest) (*domain.Grado, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	g := &domain.Grado{Nombre: req.Nombre}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) List(ctx context.Context) ([]domain.Grado, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
