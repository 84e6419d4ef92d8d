package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/maverick1978/3dlabmod1/internal/domain"
	"github.com/maverick1978/3dlabmod1/internal/pkg/validate"
)

type Store interface {
	Create(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
	SetApproved(ctx context.Context, id int64, approved bool) error
}

type Service interface {
	List(ctx context.Context, role string) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
	Update(ctx context.Context, id int64, req domain.UpdateUserRequest) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	Approve(ctx context.Context, id int64, approved bool) (*domain.User, error)
}

type service struct {
	repo Store
}

func NewService(repo Store) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, role string) ([]domain.User, error) {
	if role == "" {
		return s.repo.List(ctx)
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("rol desconocido %q: %w", role, domain.ErrValidation)
	}
	return s.repo.ListByRole(ctx, role)
}

func (s *service) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.Get(ctx, id)
}

// Create is the admin path: accounts made here are approved immediately,
// unlike self-registration.
func (s *service) Create(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	role := req.Role
	if role == "" {
		role = domain.RoleEducator
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("rol desconocido %q: %w", role, domain.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Approved:     true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Update(ctx context.Context, id int64, req domain.UpdateUserRequest) (*domain.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Role != nil {
		if !domain.ValidRole(*req.Role) {
			return nil, fmt.Errorf("rol desconocido %q: %w", *req.Role, domain.ErrValidation)
		}
		updates["role"] = *req.Role
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = string(hash)
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("nada que actualizar: %w", domain.ErrValidation)
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Approve(ctx context.Context, id int64, approved bool) (*domain.User, error) {
	if err := s.repo.SetApproved(ctx, id, approved); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}
