package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/maverick1978/3dlabmod1/internal/domain"
	"github.com/maverick1978/3dlabmod1/internal/pkg/validate"
)

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
}

type TokenSigner interface {
	Sign(userID int64, username, role string) (string, error)
}

// LoginResult is what a successful login hands back to the transport layer.
type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (*LoginResult, error)
}

type service struct {
	userRepo UserStore
	signer   TokenSigner
}

func NewService(userRepo UserStore, signer TokenSigner) Service {
	return &service{userRepo: userRepo, signer: signer}
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
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
		Approved:     false,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*LoginResult, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	u, err := s.userRepo.GetByLogin(ctx, req.User)
	if err != nil {
		return nil, fmt.Errorf("credenciales inválidas: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("credenciales inválidas: %w", domain.ErrUnauthorized)
	}
	if !u.Approved {
		return nil, fmt.Errorf("cuenta pendiente de aprobación: %w", domain.ErrForbidden)
	}
	token, err := s.signer.Sign(u.ID, u.Username, u.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: *u}, nil
}
