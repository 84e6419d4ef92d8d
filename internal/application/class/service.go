package class

import (
	"context"

	"github.com/maverick1978/3dlabmod1/internal/domain"
	"github.com/maverick1978/3dlabmod1/internal/pkg/validate"
)

type Store interface {
	Create(ctx context.Context, c *domain.Class) error
	Get(ctx context.Context, id int64) (*domain.Class, error)
	List(ctx context.Context) ([]domain.Class, error)
	ListRoster(ctx context.Context) ([]domain.ClassRoster, error)
	Update(ctx context.Context, c *domain.Class) error
	Delete(ctx context.Context, id int64) error
	Assign(ctx context.Context, classID, studentID int64) (*domain.ClassAssignment, error)
	Reassign(ctx context.Context, assignmentID, newClassID int64) error
	RemoveAssignment(ctx context.Context, assignmentID int64) error
	StudentsOf(ctx context.Context, classID int64) ([]domain.ClassMember, error)
}

type Service interface {
	Create(ctx context.Context, req domain.ClassRequest) (*domain.Class, error)
	List(ctx context.Context) ([]domain.Class, error)
	ListRoster(ctx context.Context) ([]domain.ClassRoster, error)
	Update(ctx context.Context, id int64, req domain.ClassRequest) (*domain.Class, error)
	Delete(ctx context.Context, id int64) error
	AssignStudent(ctx context.Context, req domain.AssignStudentRequest) (*domain.ClassAssignment, error)
	ReassignStudent(ctx context.Context, req domain.ReassignStudentRequest) error
	RemoveStudent(ctx context.Context, assignmentID int64) error
	Students(ctx context.Context, classID int64) ([]domain.ClassMember, error)
}

type service struct {
	repo Store
}

func NewService(repo Store) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req domain.ClassRequest) (*domain.Class, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	c := &domain.Class{Name: req.Name, Grade: req.Grade, EducatorID: req.EducatorID}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) List(ctx context.Context) ([]domain.Class, error) {
	return s.repo.List(ctx)
}

func (s *service) ListRoster(ctx context.Context) ([]domain.ClassRoster, error) {
	return s.repo.ListRoster(ctx)
}

func (s *service) Update(ctx context.Context, id int64, req domain.ClassRequest) (*domain.Class, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = req.Name
	c.Grade = req.Grade
	c.EducatorID = req.EducatorID
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) AssignStudent(ctx context.Context, req domain.AssignStudentRequest) (*domain.ClassAssignment, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return s.repo.Assign(ctx, req.ClassID, req.StudentID)
}

func (s *service) ReassignStudent(ctx context.Context, req domain.ReassignStudentRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	return s.repo.Reassign(ctx, req.ID, req.NewClassID)
}

func (s *service) RemoveStudent(ctx context.Context, assignmentID int64) error {
	return s.repo.RemoveAssignment(ctx, assignmentID)
}

func (s *service) Students(ctx context.Context, classID int64) ([]domain.ClassMember, error) {
	if _, err := s.repo.Get(ctx, classID); err != nil {
		return nil, err
	}
	return s.repo.StudentsOf(ctx, classID)
}
