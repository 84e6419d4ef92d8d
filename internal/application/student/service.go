package student

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/maverick1978/3dlabmod1/internal/domain"
	s3infra "github.com/maverick1978/3dlabmod1/internal/infrastructure/s3"
	"github.com/maverick1978/3dlabmod1/internal/pkg/id"
	"github.com/maverick1978/3dlabmod1/internal/pkg/validate"
)

type Store interface {
	Create(ctx context.Context, st *domain.Student) error
	List(ctx context.Context) ([]domain.Student, error)
	Get(ctx context.Context, id int64) (*domain.Student, error)
	History(ctx context.Context, studentID int64) ([]domain.ClassHistoryEntry, error)
	Unassigned(ctx context.Context) ([]domain.UnassignedStudent, error)
	AddRecommendation(ctx context.Context, studentID int64, text string) (*domain.Recommendation, error)
	SetPhotoURL(ctx context.Context, studentID int64, url string) error
}

// ObjectStore is the slice of the S3 layer the photo paths need.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type Service interface {
	List(ctx context.Context) ([]domain.Student, error)
	Get(ctx context.Context, id int64) (*domain.Student, error)
	History(ctx context.Context, studentID int64) ([]domain.ClassHistoryEntry, error)
	Unassigned(ctx context.Context) ([]domain.UnassignedStudent, error)
	Recommend(ctx context.Context, studentID int64, req domain.RecommendationRequest) (*domain.Recommendation, error)
	UploadPhoto(ctx context.Context, studentID int64, filename string, r io.Reader, contentType string) (*domain.Student, error)
	Photo(ctx context.Context, studentID int64) (io.ReadCloser, string, error)
}

type service struct {
	repo   Store
	photos ObjectStore
}

func NewService(repo Store, photos ObjectStore) Service {
	return &service{repo: repo, photos: photos}
}

func (s *service) List(ctx context.Context) ([]domain.Student, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*domain.Student, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) History(ctx context.Context, studentID int64) ([]domain.ClassHistoryEntry, error) {
	if _, err := s.repo.Get(ctx, studentID); err != nil {
		return nil, err
	}
	return s.repo.History(ctx, studentID)
}

func (s *service) Unassigned(ctx context.Context) ([]domain.UnassignedStudent, error) {
	return s.repo.Unassigned(ctx)
}

func (s *service) Recommend(ctx context.Context, studentID int64, req domain.RecommendationRequest) (*domain.Recommendation, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return s.repo.AddRecommendation(ctx, studentID, req.Recommendation)
}

func (s *service) UploadPhoto(ctx context.Context, studentID int64, filename string, r io.Reader, contentType string) (*domain.Student, error) {
	st, err := s.repo.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	ext := path.Ext(filename)
	if ext == "" {
		return nil, fmt.Errorf("nombre de archivo sin extensión: %w", domain.ErrValidation)
	}
	key := fmt.Sprintf("students/%d/%s%s", studentID, id.New(), ext)
	url, err := s.photos.Upload(ctx, key, r, contentType)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetPhotoURL(ctx, studentID, url); err != nil {
		return nil, err
	}
	// Replacing a photo orphans the previous object; remove it best effort.
	if st.PhotoURL != nil {
		if old, ok := objectKey(*st.PhotoURL); ok {
			_ = s.photos.Delete(ctx, old)
		}
	}
	return s.repo.Get(ctx, studentID)
}

// Photo streams the student's stored photo along with its content type.
func (s *service) Photo(ctx context.Context, studentID int64) (io.ReadCloser, string, error) {
	st, err := s.repo.Get(ctx, studentID)
	if err != nil {
		return nil, "", err
	}
	if st.PhotoURL == nil {
		return nil, "", fmt.Errorf("el estudiante no tiene foto: %w", domain.ErrNotFound)
	}
	key, ok := objectKey(*st.PhotoURL)
	if !ok {
		return nil, "", fmt.Errorf("url de foto corrupta: %w", domain.ErrNotFound)
	}
	rc, err := s.photos.Download(ctx, key)
	if err != nil {
		return nil, "", err
	}
	return rc, s3infra.ContentTypeForFilename(key), nil
}

// objectKey extracts the object key from an s3://bucket/key URL.
func objectKey(url string) (string, bool) {
	rest, ok := strings.CutPrefix(url, "s3://")
	if !ok {
		return "", false
	}
	_, key, ok := strings.Cut(rest, "/")
	if !ok || key == "" {
		return "", false
	}
	return key, true
}
