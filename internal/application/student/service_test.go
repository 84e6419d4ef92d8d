package student

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/maverick1978/3dlabmod1/internal/domain"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) Create(ctx context.Context, st *domain.Student) error {
	return m.Called(ctx, st).Error(0)
}
func (m *mockStore) List(ctx context.Context) ([]domain.Student, error) {
	args := m.Called(ctx)
	if ss, _ := args.Get(0).([]domain.Student); ss != nil {
		return ss, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) Get(ctx context.Context, id int64) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if s, _ := args.Get(0).(*domain.Student); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) History(ctx context.Context, studentID int64) ([]domain.ClassHistoryEntry, error) {
	args := m.Called(ctx, studentID)
	if h, _ := args.Get(0).([]domain.ClassHistoryEntry); h != nil {
		return h, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) Unassigned(ctx context.Context) ([]domain.UnassignedStudent, error) {
	args := m.Called(ctx)
	if u, _ := args.Get(0).([]domain.UnassignedStudent); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) AddRecommendation(ctx context.Context, studentID int64, text string) (*domain.Recommendation, error) {
	args := m.Called(ctx, studentID, text)
	if r, _ := args.Get(0).(*domain.Recommendation); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) SetPhotoURL(ctx context.Context, studentID int64, url string) error {
	return m.Called(ctx, studentID, url).Error(0)
}

type mockObjectStore struct{ mock.Mock }

func (m *mockObjectStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, r, contentType)
	return args.String(0), args.Error(1)
}
func (m *mockObjectStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if rc, _ := args.Get(0).(io.ReadCloser); rc != nil {
		return rc, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockObjectStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func strPtr(s string) *string { return &s }

func TestHistory_ChecksStudentExists(t *testing.T) {
	repo := &mockStore{}
	repo.On("Get", mock.Anything, int64(9)).Return(nil, domain.ErrNotFound)

	svc := NewService(repo, &mockObjectStore{})
	_, err := svc.History(context.Background(), 9)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "History", mock.Anything, mock.Anything)
}

func TestRecommend_RequiresText(t *testing.T) {
	svc := NewService(&mockStore{}, &mockObjectStore{})
	_, err := svc.Recommend(context.Background(), 1, domain.RecommendationRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRecommend_Persists(t *testing.T) {
	repo := &mockStore{}
	repo.On("AddRecommendation", mock.Anything, int64(1), "leer más").
		Return(&domain.Recommendation{ID: 1, StudentID: 1, Recommendation: "leer más"}, nil)

	svc := NewService(repo, &mockObjectStore{})
	rec, err := svc.Recommend(context.Background(), 1, domain.RecommendationRequest{Recommendation: "leer más"})

	require.NoError(t, err)
	assert.Equal(t, "leer más", rec.Recommendation)
}

func TestUploadPhoto_StoresAndRecordsURL(t *testing.T) {
	repo := &mockStore{}
	photos := &mockObjectStore{}
	repo.On("Get", mock.Anything, int64(1)).Return(&domain.Student{ID: 1, Name: "Juan"}, nil)
	photos.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "students/1/") && strings.HasSuffix(key, ".png")
	}), mock.Anything, "image/png").Return("s3://school-uploads/students/1/x.png", nil)
	repo.On("SetPhotoURL", mock.Anything, int64(1), "s3://school-uploads/students/1/x.png").Return(nil)

	svc := NewService(repo, photos)
	_, err := svc.UploadPhoto(context.Background(), 1, "foto.png", strings.NewReader("img"), "image/png")

	require.NoError(t, err)
	photos.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUploadPhoto_ReplacingDeletesOldObject(t *testing.T) {
	repo := &mockStore{}
	photos := &mockObjectStore{}
	repo.On("Get", mock.Anything, int64(1)).Return(&domain.Student{
		ID: 1, Name: "Juan", PhotoURL: strPtr("s3://school-uploads/students/1/old.png"),
	}, nil)
	photos.On("Upload", mock.Anything, mock.Anything, mock.Anything, "image/png").
		Return("s3://school-uploads/students/1/new.png", nil)
	repo.On("SetPhotoURL", mock.Anything, int64(1), "s3://school-uploads/students/1/new.png").Return(nil)
	photos.On("Delete", mock.Anything, "students/1/old.png").Return(nil)

	svc := NewService(repo, photos)
	_, err := svc.UploadPhoto(context.Background(), 1, "foto.png", strings.NewReader("img"), "image/png")

	require.NoError(t, err)
	photos.AssertExpectations(t)
}

func TestPhoto_StreamsStoredObject(t *testing.T) {
	repo := &mockStore{}
	photos := &mockObjectStore{}
	repo.On("Get", mock.Anything, int64(1)).Return(&domain.Student{
		ID: 1, Name: "Juan", PhotoURL: strPtr("s3://school-uploads/students/1/x.png"),
	}, nil)
	photos.On("Download", mock.Anything, "students/1/x.png").
		Return(io.NopCloser(strings.NewReader("img")), nil)

	svc := NewService(repo, photos)
	rc, contentType, err := svc.Photo(context.Background(), 1)

	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "img", string(data))
	assert.Equal(t, "image/png", contentType)
}

func TestPhoto_NoPhotoIsNotFound(t *testing.T) {
	repo := &mockStore{}
	repo.On("Get", mock.Anything, int64(2)).Return(&domain.Student{ID: 2, Name: "María"}, nil)
	photos := &mockObjectStore{}

	svc := NewService(repo, photos)
	_, _, err := svc.Photo(context.Background(), 2)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	photos.AssertNotCalled(t, "Download", mock.Anything, mock.Anything)
}

func TestUploadPhoto_RejectsMissingExtension(t *testing.T) {
	repo := &mockStore{}
	repo.On("Get", mock.Anything, int64(1)).Return(&domain.Student{ID: 1}, nil)

	svc := NewService(repo, &mockObjectStore{})
	_, err := svc.UploadPhoto(context.Background(), 1, "foto", strings.NewReader("img"), "image/png")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUploadPhoto_UnknownStudent(t *testing.T) {
	repo := &mockStore{}
	repo.On("Get", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)
	photos := &mockObjectStore{}

	svc := NewService(repo, photos)
	_, err := svc.UploadPhoto(context.Background(), 7, "foto.png", strings.NewReader("img"), "image/png")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	photos.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
