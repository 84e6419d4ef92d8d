package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/maverick1978/3dlabmod1/internal/domain"
)

// StudentRepo provides typed SQLite operations for students, their class
// history and recommendations.
type StudentRepo struct {
	db *sqlx.DB
}

func NewStudentRepo(db *sqlx.DB) *StudentRepo {
	return &StudentRepo{db: db}
}

func (r *StudentRepo) Create(ctx context.Context, s *domain.Student) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO students (name, progress, photo_url) VALUES (?, ?, ?)",
		s.Name, s.Progress, s.PhotoURL,
	)
	if err != nil {
		return fmt.Errorf("insert student: %w", err)
	}
	s.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("student last insert id: %w", err)
	}
	return nil
}

func (r *StudentRepo) List(ctx context.Context) ([]domain.Student, error) {
	var students []domain.Student
	if err := r.db.SelectContext(ctx, &students, "SELECT * FROM students ORDER BY id"); err != nil {
		return nil, fmt.Errorf("select students: %w", err)
	}
	if students == nil {
		students = []domain.Student{}
	}
	return students, nil
}

func (r *StudentRepo) Get(ctx context.Context, id int64) (*domain.Student, error) {
	var s domain.Student
	err := r.db.GetContext(ctx, &s, "SELECT * FROM students WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("student %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	return &s, nil
}

// History lists the classes a student has been assigned to, newest first.
func (r *StudentRepo) History(ctx context.Context, studentID int64) ([]domain.ClassHistoryEntry, error) {
	var history []domain.ClassHistoryEntry
	err := r.db.SelectContext(ctx, &history, `
		SELECT classes.name, class_assignments.assigned_at
		FROM class_assignments
		INNER JOIN classes ON class_assignments.class_id = classes.id
		WHERE class_assignments.student_id = ?
		ORDER BY assigned_at DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("select student history: %w", err)
	}
	if history == nil {
		history = []domain.ClassHistoryEntry{}
	}
	return history, nil
}

// Unassigned lists student-role users that are not in any class.
func (r *StudentRepo) Unassigned(ctx context.Context) ([]domain.UnassignedStudent, error) {
	var students []domain.UnassignedStudent
	err := r.db.SelectContext(ctx, &students, `
		SELECT id, username FROM users
		WHERE role = ?
		  AND id NOT IN (SELECT student_id FROM class_assignments)
		ORDER BY id`, domain.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("select unassigned students: %w", err)
	}
	if students == nil {
		students = []domain.UnassignedStudent{}
	}
	return students, nil
}

// AddRecommendation persists an educator's recommendation for a student.
func (r *StudentRepo) AddRecommendation(ctx context.Context, studentID int64, text string) (*domain.Recommendation, error) {
	if _, err := r.Get(ctx, studentID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO recommendations (student_id, recommendation, created_at) VALUES (?, ?, ?)",
		studentID, text, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert recommendation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("recommendation last insert id: %w", err)
	}
	return &domain.Recommendation{
		ID:             id,
		StudentID:      studentID,
		Recommendation: text,
		CreatedAt:      now,
	}, nil
}

func (r *StudentRepo) CountRecommendations(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM recommendations"); err != nil {
		return 0, fmt.Errorf("count recommendations: %w", err)
	}
	return n, nil
}

// SetPhotoURL stores the uploaded photo location for a student.
func (r *StudentRepo) SetPhotoURL(ctx context.Context, studentID int64, url string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE students SET photo_url = ? WHERE id = ?", url, studentID)
	if err != nil {
		return fmt.Errorf("set student photo: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set student photo affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("student %d: %w", studentID, domain.ErrNotFound)
	}
	return nil
}
