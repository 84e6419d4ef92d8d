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

// ClassRepo provides typed SQLite operations for classes and their student
// assignments.
type ClassRepo struct {
	db *sqlx.DB
}

func NewClassRepo(db *sqlx.DB) *ClassRepo {
	return &ClassRepo{db: db}
}

func (r *ClassRepo) Create(ctx context.Context, c *domain.Class) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO classes (name, grade, educator_id) VALUES (?, ?, ?)",
		c.Name, c.Grade, c.EducatorID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("class name already exists: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert class: %w", err)
	}
	c.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("class last insert id: %w", err)
	}
	return nil
}

func (r *ClassRepo) Get(ctx context.Context, id int64) (*domain.Class, error) {
	var c domain.Class
	err := r.db.GetContext(ctx, &c, "SELECT * FROM classes WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("class %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get class: %w", err)
	}
	return &c, nil
}

func (r *ClassRepo) List(ctx context.Context) ([]domain.Class, error) {
	var classes []domain.Class
	if err := r.db.SelectContext(ctx, &classes, "SELECT * FROM classes ORDER BY id"); err != nil {
		return nil, fmt.Errorf("select classes: %w", err)
	}
	if classes == nil {
		classes = []domain.Class{}
	}
	return classes, nil
}

// ListRoster returns one row per (class, assigned student) pair, the shape
// the class-management screens render.
func (r *ClassRepo) ListRoster(ctx context.Context) ([]domain.ClassRoster, error) {
	var roster []domain.ClassRoster
	err := r.db.SelectContext(ctx, &roster, `
		SELECT classes.id, classes.name, classes.grade, users.username AS student
		FROM class_assignments
		INNER JOIN classes ON class_assignments.class_id = classes.id
		INNER JOIN users ON class_assignments.student_id = users.id
		ORDER BY classes.id`)
	if err != nil {
		return nil, fmt.Errorf("select class roster: %w", err)
	}
	if roster == nil {
		roster = []domain.ClassRoster{}
	}
	return roster, nil
}

func (r *ClassRepo) Update(ctx context.Context, c *domain.Class) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE classes SET name = ?, grade = ?, educator_id = ? WHERE id = ?",
		c.Name, c.Grade, c.EducatorID, c.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("class name already exists: %w", domain.ErrConflict)
		}
		return fmt.Errorf("update class: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update class affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("class %d: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *ClassRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM classes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete class affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("class %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Assign links a student to a class and returns the assignment row.
func (r *ClassRepo) Assign(ctx context.Context, classID, studentID int64) (*domain.ClassAssignment, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO class_assignments (class_id, student_id, assigned_at) VALUES (?, ?, ?)",
		classID, studentID, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert class assignment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("class assignment last insert id: %w", err)
	}
	return &domain.ClassAssignment{
		ID:         id,
		ClassID:    classID,
		StudentID:  studentID,
		AssignedAt: now,
	}, nil
}

// Reassign moves an existing assignment to a different class.
func (r *ClassRepo) Reassign(ctx context.Context, assignmentID, newClassID int64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE class_assignments SET class_id = ? WHERE id = ?", newClassID, assignmentID)
	if err != nil {
		return fmt.Errorf("reassign student: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reassign student affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("assignment %d: %w", assignmentID, domain.ErrNotFound)
	}
	return nil
}

func (r *ClassRepo) RemoveAssignment(ctx context.Context, assignmentID int64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM class_assignments WHERE id = ?", assignmentID)
	if err != nil {
		return fmt.Errorf("remove class assignment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove class assignment affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("assignment %d: %w", assignmentID, domain.ErrNotFound)
	}
	return nil
}

// StudentsOf lists the student-role users assigned to a class.
func (r *ClassRepo) StudentsOf(ctx context.Context, classID int64) ([]domain.ClassMember, error) {
	var members []domain.ClassMember
	err := r.db.SelectContext(ctx, &members, `
		SELECT u.id, u.username, u.email
		FROM users u
		JOIN class_assignments ca ON u.id = ca.student_id
		WHERE ca.class_id = ?
		ORDER BY u.id`, classID)
	if err != nil {
		return nil, fmt.Errorf("select class students: %w", err)
	}
	if members == nil {
		members = []domain.ClassMember{}
	}
	return members, nil
}

func (r *ClassRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM classes"); err != nil {
		return 0, fmt.Errorf("count classes: %w", err)
	}
	return n, nil
}
