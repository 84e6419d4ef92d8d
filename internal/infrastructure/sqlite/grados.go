package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/maverick1978/3dlabmod1/internal/domain"
)

// GradoRepo provides typed SQLite operations for the grados catalog.
type GradoRepo struct {
	db *sqlx.DB
}

func NewGradoRepo(db *sqlx.DB) *GradoRepo {
	return &GradoRepo{db: db}
}

func (r *GradoRepo) Create(ctx context.Context, g *domain.Grado) error {
	res, err := r.db.ExecContext(ctx, "INSERT INTO grados (nombre) VALUES (?)", g.Nombre)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("grado already exists: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert grado: %w", err)
	}
	g.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("grado last insert id: %w", err)
	}
	return nil
}

// List returns every grado with its distinct student count, derived from
// class assignments on classes of that grade.
func (r *GradoRepo) List(ctx context.Context) ([]domain.Grado, error) {
	var grados []domain.Grado
	err := r.db.SelectContext(ctx, &grados, `
		SELECT g.id, g.nombre,
		       COUNT(DISTINCT ca.student_id) AS num_estudiantes
		FROM grados g
		LEFT JOIN classes c ON c.grade = g.nombre
		LEFT JOIN class_assignments ca ON ca.class_id = c.id
		GROUP BY g.id, g.nombre
		ORDER BY g.id`)
	if err != nil {
		return nil, fmt.Errorf("select grados: %w", err)
	}
	if grados == nil {
		grados = []domain.Grado{}
	}
	return grados, nil
}

func (r *GradoRepo) Get(ctx context.Context, id int64) (*domain.Grado, error) {
	var g domain.Grado
	err := r.db.GetContext(ctx, &g, `
		SELECT g.id, g.nombre,
		       COUNT(DISTINCT ca.student_id) AS num_estudiantes
		FROM grados g
		LEFT JOIN classes c ON c.grade = g.nombre
		LEFT JOIN class_assignments ca ON ca.class_id = c.id
		WHERE g.id = ?
		GROUP BY g.id, g.nombre`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("grado %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get grado: %w", err)
	}
	return &g, nil
}

func (r *GradoRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM grados WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete grado: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete grado affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("grado %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
