package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/maverick1978/3dlabmod1/internal/domain"
)

// ProfileRepo provides typed SQLite operations for the role profile catalog.
type ProfileRepo struct {
	db *sqlx.DB
}

func NewProfileRepo(db *sqlx.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO profiles (role, description) VALUES (?, ?)",
		p.Role, p.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("profile already exists: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("profile last insert id: %w", err)
	}
	return nil
}

func (r *ProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	var profiles []domain.Profile
	if err := r.db.SelectContext(ctx, &profiles, "SELECT * FROM profiles ORDER BY id"); err != nil {
		return nil, fmt.Errorf("select profiles: %w", err)
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}
	return profiles, nil
}

func (r *ProfileRepo) Get(ctx context.Context, id int64) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.GetContext(ctx, &p, "SELECT * FROM profiles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM profiles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete profile affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("profile %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountUsers returns how many users carry the given role name.
func (r *ProfileRepo) CountUsers(ctx context.Context, role string) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM users WHERE role = ?", role); err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return n, nil
}
