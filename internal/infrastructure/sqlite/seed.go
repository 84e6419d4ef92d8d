package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/maverick1978/3dlabmod1/internal/domain"
)

// SeedOptions configures the startup seeder.
type SeedOptions struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string
	// DemoData inserts the sample notifications and students the dashboard
	// expects on a fresh install.
	DemoData bool
}

// Seed creates the admin account, the role profile catalog, and optionally
// the demo data. It is idempotent: existing rows are left untouched.
func Seed(ctx context.Context, db *sqlx.DB, opts SeedOptions, log zerolog.Logger) error {
	if err := seedAdmin(ctx, db, opts, log); err != nil {
		return err
	}
	if err := seedProfiles(ctx, db); err != nil {
		return err
	}
	if opts.DemoData {
		if err := seedDemoData(ctx, db, log); err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, db *sqlx.DB, opts SeedOptions, log zerolog.Logger) error {
	users := NewUserRepo(db)
	if _, err := users.GetByLogin(ctx, opts.AdminUsername); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := &domain.User{
		Username:     opts.AdminUsername,
		Email:        opts.AdminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Approved:     true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	log.Info().Str("username", opts.AdminUsername).Msg("admin account created")
	return nil
}

func seedProfiles(ctx context.Context, db *sqlx.DB) error {
	descriptions := map[string]string{
		domain.RoleAdmin:    "Acceso total al sistema",
		domain.RoleEducator: "Gestiona clases, tareas y estudiantes",
		domain.RoleStudent:  "Consulta tareas, clases y notificaciones",
	}
	for _, role := range domain.Roles() {
		_, err := db.ExecContext(ctx,
			"INSERT OR IGNORE INTO profiles (role, description) VALUES (?, ?)",
			role, descriptions[role],
		)
		if err != nil {
			return fmt.Errorf("seed profile %q: %w", role, err)
		}
	}
	return nil
}

func seedDemoData(ctx context.Context, db *sqlx.DB, log zerolog.Logger) error {
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM notifications"); err != nil {
		return fmt.Errorf("check notifications seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	notifications := NewNotificationRepo(db)
	seedNotifications := []struct {
		title, detail, typ string
		read               bool
	}{
		{"Nueva tarea asignada", "Revisar la tarea de matemáticas.", "Tareas", false},
		{"Mensaje del administrador", "El sistema se actualizará mañana.", "Mensajes", true},
		{"Calificación publicada", "Ya puedes revisar tu última calificación.", "Calificaciones", false},
	}
	defaults := domain.DefaultNotificationDefaults()
	for _, n := range seedNotifications {
		created, err := notifications.Create(ctx, n.title, n.detail, n.typ, defaults.Message)
		if err != nil {
			return fmt.Errorf("seed notification %q: %w", n.title, err)
		}
		if n.read {
			if err := notifications.MarkRead(ctx, created.ID); err != nil {
				return fmt.Errorf("seed notification read flag: %w", err)
			}
		}
	}

	students := NewStudentRepo(db)
	for _, s := range []domain.Student{
		{Name: "Juan Pérez", Progress: 80},
		{Name: "María López", Progress: 60},
		{Name: "Carlos García", Progress: 90},
	} {
		st := s
		if err := students.Create(ctx, &st); err != nil {
			return fmt.Errorf("seed student %q: %w", s.Name, err)
		}
	}

	log.Info().Msg("demo notifications and students seeded")
	return nil
}
