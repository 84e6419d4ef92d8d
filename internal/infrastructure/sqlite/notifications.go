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

// NotificationRepo provides typed SQLite operations for the notifications
// table.
type NotificationRepo struct {
	db *sqlx.DB
}

func NewNotificationRepo(db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// Create inserts a row, assigns id and timestamp, and returns the full
// record. The timestamp is set here, once, and never updated afterwards.
func (r *NotificationRepo) Create(ctx context.Context, title, detail, typ, message string) (*domain.Notification, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (title, detail, read, type, message, timestamp)
		 VALUES (?, ?, 0, ?, ?, ?)`,
		title, detail, typ, message, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("notification last insert id: %w", err)
	}
	return &domain.Notification{
		ID:        id,
		Title:     title,
		Detail:    detail,
		Read:      false,
		Type:      typ,
		Message:   message,
		Timestamp: now,
	}, nil
}

// ListAll returns every notification, or only those matching filterType when
// it is non-empty. Natural table order, as the clients expect.
func (r *NotificationRepo) ListAll(ctx context.Context, filterType string) ([]domain.Notification, error) {
	var notifications []domain.Notification
	var err error
	if filterType != "" {
		err = r.db.SelectContext(ctx, &notifications,
			"SELECT * FROM notifications WHERE type = ?", filterType)
	} else {
		err = r.db.SelectContext(ctx, &notifications, "SELECT * FROM notifications")
	}
	if err != nil {
		return nil, fmt.Errorf("select notifications: %w", err)
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	return notifications, nil
}

func (r *NotificationRepo) Get(ctx context.Context, id int64) (*domain.Notification, error) {
	var n domain.Notification
	err := r.db.GetContext(ctx, &n, "SELECT * FROM notifications WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("notification %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return &n, nil
}

// MarkRead sets read=1. Marking an already-read notification again is a
// no-op, not an error; an unknown id is ErrNotFound.
func (r *NotificationRepo) MarkRead(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "UPDATE notifications SET read = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark notification read affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("notification %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *NotificationRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM notifications WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete notification affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("notification %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *NotificationRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM notifications"); err != nil {
		return 0, fmt.Errorf("count notifications: %w", err)
	}
	return n, nil
}
