package domain

import "time"

// Notification is a persisted message record with read/unread state and a
// free-form category label used only for client-side filtering.
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Detail    string    `json:"detail" db:"detail"`
	Read      bool      `json:"read" db:"read"`
	Type      string    `json:"type" db:"type"`
	Message   string    `json:"message" db:"message"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// CreateNotificationRequest is the validated input for notification creation,
// shared by the REST endpoint and the broadcast channel's inbound event.
type CreateNotificationRequest struct {
	Title   string `json:"title" validate:"required"`
	Detail  string `json:"detail" validate:"required"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NotificationDefaults is the enumerated default table injected into the
// notification service at construction, replacing literals scattered across
// call sites.
type NotificationDefaults struct {
	Type    string
	Message string
}

// DefaultNotificationDefaults matches the column defaults of the
// notifications table.
func DefaultNotificationDefaults() NotificationDefaults {
	return NotificationDefaults{
		Type:    "general",
		Message: "Mensaje por defecto",
	}
}
