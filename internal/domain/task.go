package domain

// Task statuses as shown in the admin task board.
const (
	TaskStatusPending   = "Pendiente"
	TaskStatusCompleted = "Completada"
)

type Task struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Status      string `json:"status" db:"status"`
	// Date is normalized to YYYY-MM-DD to avoid timezone drift between
	// client and server.
	Date string `json:"date" db:"date"`
}

type TaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status"`
	Date        string `json:"date"`
}
