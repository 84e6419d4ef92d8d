package domain

import "time"

type Student struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Progress int     `json:"progress" db:"progress"`
	PhotoURL *string `json:"photo,omitempty" db:"photo_url"`
}

// ClassHistoryEntry is one row of a student's class-assignment history,
// newest first.
type ClassHistoryEntry struct {
	Name       string    `json:"name" db:"name"`
	AssignedAt time.Time `json:"assigned_at" db:"assigned_at"`
}

// Recommendation is an educator's note for a student. Recommendations are
// persisted and feed the report counters.
type Recommendation struct {
	ID             int64     `json:"id" db:"id"`
	StudentID      int64     `json:"student_id" db:"student_id"`
	Recommendation string    `json:"recommendation" db:"recommendation"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

type RecommendationRequest struct {
	Recommendation string `json:"recommendation" validate:"required"`
}

// UnassignedStudent is a student-role user not yet assigned to any class.
type UnassignedStudent struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
}
