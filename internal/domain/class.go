package domain

import "time"

type Class struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Grade      string `json:"grade" db:"grade"`
	EducatorID *int64 `json:"educator_id" db:"educator_id"`
}

type ClassRequest struct {
	Name       string `json:"name" validate:"required"`
	Grade      string `json:"grade" validate:"required"`
	EducatorID *int64 `json:"educator_id"`
}

// ClassAssignment links one student to one class.
type ClassAssignment struct {
	ID         int64     `json:"id" db:"id"`
	ClassID    int64     `json:"class_id" db:"class_id"`
	StudentID  int64     `json:"student_id" db:"student_id"`
	AssignedAt time.Time `json:"assigned_at" db:"assigned_at"`
}

type AssignStudentRequest struct {
	ClassID   int64 `json:"class_id" validate:"required"`
	StudentID int64 `json:"student_id" validate:"required"`
}

type ReassignStudentRequest struct {
	ID         int64 `json:"id" validate:"required"`
	NewClassID int64 `json:"new_class_id" validate:"required"`
}

// ClassRoster is one row of the classes listing: a class together with the
// name of an assigned student.
type ClassRoster struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Grade   string `json:"grade" db:"grade"`
	Student string `json:"student" db:"student"`
}

// ClassMember is a student as seen inside a class roster.
type ClassMember struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
}
