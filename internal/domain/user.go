package domain

import "time"

// Canonical role names. The source data mixed "admin"/"Administrador" casing;
// these constants are the single naming scheme used everywhere.
const (
	RoleAdmin    = "admin"
	RoleEducator = "Educador"
	RoleStudent  = "Estudiante"
)

// Roles lists every valid role, in the order the admin UI presents them.
func Roles() []string {
	return []string{RoleAdmin, RoleEducator, RoleStudent}
}

// ValidRole reports whether name is one of the canonical roles.
func ValidRole(name string) bool {
	for _, r := range Roles() {
		if r == name {
			return true
		}
	}
	return false
}

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	Approved     bool      `json:"approved" db:"approved"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	// User accepts either the username or the email address.
	User     string `json:"user" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
}

type ApproveUserRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}
