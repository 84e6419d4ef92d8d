package domain

// Profile describes a role for the admin profile manager. It is the
// persisted form of the role catalog.
type Profile struct {
	ID          int64  `json:"id" db:"id"`
	Role        string `json:"role" db:"role"`
	Description string `json:"description" db:"description"`
}

type ProfileRequest struct {
	Role        string `json:"role" validate:"required"`
	Description string `json:"description"`
}

// ProfileUsage tells the admin screens whether a profile is safe to delete.
type ProfileUsage struct {
	Role      string `json:"role"`
	UserCount int    `json:"userCount"`
	CanDelete bool   `json:"canDelete"`
}
