package domain

import "time"

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
	RoleViewer UserRole = "viewer"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleViewer:
		return true
	}
	return false
}

// User belongs to at most one team. TeamID nil means no team.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	TeamID    *string   `json:"team_id"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateUser struct {
	Email  string
	Name   string
	TeamID *string
	Role   UserRole
}

type UserUpdate struct {
	Email  Optional[string]
	Name   Optional[string]
	TeamID Optional[string]
	Role   Optional[UserRole]
}
