package domain

import "time"

type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateTeam struct {
	Name        string
	Description *string
}

type TeamUpdate struct {
	Name        Optional[string]
	Description Optional[string]
}
