package domain

import "time"

// Comment is append-only: never mutated after creation. A nil UserID marks
// the comment as authored by an automated process.
type Comment struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"task_id"`
	UserID      *string   `json:"user_id"`
	Content     string    `json:"content"`
	IsAutomated bool      `json:"is_automated"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateComment struct {
	TaskID      string
	Content     string
	AuthorID    *string
	IsAutomated bool
}
