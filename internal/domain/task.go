package domain

import "time"

type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not_started"
	StatusInProgress TaskStatus = "in_progress"
	StatusBlocked    TaskStatus = "blocked"
	StatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusBlocked, StatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityP1 TaskPriority = "P1"
	PriorityP2 TaskPriority = "P2"
	PriorityP3 TaskPriority = "P3"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityP1, PriorityP2, PriorityP3:
		return true
	}
	return false
}

// Rank maps priority to its urgency rank: P1=1 < P2=2 < P3=3, so P1 sorts
// first. Unknown priorities sort last.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityP1:
		return 1
	case PriorityP2:
		return 2
	case PriorityP3:
		return 3
	}
	return 4
}

type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	TeamID      string       `json:"team_id"`
	AssigneeID  *string      `json:"assignee_id"`
	CreatedByID string       `json:"created_by_id"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *string      `json:"due_date"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type CreateTask struct {
	Title       string
	Description *string
	TeamID      string
	AssigneeID  *string
	Priority    TaskPriority
	DueDate     *string
}

type TaskUpdate struct {
	Title       Optional[string]
	Description Optional[string]
	AssigneeID  Optional[string]
	Status      Optional[TaskStatus]
	Priority    Optional[TaskPriority]
	DueDate     Optional[string]
}

// Empty reports whether the update carries no recognized fields. A no-op
// update must not touch the task, including its updated_at.
func (u TaskUpdate) Empty() bool {
	return !u.Title.Set && !u.Description.Set && !u.AssigneeID.Set &&
		!u.Status.Set && !u.Priority.Set && !u.DueDate.Set
}

// TaskFilter combines with logical AND; zero-valued fields impose no
// constraint.
type TaskFilter struct {
	TeamID     string
	AssigneeID string
	Status     TaskStatus
	Priority   TaskPriority
}

// Kanban is a team's task set partitioned by status. All four buckets are
// always present; each preserves the priority/recency sort order.
type Kanban struct {
	NotStarted []*Task `json:"not_started"`
	InProgress []*Task `json:"in_progress"`
	Blocked    []*Task `json:"blocked"`
	Completed  []*Task `json:"completed"`
}
