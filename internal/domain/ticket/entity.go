package ticket

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func IsValidPriority(p string) bool {
	switch Priority(p) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

type Ticket struct {
	ID          string
	CustomerID  *string
	Subject     string
	Description *string
	Priority    Priority
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	CustomerName  *string
	CustomerEmail *string
}
