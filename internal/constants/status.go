package constants

type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
	StatusBroken    TaskStatus = "broken"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusBroken:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s.
func (s TaskStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusBroken
}

// CanTransitionTo reports whether s -> next is a legal lifecycle step.
// Only pending tasks move, and only into a terminal state.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	return s == StatusPending && next.Terminal()
}
