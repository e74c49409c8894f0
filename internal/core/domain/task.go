package domain

import "time"

// DefaultPriority is assigned when a create payload omits priority.
// The semantic range is 1 (highest) to 5 (lowest); the range itself is
// not enforced anywhere.
const DefaultPriority = 3

type Task struct {
	ID          int64
	Title       string
	Description *string
	Done        bool
	Priority    *int
	DueDate     *time.Time
	CreatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Done        bool
	Priority    *int
	DueDate     *time.Time
}

// UpdateTaskInput carries a partial update. For nullable fields the Set flag
// distinguishes "omitted" from "explicitly set to null": when the flag is
// true and the pointer is nil the stored value is cleared.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Done           *bool
	Priority       *int
	PrioritySet    bool
	DueDate        *time.Time
	DueDateSet     bool
}

// Empty reports whether the update carries no fields at all.
func (in UpdateTaskInput) Empty() bool {
	return in.Title == nil &&
		!in.DescriptionSet &&
		in.Done == nil &&
		!in.PrioritySet &&
		!in.DueDateSet
}

// TaskFilter narrows a list query. Nil pointers and the empty query string
// mean the criterion is not applied; provided criteria are AND-combined.
type TaskFilter struct {
	Query    string
	Done     *bool
	Priority *int
	Limit    int
	Offset   int
}
