package dto

// TaskItem keeps null fields in the response body so clients can tell an
// unset description/priority/due_date apart from a missing key.
type TaskItem struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Done        bool    `json:"done"`
	Priority    *int    `json:"priority"`
	DueDate     *string `json:"due_date"`
	CreatedAt   string  `json:"created_at"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Done        *bool   `json:"done"`
	Priority    *int    `json:"priority"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Done        *bool   `json:"done"`
	Priority    *int    `json:"priority"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}
