package dto

type TaskItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

type CreateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// UpdateTaskRequest mirrors CreateTaskRequest; presence of each field is
// decided against the raw JSON body, not against the decoded pointers.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

type TaskListResponse struct {
	Success bool       `json:"success"`
	Count   int        `json:"count"`
	Data    []TaskItem `json:"data"`
}

type TaskResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    TaskItem `json:"data"`
}

type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type BoardResponse struct {
	Success bool      `json:"success"`
	Count   int       `json:"count"`
	Data    BoardView `json:"data"`
}

// BoardView carries grouped buckets when no status filter is active and a
// flat list otherwise.
type BoardView struct {
	Grouped bool         `json:"grouped"`
	Groups  []BoardGroup `json:"groups,omitempty"`
	Tasks   []TaskItem   `json:"tasks,omitempty"`
}

type BoardGroup struct {
	Status string     `json:"status"`
	Count  int        `json:"count"`
	Tasks  []TaskItem `json:"tasks"`
}
