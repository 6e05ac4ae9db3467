package dto

// CreateTaskRequest carries a new task.
type CreateTaskRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	ProjectID   int64   `json:"projectId" binding:"required"`
	AssignedTo  int64   `json:"assignedTo" binding:"required"`
	Status      string  `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate     *string `json:"dueDate" binding:"omitempty,datestring"`
}

// UpdateTaskRequest defines partial task updates.
type UpdateTaskRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	AssignedTo  *int64  `json:"assignedTo"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate     *string `json:"dueDate" binding:"omitempty,datestring"`
}
