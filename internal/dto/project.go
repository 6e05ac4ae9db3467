package dto

// CreateProjectRequest carries a new project.
type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	CreatedBy   int64   `json:"createdBy" binding:"required"`
	StartDate   *string `json:"startDate" binding:"omitempty,datestring"`
	EndDate     *string `json:"endDate" binding:"omitempty,datestring"`
	Status      string  `json:"status" binding:"omitempty,oneof=planning in_progress completed suspended cancelled"`
}

// UpdateProjectRequest defines partial project updates.
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartDate   *string `json:"startDate" binding:"omitempty,datestring"`
	EndDate     *string `json:"endDate" binding:"omitempty,datestring"`
	Status      *string `json:"status" binding:"omitempty,oneof=planning in_progress completed suspended cancelled"`
}
