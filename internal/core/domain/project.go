package domain

// ProjectStatus tracks a project's lifecycle stage.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectSuspended  ProjectStatus = "suspended"
	ProjectCancelled  ProjectStatus = "cancelled"
)

// IsValid reports whether the status is one of the known values.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectPlanning, ProjectInProgress, ProjectCompleted, ProjectSuspended, ProjectCancelled:
		return true
	}
	return false
}

// Project groups tasks under a single owner.
type Project struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedBy   int64         `json:"createdBy"`
	StartDate   *string       `json:"startDate"`
	EndDate     *string       `json:"endDate"`
	Status      ProjectStatus `json:"status"`
	Timestamps

	// Joined from users on reads.
	CreatorName string `json:"creatorName,omitempty"`
}
