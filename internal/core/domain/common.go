package domain

import "time"

// Timestamps holds standard creation/modification times for domain entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
