package subjective

import "github.com/google/uuid"

// Subject is a named, colored category that class bells reference by ID.
type Subject struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     Color     `json:"color"`
	Locations []string  `json:"locations"`
	Icon      string    `json:"iconName"`
}
