package models

// TypeStats counts scheduled and completed worklist items of one installation type.
type TypeStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// SemesterStats maps installation type to its counts.
type SemesterStats map[InstallationType]TypeStats
