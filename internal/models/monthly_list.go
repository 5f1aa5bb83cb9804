package models

import "time"

// ListItem is one element scheduled in a monthly worklist.
// Completed is the value seen when the list was saved; reads replace it with the live element state.
type ListItem struct {
	ElementID        string           `json:"elementId"`
	InstallationType InstallationType `json:"installationType"`
	Completed        bool             `json:"completed"`
}

// MonthlyList is the maintenance worklist of a single (month, year) period.
type MonthlyList struct {
	ID        string     `json:"id"`
	Month     int        `json:"month"` // 1-12
	Year      int        `json:"year"`
	Items     []ListItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
