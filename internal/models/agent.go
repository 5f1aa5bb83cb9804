package models

type Agent struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	AssignedSectorID *string `json:"assignedSectorId"`
}
