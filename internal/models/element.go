package models

// InstallationType is the maintenance category of an element.
type InstallationType string

const (
	InstallationCircuits InstallationType = "CIRCUITOS"
	InstallationMotors   InstallationType = "MOTORES"
)

// Payload carries type-specific measurements. It is stored and returned as is.
type Payload map[string]any

// Element is a single piece of installation tracked for periodic maintenance.
type Element struct {
	ID                  string           `json:"id"`
	StationID           string           `json:"stationId"`
	InstallationType    InstallationType `json:"installationType"`
	Name                string           `json:"name"`
	IsCompleted         bool             `json:"isCompleted"`                   // maintained in the current semester
	LastMaintenanceDate *string          `json:"lastMaintenanceDate,omitempty"` // ISO-8601 date
	Data                Payload          `json:"data,omitempty"`
}

// Valid reports whether t is one of the known installation types.
func (t InstallationType) Valid() bool {
	return t == InstallationCircuits || t == InstallationMotors
}
