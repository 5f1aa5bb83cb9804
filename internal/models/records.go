package models

// MaintenanceRecord is an append-only log entry for a maintenance action on an element.
type MaintenanceRecord struct {
	ID        string  `json:"id"`
	ElementID string  `json:"elementId"`
	Date      string  `json:"date"` // ISO-8601 date
	Data      Payload `json:"data,omitempty"`
}

// FaultRecord is an append-only log entry for a fault found on an element.
type FaultRecord struct {
	ID        string  `json:"id"`
	ElementID string  `json:"elementId"`
	Date      string  `json:"date"` // ISO-8601 date
	Data      Payload `json:"data,omitempty"`
}

// MaintenanceEntry is a maintenance record joined with the element it refers to.
type MaintenanceEntry struct {
	MaintenanceRecord
	ElementName string `json:"elementName,omitempty"`
	StationID   string `json:"stationId,omitempty"`
}
