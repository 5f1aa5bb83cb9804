package repository

import (
	"context"
	"encoding/json"
)

// Collection names and scalar keys of the record store.
const (
	CollectionUsers       = "users"
	CollectionAgents      = "agents"
	CollectionElements    = "elements"
	CollectionMaintenance = "maintenance"
	CollectionFaults      = "faults"
	CollectionLists       = "lists"

	KeyLastReset = "last_semester_reset"
)

// RecordStore maps a collection name to an ordered sequence of JSON records.
// Every call is atomic on its own; nothing spans calls.
type RecordStore interface {
	// ReadAll returns the collection in stored order, empty if it was never written.
	ReadAll(ctx context.Context, collection string) ([]json.RawMessage, error)
	// WriteAll replaces the whole collection.
	WriteAll(ctx context.Context, collection string, records []json.RawMessage) error
	// ReadValue returns a scalar value and whether it exists.
	ReadValue(ctx context.Context, key string) (string, bool, error)
	WriteValue(ctx context.Context, key, value string) error
}
