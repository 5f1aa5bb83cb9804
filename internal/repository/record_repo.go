package repository

import (
	"context"
	"fmt"
	"time"

	"sigma/internal/models"
)

// MaintenanceRepository is the append-only maintenance log.
type MaintenanceRepository struct {
	records collection[models.MaintenanceRecord]
}

func NewMaintenanceRepository(store RecordStore) *MaintenanceRepository {
	return &MaintenanceRepository{records: collection[models.MaintenanceRecord]{store: store, name: CollectionMaintenance}}
}

var _ MaintenanceRepo = (*MaintenanceRepository)(nil)

func (r *MaintenanceRepository) Append(ctx context.Context, rec models.MaintenanceRecord) error {
	return r.records.append(ctx, rec)
}

func (r *MaintenanceRepository) List(ctx context.Context) ([]models.MaintenanceRecord, error) {
	return r.records.all(ctx)
}

// FaultRepository is the append-only fault log.
type FaultRepository struct {
	records collection[models.FaultRecord]
}

func NewFaultRepository(store RecordStore) *FaultRepository {
	return &FaultRepository{records: collection[models.FaultRecord]{store: store, name: CollectionFaults}}
}

var _ FaultRepo = (*FaultRepository)(nil)

func (r *FaultRepository) Append(ctx context.Context, rec models.FaultRecord) error {
	return r.records.append(ctx, rec)
}

func (r *FaultRepository) List(ctx context.Context) ([]models.FaultRecord, error) {
	return r.records.all(ctx)
}

type ResetMarkerRepository struct {
	store RecordStore
}

func NewResetMarkerRepository(store RecordStore) *ResetMarkerRepository {
	return &ResetMarkerRepository{store: store}
}

var _ ResetMarkerRepo = (*ResetMarkerRepository)(nil)

// Load parses the stored RFC 3339 timestamp.
func (r *ResetMarkerRepository) Load(ctx context.Context) (*time.Time, error) {
	v, ok, err := r.store.ReadValue(ctx, KeyLastReset)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", KeyLastReset, err)
	}
	if !ok || v == "" {
		return nil, nil
	}
	at, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return nil, fmt.Errorf("parse %s %q: %w", KeyLastReset, v, err)
	}
	return &at, nil
}

func (r *ResetMarkerRepository) Save(ctx context.Context, at time.Time) error {
	if err := r.store.WriteValue(ctx, KeyLastReset, at.Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("write %s: %w", KeyLastReset, err)
	}
	return nil
}
