package service

import (
	"context"
	"slices"
	"strings"

	"sigma/internal/metrics"
	"sigma/internal/models"
	"sigma/internal/repository"

	"github.com/google/uuid"
)

type MaintenanceService struct {
	guard       *repository.Guard
	maintenance repository.MaintenanceRepo
	faults      repository.FaultRepo
	elements    repository.ElementRepo
	policy      MaintenancePolicy
}

func NewMaintenanceService(
	guard *repository.Guard,
	maintenance repository.MaintenanceRepo,
	faults repository.FaultRepo,
	elements repository.ElementRepo,
	policy MaintenancePolicy,
) *MaintenanceService {
	return &MaintenanceService{
		guard:       guard,
		maintenance: maintenance,
		faults:      faults,
		elements:    elements,
		policy:      policy,
	}
}

// AddMaintenance appends rec and sets the referenced element's
// lastMaintenanceDate to rec.Date. With policy.MarkCompleted the element is
// also marked completed. An unknown element id only appends the record.
//
// The elements are read and stamped in memory before anything is written, so
// a failed read leaves both collections untouched. The record append and the
// elements write are still two writes under the maintenance and elements
// locks. If the second one fails the record is kept without the stamp.
func (s *MaintenanceService) AddMaintenance(ctx context.Context, rec models.MaintenanceRecord) (models.MaintenanceRecord, error) {
	var err error
	if rec.ElementID = strings.TrimSpace(rec.ElementID); rec.ElementID == "" {
		return models.MaintenanceRecord{}, ErrElementIDRequired
	}
	if rec.Date, err = normalizeDate(rec.Date); err != nil {
		return models.MaintenanceRecord{}, err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	unlock := s.guard.Lock(repository.CollectionMaintenance, repository.CollectionElements)
	defer unlock()

	elements, err := s.elements.List(ctx)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	var typ models.InstallationType
	touched := false
	for i := range elements {
		if elements[i].ID != rec.ElementID {
			continue
		}
		date := rec.Date
		elements[i].LastMaintenanceDate = &date
		if s.policy.MarkCompleted {
			elements[i].IsCompleted = true
		}
		typ = elements[i].InstallationType
		touched = true
	}

	if err := s.maintenance.Append(ctx, rec); err != nil {
		return models.MaintenanceRecord{}, err
	}
	if touched {
		if err := s.elements.ReplaceAll(ctx, elements); err != nil {
			return models.MaintenanceRecord{}, err
		}
	}

	metrics.IncMaintenanceRecord(string(typ))
	return rec, nil
}

// MaintenanceHistory returns the element's maintenance records, newest first.
func (s *MaintenanceService) MaintenanceHistory(ctx context.Context, elementID string) ([]models.MaintenanceRecord, error) {
	records, err := s.maintenanceRecords(ctx)
	if err != nil {
		return nil, err
	}
	records = slices.DeleteFunc(records, func(r models.MaintenanceRecord) bool { return r.ElementID != elementID })
	slices.SortStableFunc(records, func(a, b models.MaintenanceRecord) int { return strings.Compare(b.Date, a.Date) })
	return records, nil
}

// AddFault appends rec; faults do not touch the element.
func (s *MaintenanceService) AddFault(ctx context.Context, rec models.FaultRecord) (models.FaultRecord, error) {
	var err error
	if rec.ElementID = strings.TrimSpace(rec.ElementID); rec.ElementID == "" {
		return models.FaultRecord{}, ErrElementIDRequired
	}
	if rec.Date, err = normalizeDate(rec.Date); err != nil {
		return models.FaultRecord{}, err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	unlock := s.guard.Lock(repository.CollectionFaults)
	defer unlock()

	if err := s.faults.Append(ctx, rec); err != nil {
		return models.FaultRecord{}, err
	}
	metrics.IncFaultRecord()
	return rec, nil
}

// FaultHistory returns the element's fault records, newest first.
func (s *MaintenanceService) FaultHistory(ctx context.Context, elementID string) ([]models.FaultRecord, error) {
	unlock := s.guard.Lock(repository.CollectionFaults)
	records, err := s.faults.List(ctx)
	unlock()
	if err != nil {
		return nil, err
	}
	records = slices.DeleteFunc(records, func(r models.FaultRecord) bool { return r.ElementID != elementID })
	slices.SortStableFunc(records, func(a, b models.FaultRecord) int { return strings.Compare(b.Date, a.Date) })
	return records, nil
}

// Daily lists maintenance performed on date, joined with element name and station.
func (s *MaintenanceService) Daily(ctx context.Context, date string) ([]models.MaintenanceEntry, error) {
	day, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	return s.entries(ctx, func(r models.MaintenanceRecord) bool { return r.Date == day })
}

// Monthly lists maintenance performed in the given month, joined with element name.
func (s *MaintenanceService) Monthly(ctx context.Context, month, year int) ([]models.MaintenanceEntry, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	return s.entries(ctx, func(r models.MaintenanceRecord) bool { return inPeriod(r.Date, month, year) })
}

func (s *MaintenanceService) entries(ctx context.Context, keep func(models.MaintenanceRecord) bool) ([]models.MaintenanceEntry, error) {
	records, err := s.maintenanceRecords(ctx)
	if err != nil {
		return nil, err
	}

	unlock := s.guard.Lock(repository.CollectionElements)
	elements, err := s.elements.List(ctx)
	unlock()
	if err != nil {
		return nil, err
	}
	live := indexElements(elements)

	out := make([]models.MaintenanceEntry, 0, len(records))
	for _, r := range records {
		if !keep(r) {
			continue
		}
		entry := models.MaintenanceEntry{MaintenanceRecord: r}
		if e, ok := live[r.ElementID]; ok {
			entry.ElementName = e.Name
			entry.StationID = e.StationID
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *MaintenanceService) maintenanceRecords(ctx context.Context) ([]models.MaintenanceRecord, error) {
	unlock := s.guard.Lock(repository.CollectionMaintenance)
	defer unlock()
	return s.maintenance.List(ctx)
}
