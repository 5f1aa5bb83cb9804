package service

import (
	"context"
	"slices"
	"strings"

	"sigma/internal/models"
	"sigma/internal/repository"

	"github.com/google/uuid"
)

type ElementService struct {
	guard    *repository.Guard
	elements repository.ElementRepo
}

func NewElementService(guard *repository.Guard, elements repository.ElementRepo) *ElementService {
	return &ElementService{guard: guard, elements: elements}
}

// ByStationAndType returns the station's elements of one installation type in stored order.
func (s *ElementService) ByStationAndType(ctx context.Context, stationID string, typ models.InstallationType) ([]models.Element, error) {
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(all, func(e models.Element) bool {
		return e.StationID != stationID || e.InstallationType != typ
	}), nil
}

// CountsByStation counts the station's elements per installation type.
func (s *ElementService) CountsByStation(ctx context.Context, stationID string) (map[models.InstallationType]int, error) {
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[models.InstallationType]int)
	for _, e := range all {
		if e.StationID == stationID {
			counts[e.InstallationType]++
		}
	}
	return counts, nil
}

// Get returns (nil, nil) when no element has the id.
func (s *ElementService) Get(ctx context.Context, id string) (*models.Element, error) {
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

// normalizeElement trims the station and upper-cases the installation type
// so the element stays reachable through ByStationAndType.
func normalizeElement(e *models.Element) error {
	e.StationID = strings.TrimSpace(e.StationID)
	e.InstallationType = models.InstallationType(strings.ToUpper(strings.TrimSpace(string(e.InstallationType))))
	if e.StationID == "" || !e.InstallationType.Valid() {
		return ErrInvalidElement
	}
	return nil
}

// Create appends a new element, generating its id when missing.
func (s *ElementService) Create(ctx context.Context, e models.Element) (models.Element, error) {
	if err := normalizeElement(&e); err != nil {
		return models.Element{}, err
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	unlock := s.guard.Lock(repository.CollectionElements)
	defer unlock()

	all, err := s.elements.List(ctx)
	if err != nil {
		return models.Element{}, err
	}
	if err := s.elements.ReplaceAll(ctx, append(all, e)); err != nil {
		return models.Element{}, err
	}
	return e, nil
}

// Update replaces the element with the same id; the last writer wins.
// An unknown id is a no-op.
func (s *ElementService) Update(ctx context.Context, e models.Element) error {
	if e.ID == "" {
		return ErrElementIDRequired
	}
	if err := normalizeElement(&e); err != nil {
		return err
	}

	unlock := s.guard.Lock(repository.CollectionElements)
	defer unlock()

	all, err := s.elements.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range all {
		if all[i].ID == e.ID {
			all[i] = e
			found = true
		}
	}
	if !found {
		return nil
	}
	return s.elements.ReplaceAll(ctx, all)
}

// Delete removes the element; worklists keep referencing it. An unknown id is a no-op.
func (s *ElementService) Delete(ctx context.Context, id string) error {
	unlock := s.guard.Lock(repository.CollectionElements)
	defer unlock()

	all, err := s.elements.List(ctx)
	if err != nil {
		return err
	}
	kept := slices.DeleteFunc(all, func(e models.Element) bool { return e.ID == id })
	if len(kept) == len(all) {
		return nil
	}
	return s.elements.ReplaceAll(ctx, kept)
}

// SeedIfEmpty stores elements only when the registry has never been populated.
func (s *ElementService) SeedIfEmpty(ctx context.Context, elements []models.Element) (int, error) {
	unlock := s.guard.Lock(repository.CollectionElements)
	defer unlock()

	all, err := s.elements.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(all) > 0 || len(elements) == 0 {
		return 0, nil
	}
	if err := s.elements.ReplaceAll(ctx, elements); err != nil {
		return 0, err
	}
	return len(elements), nil
}

func (s *ElementService) list(ctx context.Context) ([]models.Element, error) {
	unlock := s.guard.Lock(repository.CollectionElements)
	defer unlock()
	return s.elements.List(ctx)
}
