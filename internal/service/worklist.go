package service

import (
	"cmp"
	"context"
	"slices"

	"sigma/internal/metrics"
	"sigma/internal/models"
	"sigma/internal/repository"

	"github.com/google/uuid"
)

// WorklistService stores one MonthlyList per (month, year). Stored items are a
// roster plus a completion snapshot; every read reconciles the snapshot
// against the element registry.
//
// Reads take the lists lock and then the elements lock, one after the other.
// An element write landing between the two reads can produce a stale view.
type WorklistService struct {
	guard    *repository.Guard
	lists    repository.ListRepo
	elements repository.ElementRepo
	now      Clock
}

func NewWorklistService(guard *repository.Guard, lists repository.ListRepo, elements repository.ElementRepo, now Clock) *WorklistService {
	return &WorklistService{guard: guard, lists: lists, elements: elements, now: now}
}

// Save stores list as the worklist of its period, discarding any list already
// stored for the same (month, year). Items are not merged.
func (s *WorklistService) Save(ctx context.Context, list models.MonthlyList) (models.MonthlyList, error) {
	if err := validatePeriod(list.Month, list.Year); err != nil {
		return models.MonthlyList{}, err
	}
	if list.ID == "" {
		list.ID = uuid.NewString()
	}
	if list.Items == nil {
		list.Items = []models.ListItem{}
	}
	list.Items = slices.Clone(list.Items)
	list.UpdatedAt = s.now().UTC()

	unlock := s.guard.Lock(repository.CollectionLists)
	defer unlock()

	stored, err := s.lists.List(ctx)
	if err != nil {
		return models.MonthlyList{}, err
	}
	kept := slices.DeleteFunc(stored, func(l models.MonthlyList) bool {
		return l.Month == list.Month && l.Year == list.Year
	})
	replaced := len(kept) != len(stored)
	if err := s.lists.ReplaceAll(ctx, append(kept, list)); err != nil {
		return models.MonthlyList{}, err
	}

	metrics.IncWorklistSave(replaced)
	return list, nil
}

// Get returns the worklist of the period with live completion, or nil when
// none was saved.
func (s *WorklistService) Get(ctx context.Context, month, year int) (*models.MonthlyList, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	stored, err := s.findList(ctx, month, year)
	if err != nil || stored == nil {
		return nil, err
	}
	live, err := s.liveElements(ctx)
	if err != nil {
		return nil, err
	}
	view := reconcileList(*stored, live)
	return &view, nil
}

// Draft builds an unsaved worklist from the registry, ordered by installation
// type then element name.
func (s *WorklistService) Draft(ctx context.Context, p DraftParams) (models.MonthlyList, error) {
	if err := validatePeriod(p.Month, p.Year); err != nil {
		return models.MonthlyList{}, err
	}

	unlock := s.guard.Lock(repository.CollectionElements)
	elements, err := s.elements.List(ctx)
	unlock()
	if err != nil {
		return models.MonthlyList{}, err
	}

	picked := slices.DeleteFunc(elements, func(e models.Element) bool {
		if p.StationID != "" && e.StationID != p.StationID {
			return true
		}
		if len(p.Types) > 0 && !slices.Contains(p.Types, e.InstallationType) {
			return true
		}
		return p.PendingOnly && e.IsCompleted
	})
	slices.SortStableFunc(picked, func(a, b models.Element) int {
		return cmp.Or(
			cmp.Compare(a.InstallationType, b.InstallationType),
			cmp.Compare(a.Name, b.Name),
		)
	})

	items := make([]models.ListItem, 0, len(picked))
	for _, e := range picked {
		items = append(items, models.ListItem{
			ElementID:        e.ID,
			InstallationType: e.InstallationType,
			Completed:        e.IsCompleted,
		})
	}
	return models.MonthlyList{Month: p.Month, Year: p.Year, Items: items}, nil
}

func (s *WorklistService) findList(ctx context.Context, month, year int) (*models.MonthlyList, error) {
	unlock := s.guard.Lock(repository.CollectionLists)
	defer unlock()

	lists, err := s.lists.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range lists {
		if lists[i].Month == month && lists[i].Year == year {
			return &lists[i], nil
		}
	}
	return nil, nil
}

func (s *WorklistService) liveElements(ctx context.Context) (elementIndex, error) {
	unlock := s.guard.Lock(repository.CollectionElements)
	defer unlock()

	elements, err := s.elements.List(ctx)
	if err != nil {
		return nil, err
	}
	return indexElements(elements), nil
}
