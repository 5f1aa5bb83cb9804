package service

import (
	"context"
	"time"

	"sigma/internal/cycle"
	"sigma/internal/metrics"
	"sigma/internal/models"
	"sigma/internal/repository"
)

// ComplianceService aggregates worklists of a semester against live element state.
// Like WorklistService.Get, it reads lists and elements in two separate steps.
type ComplianceService struct {
	guard    *repository.Guard
	lists    repository.ListRepo
	elements repository.ElementRepo
}

func NewComplianceService(guard *repository.Guard, lists repository.ListRepo, elements repository.ElementRepo) *ComplianceService {
	return &ComplianceService{guard: guard, lists: lists, elements: elements}
}

// SemesterStats counts, per installation type, every item of the semester's
// worklists and how many of them reference an element that is completed right
// now. Items of deleted elements count toward total only. Types without items
// are absent; a semester without lists yields an empty map.
func (s *ComplianceService) SemesterStats(ctx context.Context, semester cycle.Semester, year int) (models.SemesterStats, error) {
	started := time.Now()
	stats, err := s.semesterStats(ctx, semester, year)
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	}
	metrics.ObserveSemesterStats(result, time.Since(started))
	return stats, err
}

func (s *ComplianceService) semesterStats(ctx context.Context, semester cycle.Semester, year int) (models.SemesterStats, error) {
	if err := semester.Validate(); err != nil {
		return nil, err
	}

	selected, err := s.semesterLists(ctx, semester, year)
	if err != nil {
		return nil, err
	}
	stats := models.SemesterStats{}
	if len(selected) == 0 {
		return stats, nil
	}

	unlock := s.guard.Lock(repository.CollectionElements)
	elements, err := s.elements.List(ctx)
	unlock()
	if err != nil {
		return nil, err
	}
	live := indexElements(elements)

	for _, list := range selected {
		for _, item := range list.Items {
			st := stats[item.InstallationType]
			st.Total++
			if done, _ := live.completion(item.ElementID); done {
				st.Completed++
			}
			stats[item.InstallationType] = st
		}
	}
	return stats, nil
}

// semesterLists returns stored lists of year whose month lies in semester.
func (s *ComplianceService) semesterLists(ctx context.Context, semester cycle.Semester, year int) ([]models.MonthlyList, error) {
	unlock := s.guard.Lock(repository.CollectionLists)
	defer unlock()

	lists, err := s.lists.List(ctx)
	if err != nil {
		return nil, err
	}
	selected := lists[:0]
	for _, l := range lists {
		if l.Year == year && semester.Contains(l.Month) {
			selected = append(selected, l)
		}
	}
	return selected, nil
}
