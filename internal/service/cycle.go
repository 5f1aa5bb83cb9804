package service

import (
	"context"
	"time"

	"sigma/internal/cycle"
	"sigma/internal/logger"
	"sigma/internal/metrics"
	"sigma/internal/repository"
)

const defaultCheckInterval = time.Hour

// CycleService clears element completion once per semester.
type CycleService struct {
	guard    *repository.Guard
	elements repository.ElementRepo
	marker   repository.ResetMarkerRepo
	now      Clock
	log      *logger.Logger
}

func NewCycleService(guard *repository.Guard, elements repository.ElementRepo, marker repository.ResetMarkerRepo, now Clock, log *logger.Logger) *CycleService {
	return &CycleService{
		guard:    guard,
		elements: elements,
		marker:   marker,
		now:      now,
		log:      log,
	}
}

// CheckAndReset clears isCompleted on every element and advances the reset
// marker when the marker predates the current semester. It reports whether a
// reset was applied. lastMaintenanceDate is left alone.
//
// The elements are written before the marker. If the marker write fails the
// registry stays cleared with the marker unset, so the next check resets
// again and drops any completion recorded in between.
func (s *CycleService) CheckAndReset(ctx context.Context) (bool, error) {
	unlock := s.guard.Lock(repository.CollectionElements, repository.KeyLastReset)
	defer unlock()

	now := s.now()
	last, err := s.marker.Load(ctx)
	if err != nil {
		return false, err
	}
	if !cycle.ShouldReset(now, last) {
		return false, nil
	}

	elements, err := s.elements.List(ctx)
	if err != nil {
		return false, err
	}
	cleared := 0
	for i := range elements {
		if elements[i].IsCompleted {
			cleared++
		}
		elements[i].IsCompleted = false
	}
	if err := s.elements.ReplaceAll(ctx, elements); err != nil {
		return false, err
	}
	if err := s.marker.Save(ctx, now); err != nil {
		return false, err
	}

	metrics.IncSemesterReset(cleared)
	s.log.Infow("semester_reset_applied",
		"cycle_start", cycle.CurrentCycleStart(now).Format(time.DateOnly),
		"elements", len(elements),
		"cleared", cleared,
	)
	return true, nil
}

// Run checks for a due reset at the given interval until ctx is canceled.
func (s *CycleService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = defaultCheckInterval
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := s.CheckAndReset(ctx); err != nil {
				s.log.Errorw("semester_reset_failed", "err", err)
			}
		}
	}
}
