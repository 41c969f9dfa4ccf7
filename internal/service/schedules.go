package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Roma7-7-7/poweron-notifier/internal/dal"
)

//go:generate mockgen -package mocks -destination mocks/schedules.go . ScheduleStore,ScheduleProvider

// DefaultCacheTTL is the freshness threshold: entries older than this are
// treated as absent on the read path.
const DefaultCacheTTL = 30 * time.Minute

type Clock interface {
	Now() time.Time
}

type ScheduleStore interface {
	GetSchedule(date, group string) (dal.ScheduleEntry, bool, error)
	PutSchedule(date, group string, times dal.StatusSeries) error
}

type ScheduleProvider interface {
	Events(ctx context.Context) ([]dal.ScheduleEvent, error)
}

// Schedules owns the schedule cache: it populates it from the upstream
// provider and answers reads with the freshness policy applied.
type Schedules struct {
	store    ScheduleStore
	provider ScheduleProvider
	clock    Clock
	cacheTTL time.Duration

	log *slog.Logger
	mx  *sync.Mutex
}

func NewSchedules(store ScheduleStore, provider ScheduleProvider, clock Clock, cacheTTL time.Duration, log *slog.Logger) *Schedules {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &Schedules{
		store:    store,
		provider: provider,
		clock:    clock,
		cacheTTL: cacheTTL,
		log:      log.With("component", "service").With("service", "schedules"),
		mx:       &sync.Mutex{},
	}
}

// Refresh fetches the current rolling window from upstream and upserts a
// cache entry for EVERY (date, group) pair present in the response, not only
// the group the caller cares about. Returns the parsed events in upstream
// order so the monitor can inspect the newest revision id without another
// round trip.
func (s *Schedules) Refresh(ctx context.Context) ([]dal.ScheduleEvent, error) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.log.InfoContext(ctx, "refreshing schedules")

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	events, err := s.provider.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("get schedule events: %w", err)
	}
	if len(events) == 0 {
		s.log.InfoContext(ctx, "no schedule events available")
		return nil, nil
	}

	for _, event := range events {
		for group, series := range event.Groups {
			if err := s.store.PutSchedule(event.Date, group, series); err != nil {
				// One failed pair should not lose the rest of the response
				s.log.ErrorContext(ctx, "failed to cache schedule", "date", event.Date, "group", group, "error", err)
			}
		}
	}
	s.log.InfoContext(ctx, "refreshed schedules", "events", len(events))

	return events, nil
}

// CachedSchedule returns the cached series for (date, group) together with
// its last update time. An entry older than the freshness threshold is
// reported absent even though the row still exists at the storage layer.
func (s *Schedules) CachedSchedule(date, group string) (dal.StatusSeries, time.Time, bool, error) {
	entry, found, err := s.store.GetSchedule(date, group)
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("get schedule for date=%s group=%s: %w", date, group, err)
	}
	if !found {
		return nil, time.Time{}, false, nil
	}

	age := s.clock.Now().UTC().Sub(entry.UpdatedAt)
	if age >= s.cacheTTL {
		s.log.Info("schedule cache entry expired", "date", date, "group", group, "age", age)
		return nil, time.Time{}, false, nil
	}

	return entry.Times, entry.UpdatedAt, true, nil
}
