package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Roma7-7-7/poweron-notifier/internal/dal"
)

//go:generate mockgen -package mocks -destination mocks/monitor.go . MonitorStore,ScheduleFetcher,UpdatesNotifier

type MonitorStore interface {
	GetMonitorState() (dal.MonitorState, bool, error)
	PutMonitorState(state dal.MonitorState) error
}

type ScheduleFetcher interface {
	Refresh(ctx context.Context) ([]dal.ScheduleEvent, error)
}

type UpdatesNotifier interface {
	NotifyAll(ctx context.Context, date string) error
}

// Monitor detects new schedule revisions. The first observed revision only
// primes the persisted state; afterwards a strictly greater id triggers
// exactly one notification fan-out. Ids lower than the stored one are
// ignored to keep out-of-order upstream data from producing spurious
// notifications.
type Monitor struct {
	fetcher  ScheduleFetcher
	store    MonitorStore
	notifier UpdatesNotifier

	log *slog.Logger
	mx  *sync.Mutex
}

func NewMonitor(fetcher ScheduleFetcher, store MonitorStore, notifier UpdatesNotifier, log *slog.Logger) *Monitor {
	return &Monitor{
		fetcher:  fetcher,
		store:    store,
		notifier: notifier,
		log:      log.With("component", "service").With("service", "monitor"),
		mx:       &sync.Mutex{},
	}
}

// Check runs a single monitor tick. Errors are reported to the caller for
// logging only; the poll loop keeps ticking regardless.
func (m *Monitor) Check(ctx context.Context) error {
	m.mx.Lock()
	defer m.mx.Unlock()
	m.log.InfoContext(ctx, "checking for schedule updates")

	events, err := m.fetcher.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refresh schedules: %w", err)
	}
	if len(events) == 0 {
		m.log.InfoContext(ctx, "schedule is empty or unavailable")
		return nil
	}

	// Upstream orders events newest first; the first one is the latest
	// revision.
	latest := events[0]

	state, found, err := m.store.GetMonitorState()
	if err != nil {
		return fmt.Errorf("get monitor state: %w", err)
	}

	if !found {
		if err := m.store.PutMonitorState(dal.MonitorState{LastID: latest.ID}); err != nil {
			return fmt.Errorf("persist initial monitor state: %w", err)
		}
		m.log.InfoContext(ctx, "initial monitor state saved", "lastID", latest.ID)
		return nil
	}

	switch {
	case latest.ID > state.LastID:
		m.log.InfoContext(ctx, "new schedule revision detected", "oldID", state.LastID, "newID", latest.ID)

		if err := m.store.PutMonitorState(dal.MonitorState{LastID: latest.ID}); err != nil {
			return fmt.Errorf("persist monitor state: %w", err)
		}
		if err := m.notifier.NotifyAll(ctx, latest.Date); err != nil {
			return fmt.Errorf("notify subscribers: %w", err)
		}
	case latest.ID < state.LastID:
		m.log.DebugContext(ctx, "upstream returned older revision", "lastID", state.LastID, "gotID", latest.ID)
	default:
		m.log.InfoContext(ctx, "no new schedule revision", "lastID", state.LastID)
	}

	return nil
}
