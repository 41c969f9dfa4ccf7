package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Roma7-7-7/poweron-notifier/internal/dal"
	"github.com/Roma7-7-7/poweron-notifier/internal/service"
)

//go:generate mockgen -package mocks -destination mocks/sync.go . Calendar,Schedules

// Calendar event color IDs (Google Calendar palette)
const (
	colorIDOff       = "11" // Tomato — red
	colorIDSwitching = "5"  // Banana — yellow
	colorIDOn        = "10" // Basil — green
)

const (
	summaryOff       = "Power off"
	summarySwitching = "Switching"
	summaryOn        = "Power on"
)

// Config holds which statuses to mirror and which group's schedule to use.
type Config struct {
	Group         string
	SyncOff       bool
	SyncSwitching bool
	SyncOn        bool
}

type Calendar interface {
	ListOurEvents(ctx context.Context, timeMin, timeMax time.Time) ([]string, error)
	InsertEvent(ctx context.Context, summary string, start, end time.Time, colorID, description string) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type Schedules interface {
	CachedSchedule(date, group string) (dal.StatusSeries, time.Time, bool, error)
}

type Clock interface {
	Now() time.Time
}

// Sync mirrors the configured group's outage intervals for today and tomorrow
// into a Google Calendar. Delete-then-recreate keeps the calendar consistent
// without diffing individual events.
type Sync struct {
	calendar  Calendar
	schedules Schedules
	clock     Clock
	conf      Config

	todayHash    string
	tomorrowHash string

	mx  sync.Mutex
	log *slog.Logger
}

func NewSync(conf Config, calendar Calendar, schedules Schedules, clock Clock, log *slog.Logger) *Sync {
	return &Sync{
		calendar:  calendar,
		schedules: schedules,
		clock:     clock,
		conf:      conf,
		log:       log.With("component", "calendar_sync"),
	}
}

// SyncEvents performs a full sync: read today's and tomorrow's cached
// schedules, skip if nothing changed since the last run, otherwise delete our
// events in [today 00:00, tomorrow 23:59:59] and recreate them.
func (s *Sync) SyncEvents(ctx context.Context) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	now := s.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)
	timeMax := tomorrow.Add(24*time.Hour - time.Second)

	todaySeries, _, hasToday, err := s.schedules.CachedSchedule(today.Format(time.DateOnly), s.conf.Group)
	if err != nil {
		return fmt.Errorf("get today schedule: %w", err)
	}
	tomorrowSeries, _, hasTomorrow, err := s.schedules.CachedSchedule(tomorrow.Format(time.DateOnly), s.conf.Group)
	if err != nil {
		return fmt.Errorf("get tomorrow schedule: %w", err)
	}

	if !hasToday && !hasTomorrow {
		s.log.WarnContext(ctx, "Skipping calendar sync: no today or tomorrow schedule")
		return nil
	}

	newTodayHash := seriesHash(todaySeries)
	newTomorrowHash := seriesHash(tomorrowSeries)
	if s.todayHash == newTodayHash && s.tomorrowHash == newTomorrowHash {
		s.log.DebugContext(ctx, "Skipping calendar sync: schedules not changed")
		return nil
	}

	s.log.InfoContext(ctx, "Starting calendar sync",
		"timeMin", today.Format(time.RFC3339), "timeMax", timeMax.Format(time.RFC3339))

	ids, err := s.calendar.ListOurEvents(ctx, today, timeMax)
	if err != nil {
		return fmt.Errorf("calendar sync failed: list: %w", err)
	}
	for _, id := range ids {
		if err := s.calendar.DeleteEvent(ctx, id); err != nil {
			return fmt.Errorf("calendar sync failed: delete %s: %w", id, err)
		}
	}

	var toCreate []eventPayload
	if hasToday {
		toCreate = append(toCreate, buildDayEvents(todaySeries, today, s.conf)...)
	}
	if hasTomorrow {
		toCreate = append(toCreate, buildDayEvents(tomorrowSeries, tomorrow, s.conf)...)
	}

	for _, ev := range toCreate {
		desc := "PowerOn Notifier — outage schedule, group " + s.conf.Group
		if _, err := s.calendar.InsertEvent(ctx, ev.summary, ev.start, ev.end, ev.colorID, desc); err != nil {
			return fmt.Errorf("calendar sync failed: insert: %w", err)
		}
	}

	s.todayHash = newTodayHash
	s.tomorrowHash = newTomorrowHash

	s.log.InfoContext(ctx, "Calendar sync completed", "deleted", len(ids), "created", len(toCreate))
	return nil
}

// CleanupStaleEvents deletes our events in the past lookbackDays (not
// including today). Run periodically to keep old days from piling up.
func (s *Sync) CleanupStaleEvents(ctx context.Context, lookbackDays int) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	now := s.clock.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayEnd := todayStart.Add(-time.Second)
	timeMin := todayStart.AddDate(0, 0, -lookbackDays)

	s.log.InfoContext(ctx, "Starting calendar stale cleanup",
		"timeMin", timeMin.Format(time.RFC3339), "timeMax", yesterdayEnd.Format(time.RFC3339))

	ids, err := s.calendar.ListOurEvents(ctx, timeMin, yesterdayEnd)
	if err != nil {
		return fmt.Errorf("calendar cleanup failed: list: %w", err)
	}
	for _, id := range ids {
		if err := s.calendar.DeleteEvent(ctx, id); err != nil {
			return fmt.Errorf("calendar cleanup failed: delete %s: %w", id, err)
		}
	}

	s.log.InfoContext(ctx, "Calendar stale cleanup completed", "deleted", len(ids))
	return nil
}

type eventPayload struct {
	summary string
	start   time.Time
	end     time.Time
	colorID string
}

// buildDayEvents converts one day's series into event payloads, filtered by
// the configured statuses.
func buildDayEvents(series dal.StatusSeries, day time.Time, conf Config) []eventPayload {
	var out []eventPayload
	for _, iv := range service.MergeIntervals(series) {
		if !statusSyncEnabled(iv.Status, conf) {
			continue
		}
		summary, colorID := summaryAndColorForStatus(iv.Status)
		start, errStart := timeInDay(iv.From, day)
		end, errEnd := timeInDay(iv.To, day)
		if errStart != nil || errEnd != nil {
			continue
		}
		out = append(out, eventPayload{
			summary: summary,
			start:   start,
			end:     end,
			colorID: colorID,
		})
	}
	return out
}

func statusSyncEnabled(status string, conf Config) bool {
	switch status {
	case dal.StatusOff:
		return conf.SyncOff
	case dal.StatusSwitching:
		return conf.SyncSwitching
	case dal.StatusOn:
		return conf.SyncOn
	default:
		return false
	}
}

func summaryAndColorForStatus(status string) (string, string) {
	switch status {
	case dal.StatusOff:
		return summaryOff, colorIDOff
	case dal.StatusSwitching:
		return summarySwitching, colorIDSwitching
	case dal.StatusOn:
		return summaryOn, colorIDOn
	default:
		return "", ""
	}
}

// timeInDay places a "15:04" time on the given day in the day's location.
// "24:00" is midnight at the start of the next day.
func timeInDay(s string, day time.Time) (time.Time, error) {
	if s == service.EndOfDay {
		return day.AddDate(0, 0, 1), nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

// seriesHash builds a deterministic fingerprint for change detection.
func seriesHash(series dal.StatusSeries) string {
	if len(series) == 0 {
		return ""
	}
	keys := make([]string, 0, len(series))
	for k := range series {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(series[k])
		sb.WriteByte(';')
	}
	return sb.String()
}
