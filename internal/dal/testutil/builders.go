package testutil

import (
	"time"

	"github.com/Roma7-7-7/poweron-notifier/internal/dal"
)

// SubscriberBuilder provides fluent API for building test subscribers
type SubscriberBuilder struct {
	sub dal.Subscriber
}

// NewSubscriber creates a new subscriber builder with defaults
func NewSubscriber(chatID int64) *SubscriberBuilder {
	return &SubscriberBuilder{
		sub: dal.Subscriber{
			ChatID:    chatID,
			Group:     "3.2",
			CreatedAt: time.Now().UTC(),
		},
	}
}

// WithGroup sets the assigned group
func (b *SubscriberBuilder) WithGroup(group string) *SubscriberBuilder {
	b.sub.Group = group
	return b
}

// WithCreatedAt sets the creation time
func (b *SubscriberBuilder) WithCreatedAt(t time.Time) *SubscriberBuilder {
	b.sub.CreatedAt = t
	return b
}

// Build returns the constructed subscriber
func (b *SubscriberBuilder) Build() dal.Subscriber {
	return b.sub
}

// NewSeries creates a typical half-day-alternating status series:
// light until 08:00, outage until 12:00, switching until 12:30, light after.
func NewSeries() dal.StatusSeries {
	return dal.StatusSeries{
		"00:00": dal.StatusOn,
		"08:00": dal.StatusOff,
		"12:00": dal.StatusSwitching,
		"12:30": dal.StatusOn,
	}
}

// EventBuilder provides fluent API for building test schedule events
type EventBuilder struct {
	event dal.ScheduleEvent
}

// NewEvent creates a new schedule event builder with defaults
func NewEvent(id int64) *EventBuilder {
	return &EventBuilder{
		event: dal.ScheduleEvent{
			ID:   id,
			Date: "2026-01-15",
			Groups: map[string]dal.StatusSeries{
				"3.2": NewSeries(),
			},
		},
	}
}

// WithDate sets the date label
func (b *EventBuilder) WithDate(date string) *EventBuilder {
	b.event.Date = date
	return b
}

// WithGroup adds a group with its series
func (b *EventBuilder) WithGroup(group string, series dal.StatusSeries) *EventBuilder {
	b.event.Groups[group] = series
	return b
}

// Build returns the constructed event
func (b *EventBuilder) Build() dal.ScheduleEvent {
	return b.event
}
