package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/poweron-notifier/internal/dal"
)

//go:generate mockgen -package mocks -destination mocks/notifications.go . SubscribersStore,CachedScheduleReader,MessageSender

// DefaultSendDelay throttles sequential fan-out to stay under Telegram
// rate limits. Deliveries are deliberately not parallelized.
const DefaultSendDelay = 50 * time.Millisecond

type SubscribersStore interface {
	GetAllSubscribers() ([]dal.Subscriber, error)
	PurgeSubscriber(chatID int64) error
}

type CachedScheduleReader interface {
	CachedSchedule(date, group string) (dal.StatusSeries, time.Time, bool, error)
}

type MessageSender interface {
	Send(chatID int64, text string) error
}

// Notifications fans a detected schedule update out to every subscriber.
// Failures are handled per subscriber: permanently unreachable chats are
// purged from the registry, rate-limit signals pause the batch, anything
// else is logged and skipped.
type Notifications struct {
	subscribers  SubscribersStore
	schedules    CachedScheduleReader
	sender       MessageSender
	clock        Clock
	defaultGroup string
	sendDelay    time.Duration

	log *slog.Logger
	mx  *sync.Mutex
}

func NewNotifications(
	subscribers SubscribersStore,
	schedules CachedScheduleReader,
	sender MessageSender,
	clock Clock,
	defaultGroup string,
	sendDelay time.Duration,
	log *slog.Logger,
) *Notifications {
	if sendDelay < 0 {
		sendDelay = DefaultSendDelay
	}
	return &Notifications{
		subscribers:  subscribers,
		schedules:    schedules,
		sender:       sender,
		clock:        clock,
		defaultGroup: defaultGroup,
		sendDelay:    sendDelay,
		log:          log.With("component", "service").With("service", "notifications"),
		mx:           &sync.Mutex{},
	}
}

// NotifyAll delivers the updated schedule for the given date label
// ("YYYY-MM-DD") to every subscriber whose group has a fresh cache entry.
// Subscribers without one are skipped silently.
func (s *Notifications) NotifyAll(ctx context.Context, date string) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", date, err)
	}

	subs, err := s.subscribers.GetAllSubscribers()
	if err != nil {
		return fmt.Errorf("get all subscribers: %w", err)
	}
	s.log.InfoContext(ctx, "sending update notifications", "date", date, "subscribers", len(subs))

	sent := 0
	for _, sub := range subs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("notification batch interrupted: %w", err)
		}

		if s.notifySubscriber(ctx, sub, day, date) {
			sent++
		}

		if err := sleep(ctx, s.sendDelay); err != nil {
			return fmt.Errorf("notification batch interrupted: %w", err)
		}
	}

	s.log.InfoContext(ctx, "update notifications sent", "date", date, "sent", sent)
	return nil
}

// notifySubscriber reports whether a message was actually delivered.
func (s *Notifications) notifySubscriber(ctx context.Context, sub dal.Subscriber, day time.Time, date string) bool {
	log := s.log.With("chatID", sub.ChatID)

	group := sub.Group
	if group == "" {
		group = s.defaultGroup
	}

	series, _, found, err := s.schedules.CachedSchedule(date, group)
	if err != nil {
		log.ErrorContext(ctx, "failed to read schedule cache", "date", date, "group", group, "error", err)
		return false
	}
	if !found {
		return false
	}

	text := BuildUpdateNotification(series, day, group, s.clock.Now())

	err = s.sender.Send(sub.ChatID, text)
	if err == nil {
		return true
	}

	var flood tb.FloodError
	switch {
	case errors.As(err, &flood):
		log.WarnContext(ctx, "rate limited by telegram", "retryAfter", flood.RetryAfter)
		if sErr := sleep(ctx, time.Duration(flood.RetryAfter)*time.Second); sErr != nil {
			log.WarnContext(ctx, "rate limit pause interrupted", "error", sErr)
		}
	case errors.Is(err, tb.ErrBlockedByUser), errors.Is(err, tb.ErrChatNotFound), errors.Is(err, tb.ErrUserIsDeactivated):
		log.InfoContext(ctx, "chat is unreachable, purging subscriber", "error", err)
		if pErr := s.subscribers.PurgeSubscriber(sub.ChatID); pErr != nil {
			log.ErrorContext(ctx, "failed to purge subscriber", "error", pErr)
		}
	default:
		log.ErrorContext(ctx, "failed to send message", "error", err)
	}

	return false
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck // callers wrap
	case <-timer.C:
		return nil
	}
}
