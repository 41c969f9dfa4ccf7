package telegram

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/poweron-notifier/internal/dal"
)

const (
	// floodMessages per floodWindow is the per-chat allowance before a ban.
	floodMessages = 10
	floodWindow   = 10 * time.Second

	// DefaultBanDuration is how long a flooding chat is ignored.
	DefaultBanDuration = 5 * time.Minute

	// maxTrackedChats bounds the in-memory limiter table; idle entries are
	// evicted before a new one is added past this size.
	maxTrackedChats  = 1000
	limiterIdleAfter = time.Minute

	msgBanned = "🚫 Забагато запитів. Спробуйте пізніше."
)

type BansStore interface {
	GetBan(chatID int64) (dal.Ban, bool, error)
	PutBan(ban dal.Ban) error
	DeleteBan(chatID int64) error
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// AntiFlood is a per-chat rate limit with a persisted temporary ban. The
// sliding window lives in memory; the ban itself is stored so restarts do
// not lift it.
type AntiFlood struct {
	bans  BansStore
	clock Clock

	banFor   time.Duration
	limiters map[int64]*limiterEntry
	mx       sync.Mutex

	log *slog.Logger
}

func NewAntiFlood(bans BansStore, clock Clock, banFor time.Duration, log *slog.Logger) *AntiFlood {
	if banFor <= 0 {
		banFor = DefaultBanDuration
	}
	return &AntiFlood{
		bans:     bans,
		clock:    clock,
		banFor:   banFor,
		limiters: make(map[int64]*limiterEntry),
		log:      log.With("component", "antiflood"),
	}
}

// Allow reports whether a message from the chat should be processed.
// justBanned is true exactly once per ban, so the caller can send a single
// notice instead of spamming the flooding chat.
func (m *AntiFlood) Allow(chatID int64) (allowed, justBanned bool, err error) {
	now := m.clock.Now().UTC()

	ban, found, err := m.bans.GetBan(chatID)
	if err != nil {
		return false, false, fmt.Errorf("get ban for chatID=%d: %w", chatID, err)
	}
	if found {
		if !ban.Expired(now) {
			return false, false, nil
		}
		if err := m.bans.DeleteBan(chatID); err != nil {
			return false, false, fmt.Errorf("delete expired ban for chatID=%d: %w", chatID, err)
		}
	}

	m.mx.Lock()
	defer m.mx.Unlock()

	entry, ok := m.limiters[chatID]
	if !ok {
		if len(m.limiters) >= maxTrackedChats {
			m.evictIdle(now)
		}
		entry = &limiterEntry{limiter: rate.NewLimiter(rate.Every(floodWindow/floodMessages), floodMessages)}
		m.limiters[chatID] = entry
	}
	entry.lastSeen = now

	if entry.limiter.Allow() {
		return true, false, nil
	}

	delete(m.limiters, chatID)
	if err := m.bans.PutBan(dal.Ban{ChatID: chatID, Until: now.Add(m.banFor)}); err != nil {
		return false, true, fmt.Errorf("put ban for chatID=%d: %w", chatID, err)
	}
	m.log.Info("chat banned for flooding", "chatID", chatID, "until", now.Add(m.banFor))

	return false, true, nil
}

// Middleware drops messages from banned chats. Store errors fail open: a
// broken ban table must not take the bot down.
func (m *AntiFlood) Middleware() tb.MiddlewareFunc {
	return func(next tb.HandlerFunc) tb.HandlerFunc {
		return func(c tb.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			allowed, justBanned, err := m.Allow(sender.ID)
			if err != nil {
				m.log.Error("anti-flood check failed", "error", err, "chatID", sender.ID)
				return next(c)
			}
			if justBanned {
				return c.Send(msgBanned)
			}
			if !allowed {
				return nil
			}

			return next(c)
		}
	}
}

func (m *AntiFlood) evictIdle(now time.Time) {
	for chatID, entry := range m.limiters {
		if now.Sub(entry.lastSeen) > limiterIdleAfter {
			delete(m.limiters, chatID)
		}
	}
}
