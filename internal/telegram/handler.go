package telegram

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/poweron-notifier/internal/dal"
	"github.com/Roma7-7-7/poweron-notifier/internal/service"
)

//go:generate mockgen -package mocks -destination mocks/telegram.go . Subscribers,Schedules,BansStore

const genericErrorMsg = "Щось пішло не так. Будь ласка, спробуйте пізніше."

const helpMsg = `ℹ️ *Довідка*

/today — графік відключень на сьогодні
/tomorrow — графік відключень на завтра
/help — це повідомлення

Також можна користуватись кнопками під полем вводу або просто написати "сьогодні" чи "завтра".

Я надішлю повідомлення, щойно буде опубліковано оновлення графіку.`

type Clock interface {
	Now() time.Time
}

type Subscribers interface {
	GetSubscriber(chatID int64) (dal.Subscriber, bool, error)
	PutSubscriber(sub dal.Subscriber) error
}

type Schedules interface {
	CachedSchedule(date, group string) (dal.StatusSeries, time.Time, bool, error)
}

type Handler struct {
	subscribers Subscribers
	schedules   Schedules
	clock       Clock

	defaultGroup string
	markups      *markups

	log *slog.Logger
}

func NewHandler(subscribers Subscribers, schedules Schedules, clock Clock, defaultGroup string, log *slog.Logger) *Handler {
	return &Handler{
		subscribers:  subscribers,
		schedules:    schedules,
		clock:        clock,
		defaultGroup: defaultGroup,
		markups:      newMarkups(),
		log:          log,
	}
}

func (h *Handler) Start(c tb.Context) error {
	chatID := c.Sender().ID

	_, existed, err := h.subscribers.GetSubscriber(chatID)
	if err != nil {
		h.log.Error("failed to check subscriber", "error", err, "chatID", chatID)
		return c.Send(genericErrorMsg)
	}

	if !existed {
		if err := h.subscribers.PutSubscriber(dal.Subscriber{ChatID: chatID, Group: h.defaultGroup}); err != nil {
			h.log.Error("failed to register subscriber", "error", err, "chatID", chatID)
			return c.Send(genericErrorMsg)
		}
		h.log.Info("subscriber registered", "chatID", chatID, "group", h.defaultGroup)
	}

	var message string
	if existed {
		message = "👋 З поверненням! Ви вже підписані на оновлення графіку відключень."
	} else {
		message = fmt.Sprintf("👋 Привіт! Ви підписані на оновлення графіку відключень (група *%s*).\n\nЯ надішлю повідомлення, щойно буде опубліковано оновлення.", h.defaultGroup)
	}

	return c.Send(message, h.markups.main)
}

func (h *Handler) Help(c tb.Context) error {
	return c.Send(helpMsg, h.markups.main)
}

func (h *Handler) Today(c tb.Context) error {
	return h.sendSchedule(c, 0)
}

func (h *Handler) Tomorrow(c tb.Context) error {
	return h.sendSchedule(c, 1)
}

// Text routes keyboard button presses and free-text aliases.
func (h *Handler) Text(c tb.Context) error {
	switch normalizeAlias(c.Text()) {
	case "today":
		return h.Today(c)
	case "tomorrow":
		return h.Tomorrow(c)
	default:
		return h.Help(c)
	}
}

func (h *Handler) sendSchedule(c tb.Context, offsetDays int) error {
	chatID := c.Sender().ID

	text, err := h.scheduleMessage(chatID, offsetDays)
	if err != nil {
		h.log.Error("failed to build schedule message", "error", err, "chatID", chatID)
		return c.Send(genericErrorMsg)
	}

	return c.Send(text, h.markups.main)
}

// scheduleMessage builds the reply for a today/tomorrow request. The read
// path is cache only: an absent or expired entry yields the "not published"
// message, never an upstream fetch.
func (h *Handler) scheduleMessage(chatID int64, offsetDays int) (string, error) {
	now := h.clock.Now()
	date := now.AddDate(0, 0, offsetDays)

	group := h.defaultGroup
	if sub, found, err := h.subscribers.GetSubscriber(chatID); err != nil {
		return "", fmt.Errorf("get subscriber: %w", err)
	} else if found && sub.Group != "" {
		group = sub.Group
	}

	series, _, found, err := h.schedules.CachedSchedule(date.Format(time.DateOnly), group)
	if err != nil {
		return "", fmt.Errorf("get cached schedule: %w", err)
	}
	if !found {
		return service.BuildNotPublishedMessage(date), nil
	}

	return service.BuildScheduleMessage(series, date, group, now), nil
}

func normalizeAlias(text string) string {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case strings.ToLower(btnTodayText), "сьогодні", "today":
		return "today"
	case strings.ToLower(btnTomorrowText), "завтра", "tomorrow":
		return "tomorrow"
	case "допомога", "help":
		return "help"
	default:
		return ""
	}
}
