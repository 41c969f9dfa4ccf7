package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tb "gopkg.in/telebot.v3"
)

type Bot struct {
	bot *tb.Bot

	handler   *Handler
	antiFlood *AntiFlood

	log *slog.Logger
}

func NewBot(token string, handler *Handler, antiFlood *AntiFlood, log *slog.Logger) (*Bot, error) {
	bot, err := tb.NewBot(tb.Settings{
		Token:     token,
		Poller:    &tb.LongPoller{Timeout: 5 * time.Second}, //nolint:mnd // it's ok
		ParseMode: tb.ModeMarkdown,
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Bot{
		bot: bot,

		handler:   handler,
		antiFlood: antiFlood,

		log: log.With("component", "bot"),
	}, nil
}

func (b *Bot) Start(ctx context.Context) error {
	b.bot.Use(b.antiFlood.Middleware())

	// Register command handlers
	b.bot.Handle("/start", b.handler.Start)
	b.bot.Handle("/help", b.handler.Help)
	b.bot.Handle("/today", b.handler.Today)
	b.bot.Handle("/tomorrow", b.handler.Tomorrow)

	// Keyboard buttons and free-text aliases
	b.bot.Handle(tb.OnText, b.handler.Text)

	go func() {
		<-ctx.Done()
		b.log.Info("Stopping bot")
		b.bot.Stop()
	}()

	b.bot.Start()

	return nil
}

// Send delivers a markdown message to the given chat. Used by the
// notification fan-out alongside the interactive handlers.
func (b *Bot) Send(chatID int64, text string) error {
	if _, err := b.bot.Send(tb.ChatID(chatID), text, tb.ModeMarkdown); err != nil {
		return err //nolint:wrapcheck // callers classify telebot errors
	}
	return nil
}
