package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/poweron-notifier/internal/calendar"
	"github.com/Roma7-7-7/poweron-notifier/internal/config"
	"github.com/Roma7-7-7/poweron-notifier/internal/dal"
	"github.com/Roma7-7-7/poweron-notifier/internal/dal/migrations"
	"github.com/Roma7-7-7/poweron-notifier/internal/providers"
	"github.com/Roma7-7-7/poweron-notifier/internal/service"
	"github.com/Roma7-7-7/poweron-notifier/internal/telegram"
	"github.com/Roma7-7-7/poweron-notifier/pkg/clock"
)

// scheduleRetention is how long cache rows are kept before the periodic
// cleanup removes them. Expired rows are already invisible to readers, this
// only bounds the database size.
const scheduleRetention = 72 * time.Hour

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.New(ctx)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	log := mustLogger(conf.Dev)

	loc, err := time.LoadLocation(conf.Timezone)
	if err != nil {
		log.Error("Failed to load timezone", "timezone", conf.Timezone, "error", err)
		os.Exit(1)
	}

	db, err := bbolt.Open(conf.DBPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		log.Error("Failed to open database", "path", conf.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migrations.RunMigrations(db, log); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	utcClock := clock.NewUTC()
	localClock := clock.NewWithLocation(loc)

	store, err := dal.NewBoltDB(db, utcClock)
	if err != nil {
		log.Error("Failed to init store", "error", err)
		os.Exit(1)
	}

	provider := providers.NewPowerOnProvider(conf.APIURL, conf.CityID, utcClock)
	schedulesSvc := service.NewSchedules(store, provider, utcClock, conf.CacheTTL, log)

	handler := telegram.NewHandler(store, schedulesSvc, localClock, conf.DefaultGroup, log)
	antiFlood := telegram.NewAntiFlood(store, utcClock, conf.BanDuration, log)

	bot, err := telegram.NewBot(conf.TelegramToken, handler, antiFlood, log)
	if err != nil {
		log.Error("Failed to create telegram bot", "error", err)
		os.Exit(1)
	}

	notificationsSvc := service.NewNotifications(store, schedulesSvc, bot, localClock, conf.DefaultGroup, conf.SendDelay, log)
	monitorSvc := service.NewMonitor(schedulesSvc, store, notificationsSvc, log)

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		monitorUpdates(ctx, monitorSvc, conf.FetchInterval, log.With("component", "schedule").With("action", "monitor"))
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		cleanup(ctx, store, conf.CleanupInterval, log.With("component", "schedule").With("action", "cleanup"))
	}()

	if conf.CalendarEnabled {
		client, err := calendar.NewClient(ctx, conf.CalendarCredentialsPath, conf.CalendarID, loc)
		if err != nil {
			log.Error("Failed to create calendar client", "error", err)
			os.Exit(1)
		}
		syncSvc := calendar.NewSync(calendar.Config{
			Group:         conf.DefaultGroup,
			SyncOff:       true,
			SyncSwitching: true,
		}, client, schedulesSvc, localClock, log)

		wg.Add(1)
		go func() {
			defer wg.Done()
			syncCalendar(ctx, syncSvc, conf.CalendarSyncInterval, log.With("component", "calendar").With("action", "sync"))
		}()
	}

	log.Info("Starting bot")
	if err := bot.Start(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Error("Failed to start bot", "error", err)
		}
	}

	wg.Wait()
	log.Info("Stopped bot")
}

func monitorUpdates(ctx context.Context, svc *service.Monitor, delay time.Duration, log *slog.Logger) {
	defer func() {
		log.InfoContext(ctx, "Stopped schedule updates monitor")
	}()

	log.InfoContext(ctx, "Starting schedule updates monitor", "interval", delay)
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
			err := svc.Check(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				if errors.Is(err, context.DeadlineExceeded) {
					log.WarnContext(ctx, "Error checking schedule updates", "error", err)
					continue
				}

				log.ErrorContext(ctx, "Error checking schedule updates", "error", err)
			}
		}
	}
}

func cleanup(ctx context.Context, store *dal.BoltDB, delay time.Duration, log *slog.Logger) {
	defer func() {
		log.InfoContext(ctx, "Stopped cleanup")
	}()

	log.InfoContext(ctx, "Starting cleanup", "interval", delay)
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
			if err := store.CleanupSchedules(scheduleRetention); err != nil {
				log.ErrorContext(ctx, "Error cleaning up schedules", "error", err)
			}
			if err := store.CleanupBans(); err != nil {
				log.ErrorContext(ctx, "Error cleaning up bans", "error", err)
			}
		}
	}
}

func syncCalendar(ctx context.Context, svc *calendar.Sync, delay time.Duration, log *slog.Logger) {
	defer func() {
		log.InfoContext(ctx, "Stopped calendar sync")
	}()

	const lookbackDays = 7

	log.InfoContext(ctx, "Starting calendar sync", "interval", delay)
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
			if err := svc.SyncEvents(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				log.ErrorContext(ctx, "Error syncing calendar", "error", err)
				continue
			}
			if err := svc.CleanupStaleEvents(ctx, lookbackDays); err != nil {
				log.ErrorContext(ctx, "Error cleaning up calendar", "error", err)
			}
		}
	}
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
