package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/KASHINO-SHINO/SYOUYA/config"
	"github.com/KASHINO-SHINO/SYOUYA/content"
	"github.com/KASHINO-SHINO/SYOUYA/database"
	"github.com/KASHINO-SHINO/SYOUYA/discord"
	"github.com/KASHINO-SHINO/SYOUYA/logging"
	"github.com/KASHINO-SHINO/SYOUYA/metrics"
	"github.com/KASHINO-SHINO/SYOUYA/persona"
	"github.com/KASHINO-SHINO/SYOUYA/reminders"
	"github.com/KASHINO-SHINO/SYOUYA/schedule"
)

func main() {
	var configDir string
	var logLevel string
	flag.StringVar(&configDir, "config", "configs", "Directory containing the bot config files")
	flag.StringVar(&logLevel, "errorLevel", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger := logging.NewLogger(logging.LogLevel(logLevel), os.Stdout)

	cfg, err := config.Load(configDir)
	if err != nil {
		logger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	// listen and serve for metrics server.
	server := metrics.SetupServer()
	go server.Run()

	store := content.NewStore(cfg.Reminders, cfg.Announcements, nil)
	engine := persona.New(nil)
	remStore := reminders.NewStore(nil)

	// delivery history is optional; without POSTGRES_URL scheduled sends
	// are simply not recorded
	var db database.DeliveryWriter
	if os.Getenv("POSTGRES_URL") != "" {
		pg, err := database.NewPostgres(logger)
		if err != nil {
			logger.Error("failed to connect to postgres", "error", err.Error())
			os.Exit(1)
		}
		defer pg.Close()
		db = pg
	}

	session, err := discord.Setup(cfg, store, engine, remStore, db, logger)
	if err != nil {
		logger.Error("failed to setup discord bot", "error", err.Error())
		os.Exit(1)
	}

	days, err := schedule.ParseWeekdays(cfg.Settings.Schedule.Announcements.Days)
	if err != nil {
		logger.Error("failed to parse announcement days", "error", err.Error())
		os.Exit(1)
	}
	eval := schedule.NewEvaluator(cfg.Settings.Schedule.Reminders.Hours, days, cfg.Settings.Schedule.Announcements.Hour)
	scheduler := schedule.NewScheduler(eval, store, session, logger,
		cfg.Settings.Schedule.Reminders.Enabled,
		cfg.Settings.Schedule.Announcements.Enabled)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := scheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("scheduler stopped", "error", err.Error())
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	logger.Info("bot is running, press Ctrl+C to exit", "character", cfg.Character.Name)
	<-stop

	cancel()
	if session.Session != nil {
		if err := session.Session.Close(); err != nil {
			logger.Error("error closing discord session", "error", err.Error())
		}
	}
	logger.Info("shutting down")
}
