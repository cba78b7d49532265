// Package main provides the assistant entry point. The default mode runs a
// bounded voice conversation, --interactive reads from the terminal and
// --service keeps the bot resident behind a health and metrics HTTP server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pudimbot/pudim-go/internal/bot"
	"github.com/pudimbot/pudim-go/internal/buildinfo"
	"github.com/pudimbot/pudim-go/internal/config"
	apperrors "github.com/pudimbot/pudim-go/internal/errors"
	"github.com/pudimbot/pudim-go/internal/logger"
	"github.com/pudimbot/pudim-go/internal/metrics"
	"github.com/pudimbot/pudim-go/internal/schedule"
	"github.com/pudimbot/pudim-go/internal/sentry"
	"github.com/pudimbot/pudim-go/internal/server"
	"github.com/pudimbot/pudim-go/internal/speech"
	"github.com/pudimbot/pudim-go/internal/storage"
	"github.com/pudimbot/pudim-go/internal/weather"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		interactive  bool
		service      bool
		conversation bool
	)

	cmd := &cobra.Command{
		Use:   "pudim",
		Short: "Voice assistant for class schedules, time and weather",
		Long: `Pudim is a Portuguese-speaking assistant that answers questions about
class schedules, the current date and time, and the weather. It listens
for its name, holds a bounded conversation and goes back to sleep.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(interactive, service)
		},
	}

	cmd.Flags().BoolVar(&interactive, "interactive", false, "read questions from the terminal instead of the microphone")
	cmd.Flags().BoolVar(&service, "service", false, "stay resident and expose health and metrics over HTTP")
	cmd.Flags().BoolVar(&conversation, "conversation", false, "start a voice conversation immediately (same as the default mode)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pudim %s (commit %s, built %s)\n",
				orUnknown(buildinfo.Version), orUnknown(buildinfo.Commit), orUnknown(buildinfo.BuildDate))
		},
	})

	return cmd
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func run(interactive, service bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewWithOptions(cfg.LogLevel, os.Stdout, logger.Options{
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})
	slog.SetDefault(log.Logger)
	log.WithField("version", orUnknown(buildinfo.Version)).Info("Starting Pudim")

	if err := sentry.Initialize(sentry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
	}); err != nil {
		log.WithError(err).Warn("Sentry initialization failed, error reporting disabled")
	}
	defer sentry.Flush(2 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.New(cfg.SQLitePath())
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer func() { _ = db.Close() }()
	log.WithField("path", cfg.SQLitePath()).Info("Database connected")

	if err := db.Seed(ctx); err != nil {
		return fmt.Errorf("seed schedule data: %w", err)
	}

	store, err := schedule.LoadStore(ctx, db)
	if err != nil {
		return fmt.Errorf("load schedule tables: %w", err)
	}
	log.WithField("courses", len(store.Courses())).Info("Schedule tables loaded")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)
	m := metrics.New(registry)

	weatherClient := weather.NewClient(cfg.OpenWeatherAPIKey, cfg.CityName, cfg.CountryCode, cfg.WeatherTimeout, log)
	if cfg.OpenWeatherAPIKey == "" {
		log.Info("OpenWeather API key not configured, using canned conditions")
	}

	// No speech engine is linked into this build; voice mode degrades to
	// the terminal until an Input implementation is plugged in here.
	var input speech.Input = speech.NoopInput{}
	output := speech.NewConsoleOutput(cfg.BotName + ": ")

	b, err := bot.New(bot.Options{
		Config:  cfg,
		Logger:  log,
		Store:   store,
		Weather: weatherClient,
		Input:   input,
		Output:  output,
		Metrics: m,
	})
	if err != nil {
		return fmt.Errorf("bot: %w", err)
	}

	switch {
	case service:
		return runService(ctx, cfg, log, b, db, registry)
	case interactive:
		b.RunInteractive(os.Stdin, os.Stdout)
		return nil
	default:
		// --conversation and the bare invocation behave the same: start a
		// voice conversation now, degrade to the terminal without speech.
		return runConversation(ctx, cfg, log, b, input)
	}
}

// runConversation runs a single bounded voice session. Without a working
// speech engine it falls back to the terminal loop.
func runConversation(ctx context.Context, cfg *config.Config, log *logger.Logger, b *bot.Bot, input speech.Input) error {
	if !input.Available() {
		log.Warn("Speech input unavailable, falling back to interactive mode")
		b.RunInteractive(os.Stdin, os.Stdout)
		return nil
	}

	if !b.ActivateConversation() {
		return apperrors.ErrSessionActive
	}
	log.WithField("duration", cfg.ConversationDuration).Info("Conversation started")

	done := make(chan struct{})
	go func() {
		b.WaitConversation()
		close(done)
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down conversation")
		b.DeactivateConversation()
		<-done
	case <-done:
	}

	log.Info("Conversation ended")
	return nil
}

// runService keeps the bot resident behind the HTTP surface until a
// shutdown signal arrives.
func runService(ctx context.Context, cfg *config.Config, log *logger.Logger, b *bot.Bot, db *storage.DB, registry *prometheus.Registry) error {
	srv := server.New(cfg, log, b, db, registry)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		b.DeactivateConversation()
		b.WaitConversation()

		// Shutdown applies the configured timeout itself; give it a fresh
		// context so the canceled signal context cannot cut it short.
		return srv.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	log.Info("Server stopped")
	return nil
}
