// Package bot assembles the assistant: it owns every component, builds
// the intent cascade and exposes the conversation entry points. One Bot
// exists per process; its tables and indexes are loaded once at startup
// and shared read-only afterward.
package bot

import (
	"fmt"
	"time"

	"github.com/pudimbot/pudim-go/internal/clock"
	"github.com/pudimbot/pudim-go/internal/config"
	"github.com/pudimbot/pudim-go/internal/dialogue"
	"github.com/pudimbot/pudim-go/internal/intent"
	"github.com/pudimbot/pudim-go/internal/logger"
	"github.com/pudimbot/pudim-go/internal/metrics"
	"github.com/pudimbot/pudim-go/internal/schedule"
	"github.com/pudimbot/pudim-go/internal/search"
	"github.com/pudimbot/pudim-go/internal/session"
	"github.com/pudimbot/pudim-go/internal/speech"
	"github.com/pudimbot/pudim-go/internal/weather"
)

// Options carries the collaborators the bot is built from. Clock defaults
// to the system clock when nil.
type Options struct {
	Config  *config.Config
	Logger  *logger.Logger
	Store   *schedule.Store
	Weather weather.Provider
	Input   speech.Input
	Output  speech.Output
	Metrics *metrics.Metrics
	Clock   *clock.Clock
}

// Bot is the process-wide assistant context.
type Bot struct {
	cfg        *config.Config
	log        *logger.Logger
	dialogue   *dialogue.Manager
	clock      *clock.Clock
	weather    weather.Provider
	answerer   *schedule.Answerer
	searchIdx  *search.Index
	classifier *intent.Classifier
	session    *session.Manager
	metrics    *metrics.Metrics
	input      speech.Input
	output     speech.Output
}

// New wires all components together. The fallback search index is built
// here from the already-loaded store; a failure to build it is a fatal
// startup fault.
func New(opts Options) (*Bot, error) {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}

	searchIdx, err := search.NewIndex(opts.Store, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bot: %w", err)
	}

	b := &Bot{
		cfg:       opts.Config,
		log:       opts.Logger.WithModule("bot"),
		dialogue:  dialogue.NewManager(opts.Config.BotName, opts.Config.UserName),
		clock:     opts.Clock,
		weather:   opts.Weather,
		answerer:  schedule.NewAnswerer(opts.Store),
		searchIdx: searchIdx,
		metrics:   opts.Metrics,
		input:     opts.Input,
		output:    opts.Output,
	}
	b.classifier = intent.NewClassifier(b.buildCascade())

	b.session = session.NewManager(
		session.Config{
			PollInterval:        opts.Config.PollInterval,
			PausedListenTimeout: opts.Config.PausedListenTimeout,
		},
		opts.Input,
		opts.Output,
		session.Hooks{
			OnUtterance:  b.ProcessInput,
			Greeting:     b.sessionGreeting,
			Farewell:     func() string { return b.dialogue.RandomResponse(dialogue.CategoryFarewell) },
			IsActivation: b.dialogue.IsBotActivation,
		},
		opts.Logger,
		opts.Metrics,
	)

	return b, nil
}

// sessionGreeting builds the hour-appropriate opening line.
func (b *Bot) sessionGreeting() string {
	return fmt.Sprintf("%s! Eu sou o %s. Como posso ajudar você?", b.clock.Greeting(), b.cfg.BotName)
}

// ActivateConversation starts a voice session bounded by the configured
// conversation duration. Returns false when one is already running.
func (b *Bot) ActivateConversation() bool {
	return b.session.Activate(b.cfg.ConversationDuration)
}

// ActivateConversationFor starts a voice session with an explicit bound.
func (b *Bot) ActivateConversationFor(duration time.Duration) bool {
	return b.session.Activate(duration)
}

// DeactivateConversation ends the running session, if any. Idempotent.
func (b *Bot) DeactivateConversation() {
	b.session.Deactivate()
}

// WaitConversation blocks until the running session's loop has stopped.
func (b *Bot) WaitConversation() {
	b.session.Wait()
}

// Status is a point-in-time snapshot of the bot.
type Status struct {
	Initialized     bool   `json:"initialized"`
	SessionState    string `json:"session_state"`
	SessionID       string `json:"session_id,omitempty"`
	SpeechAvailable bool   `json:"speech_available"`
}

// Status reports the current bot state, surfaced by the health endpoint.
func (b *Bot) Status() Status {
	return Status{
		Initialized:     true,
		SessionState:    string(b.session.State()),
		SessionID:       b.session.ID(),
		SpeechAvailable: b.input.Available(),
	}
}
