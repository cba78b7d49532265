// Package session runs the conversation lifecycle: a bounded-duration
// listening loop with pause/resume control and a timeout deadline. One
// session exists per bot instance; the state machine is mutex-guarded
// because control calls arrive from outside the loop goroutine.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pudimbot/pudim-go/internal/ctxutil"
	"github.com/pudimbot/pudim-go/internal/logger"
	"github.com/pudimbot/pudim-go/internal/metrics"
	"github.com/pudimbot/pudim-go/internal/speech"
)

// State is the conversation lifecycle state.
type State string

const (
	StateIdle   State = "idle"
	StateActive State = "active"
	StatePaused State = "paused"
	StateEnded  State = "ended"
)

// ResumeAck is spoken when a paused session hears the activation phrase.
const ResumeAck = "Voltei! O que você precisa?"

// Hooks are the callbacks a session drives. All are required.
type Hooks struct {
	// OnUtterance handles an utterance heard while the session is active.
	OnUtterance func(text string)

	// Greeting returns the line spoken when the session starts.
	Greeting func() string

	// Farewell returns the line spoken exactly once when the session ends,
	// whether by command, timeout or external deactivation.
	Farewell func() string

	// IsActivation reports whether an utterance calls the bot by name.
	// While paused, only activating utterances are acted on.
	IsActivation func(text string) bool
}

// Config holds the loop timing parameters.
type Config struct {
	PollInterval        time.Duration // sleep between timeout checks
	PausedListenTimeout time.Duration // bounded listen while paused
}

// Manager is the session state machine.
type Manager struct {
	cfg     Config
	input   speech.Input
	output  speech.Output
	hooks   Hooks
	log     *logger.Logger
	metrics *metrics.Metrics

	mu           sync.Mutex
	state        State
	sessionID    string
	startedAt    time.Time
	deadline     time.Time
	cancel       context.CancelFunc
	loopDone     chan struct{}
	farewellSent bool
}

// NewManager creates an idle session manager.
func NewManager(cfg Config, input speech.Input, output speech.Output, hooks Hooks, log *logger.Logger, m *metrics.Metrics) *Manager {
	return &Manager{
		cfg:     cfg,
		input:   input,
		output:  output,
		hooks:   hooks,
		log:     log.WithModule("session"),
		metrics: m,
		state:   StateIdle,
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// ID returns the current session's identifier, empty when idle.
func (m *Manager) ID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionID
}

// Activate starts a session bounded by the given duration. It returns
// false without side effects when a session is already running. The
// listening loop runs in its own goroutine; Activate does not block.
func (m *Manager) Activate(duration time.Duration) bool {
	m.mu.Lock()
	if m.state == StateActive || m.state == StatePaused {
		m.mu.Unlock()
		m.log.Warn("activation refused, session already running")
		return false
	}

	sessionID := uuid.NewString()
	ctx, cancel := context.WithCancel(ctxutil.WithSessionID(context.Background(), sessionID))
	m.state = StateActive
	m.sessionID = sessionID
	m.startedAt = time.Now()
	m.deadline = m.startedAt.Add(duration)
	m.cancel = cancel
	m.loopDone = make(chan struct{})
	m.farewellSent = false
	m.mu.Unlock()

	m.metrics.RecordSessionTransition(string(StateActive))
	m.log.WithField("session_id", sessionID).WithField("duration", duration.String()).Info("session activated")

	m.output.Speak(m.hooks.Greeting())

	if m.input.Available() {
		if err := m.input.StartContinuous(ctx, m.handleUtterance); err != nil {
			m.metrics.RecordSpeechFailure("input")
			m.log.WithError(err).Warn("continuous listening unavailable, timeout-only session")
		}
	} else {
		m.log.Warn("speech input unavailable, timeout-only session")
	}

	go m.loop(ctx)
	return true
}

// Pause suspends an active session. Paused sessions ignore everything but
// the activation phrase. Returns false when the session is not active.
func (m *Manager) Pause() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateActive {
		return false
	}
	m.state = StatePaused
	m.metrics.RecordSessionTransition(string(StatePaused))
	m.log.Info("session paused")
	return true
}

// Resume reactivates a paused session and announces the return.
func (m *Manager) Resume() bool {
	m.mu.Lock()
	if m.state != StatePaused {
		m.mu.Unlock()
		return false
	}
	m.state = StateActive
	m.mu.Unlock()

	m.metrics.RecordSessionTransition(string(StateActive))
	m.log.Info("session resumed")
	m.output.Speak(ResumeAck)
	return true
}

// Deactivate ends the session from any state. Idempotent. The loop
// observes the cancellation within one poll interval, stops, and speaks
// the farewell exactly once.
func (m *Manager) Deactivate() {
	m.mu.Lock()
	cancel := m.cancel
	m.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Wait blocks until the current session's loop has fully stopped. Returns
// immediately when no loop is running.
func (m *Manager) Wait() {
	m.mu.Lock()
	done := m.loopDone
	m.mu.Unlock()
	if done != nil {
		<-done
	}
}

// handleUtterance routes continuous-listening utterances. Paused sessions
// drop them here; the loop's bounded listen watches for reactivation.
func (m *Manager) handleUtterance(text string) {
	m.mu.Lock()
	active := m.state == StateActive
	m.mu.Unlock()
	if !active || text == "" {
		return
	}
	m.hooks.OnUtterance(text)
}

func (m *Manager) loop(ctx context.Context) {
	defer m.finish()

	ticker := time.NewTicker(m.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		m.mu.Lock()
		deadline := m.deadline
		paused := m.state == StatePaused
		m.mu.Unlock()

		if time.Now().After(deadline) {
			m.log.Info("session deadline reached")
			return
		}

		if paused {
			text, err := m.input.ListenOnce(ctx, m.cfg.PausedListenTimeout)
			if err != nil {
				continue
			}
			if m.hooks.IsActivation(text) {
				m.Resume()
			}
		}
	}
}

// finish ends the session: stops input, speaks the farewell once and
// returns the machine to idle so a new session can start.
func (m *Manager) finish() {
	m.mu.Lock()
	if m.farewellSent {
		m.mu.Unlock()
		return
	}
	m.farewellSent = true
	m.state = StateEnded
	sid := m.sessionID
	startedAt := m.startedAt
	done := m.loopDone
	cancel := m.cancel
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.input.Stop()
	m.output.Speak(m.hooks.Farewell())

	m.metrics.RecordSessionTransition(string(StateEnded))
	m.metrics.RecordSessionDuration(time.Since(startedAt).Seconds())
	m.log.WithField("elapsed", time.Since(startedAt).String()).Info("session ended")

	m.mu.Lock()
	// A new session may have started between the unlock above and here;
	// only reset the machine if it is still ours.
	if m.sessionID == sid {
		m.state = StateIdle
		m.sessionID = ""
		m.cancel = nil
		m.loopDone = nil
	}
	m.mu.Unlock()

	if done != nil {
		close(done)
	}
}
