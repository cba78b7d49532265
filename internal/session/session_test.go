package session

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pudimbot/pudim-go/internal/errors"
	"github.com/pudimbot/pudim-go/internal/logger"
)

type fakeInput struct {
	mu       sync.Mutex
	callback func(string)
	queued   []string
}

func (f *fakeInput) StartContinuous(ctx context.Context, onUtterance func(string)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callback = onUtterance
	return nil
}

func (f *fakeInput) ListenOnce(ctx context.Context, timeout time.Duration) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queued) == 0 {
		return "", apperrors.ErrTimeout
	}
	text := f.queued[0]
	f.queued = f.queued[1:]
	return text, nil
}

func (f *fakeInput) Stop() {}

func (f *fakeInput) Available() bool { return true }

func (f *fakeInput) hear(text string) {
	f.mu.Lock()
	cb := f.callback
	f.mu.Unlock()
	if cb != nil {
		cb(text)
	}
}

func (f *fakeInput) queue(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queued = append(f.queued, text)
}

type fakeOutput struct {
	mu     sync.Mutex
	spoken []string
}

func (f *fakeOutput) Speak(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, text)
}

func (f *fakeOutput) count(text string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.spoken {
		if s == text {
			n++
		}
	}
	return n
}

type testHarness struct {
	manager *Manager
	input   *fakeInput
	output  *fakeOutput

	mu    sync.Mutex
	heard []string
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	h := &testHarness{
		input:  &fakeInput{},
		output: &fakeOutput{},
	}

	cfg := Config{
		PollInterval:        5 * time.Millisecond,
		PausedListenTimeout: 5 * time.Millisecond,
	}
	hooks := Hooks{
		OnUtterance: func(text string) {
			h.mu.Lock()
			h.heard = append(h.heard, text)
			h.mu.Unlock()
		},
		Greeting:     func() string { return "olá" },
		Farewell:     func() string { return "tchau" },
		IsActivation: func(text string) bool { return text == "pudim" },
	}

	h.manager = NewManager(cfg, h.input, h.output, hooks, logger.NewWithWriter("error", io.Discard), nil)
	return h
}

func (h *testHarness) heardTexts() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.heard...)
}

func TestActivateOnlyFromIdle(t *testing.T) {
	h := newHarness(t)

	require.True(t, h.manager.Activate(time.Second))
	assert.False(t, h.manager.Activate(time.Second), "second activation must be refused")
	assert.Equal(t, StateActive, h.manager.State())
	assert.NotEmpty(t, h.manager.ID())
	assert.Equal(t, 1, h.output.count("olá"))

	h.manager.Deactivate()
	h.manager.Wait()
}

func TestUtterancesRoutedWhileActive(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.manager.Activate(time.Second))

	h.input.hear("qual o horário de cálculo")
	assert.Equal(t, []string{"qual o horário de cálculo"}, h.heardTexts())

	h.manager.Deactivate()
	h.manager.Wait()
}

func TestPausedSessionIgnoresUntilActivation(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.manager.Activate(time.Second))

	require.True(t, h.manager.Pause())
	assert.Equal(t, StatePaused, h.manager.State())

	// Utterances while paused are dropped.
	h.input.hear("isso deve ser ignorado")
	assert.Empty(t, h.heardTexts())

	// Non-activation bounded listens are also ignored.
	h.input.queue("ainda ignorado")
	h.input.queue("pudim")

	require.Eventually(t, func() bool {
		return h.manager.State() == StateActive
	}, time.Second, 5*time.Millisecond, "activation phrase should resume the session")

	assert.Equal(t, 1, h.output.count(ResumeAck))
	assert.Empty(t, h.heardTexts(), "nothing heard while paused reaches the handler")

	h.manager.Deactivate()
	h.manager.Wait()
}

func TestTimeoutEndsWithSingleFarewell(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.manager.Activate(30*time.Millisecond))

	h.manager.Wait()
	assert.Equal(t, StateIdle, h.manager.State())
	assert.Equal(t, 1, h.output.count("tchau"))

	// Extra poll cycles must not repeat the farewell.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, h.output.count("tchau"))
}

func TestDeactivateIsIdempotent(t *testing.T) {
	h := newHarness(t)

	// Deactivating an idle manager is a no-op.
	h.manager.Deactivate()
	assert.Equal(t, StateIdle, h.manager.State())

	require.True(t, h.manager.Activate(time.Second))
	h.manager.Deactivate()
	h.manager.Wait()
	assert.Equal(t, 1, h.output.count("tchau"))

	h.manager.Deactivate()
	h.manager.Deactivate()
	assert.Equal(t, 1, h.output.count("tchau"))
	assert.Equal(t, StateIdle, h.manager.State())

	// The machine can start a fresh session afterwards.
	require.True(t, h.manager.Activate(time.Second))
	h.manager.Deactivate()
	h.manager.Wait()
}

func TestPauseRequiresActive(t *testing.T) {
	h := newHarness(t)
	assert.False(t, h.manager.Pause())
	assert.False(t, h.manager.Resume())
}
