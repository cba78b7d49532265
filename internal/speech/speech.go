// Package speech defines the audio collaborator contracts. The core only
// consumes these interfaces; real speech engines live outside the module
// and unavailable engines degrade to the no-op input, never a hard failure.
package speech

import (
	"context"
	"time"

	apperrors "github.com/pudimbot/pudim-go/internal/errors"
)

// Input captures user utterances.
type Input interface {
	// StartContinuous begins delivering utterances to onUtterance until
	// Stop is called or the context is canceled.
	StartContinuous(ctx context.Context, onUtterance func(text string)) error

	// ListenOnce blocks for at most timeout waiting for a single
	// utterance. Returns ErrTimeout when nothing was heard.
	ListenOnce(ctx context.Context, timeout time.Duration) (string, error)

	// Stop halts continuous listening.
	Stop()

	// Available reports whether the engine can actually capture audio.
	Available() bool
}

// Output speaks responses. Side effect only.
type Output interface {
	Speak(text string)
}

// NoopInput is the fallback when no speech engine is available. It never
// produces utterances and reports itself unavailable.
type NoopInput struct{}

func (NoopInput) StartContinuous(ctx context.Context, onUtterance func(string)) error {
	return apperrors.ErrUnavailable
}

func (NoopInput) ListenOnce(ctx context.Context, timeout time.Duration) (string, error) {
	return "", apperrors.ErrUnavailable
}

func (NoopInput) Stop() {}

func (NoopInput) Available() bool { return false }
