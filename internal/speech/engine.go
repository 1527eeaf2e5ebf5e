// Package speech turns lesson text into audible speech through a
// platform text-to-speech engine. An Orchestrator sits on top of a
// low-level Engine and enforces the app's speaking discipline: one
// utterance at a time, the newest request wins, and completion
// callbacks fire exactly once.
package speech

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
)

// Voice describes one installed text-to-speech voice.
type Voice struct {
	Name string
	Lang string // BCP 47-ish tag as reported by the engine, e.g. "en-US"
	// Local is true when the voice synthesizes on-device rather than
	// through a network service.
	Local bool
	// Default marks the engine's own preferred voice.
	Default bool
}

// Utterance is one request to the engine. Rate is in words per minute.
type Utterance struct {
	Text  string
	Voice string
	Rate  int
}

// ErrNoEngine reports that no text-to-speech engine is installed.
var ErrNoEngine = errors.New("speech: no text-to-speech engine available")

// Engine is a low-level text-to-speech backend. Speak blocks until the
// utterance has been fully rendered or ctx is cancelled. Implementations
// need not be safe for concurrent Speak calls; the Orchestrator
// serializes them.
type Engine interface {
	// Name identifies the backend, e.g. "espeak-ng" or "say".
	Name() string
	// Voices lists the installed voices. The list may be empty while
	// the engine is still warming up.
	Voices() ([]Voice, error)
	// Speak renders one utterance and blocks until it finishes.
	Speak(ctx context.Context, u Utterance) error
	// Pause suspends the in-flight utterance, if any.
	Pause() error
	// Resume continues a paused utterance.
	Resume() error
	// SupportsPhonemes reports whether Speak accepts raw phoneme
	// input wrapped in [[...]] markup.
	SupportsPhonemes() bool
}

// DetectEngine returns the best engine installed on this machine.
func DetectEngine() (Engine, error) {
	if runtime.GOOS == "darwin" {
		if _, err := exec.LookPath("say"); err == nil {
			return newSayEngine(), nil
		}
	}
	for _, bin := range []string{"espeak-ng", "espeak"} {
		if _, err := exec.LookPath(bin); err == nil {
			return newEspeakEngine(bin), nil
		}
	}
	return nil, ErrNoEngine
}
