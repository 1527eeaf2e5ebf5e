package speech

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// baseWPM is the engine speed at rate 1.0. Utterance rates are
	// multipliers on this, clamped to keep speech intelligible for
	// young listeners.
	baseWPM = 175
	minRate = 0.5
	maxRate = 1.2

	// wordRate and sentenceRate slow speech down for learning; kids
	// sounding out a word need more time than fluent listeners.
	wordRate     = 0.75
	sentenceRate = 0.85
	phonemeWPM   = 100

	// voiceResolveTimeout bounds how long the first utterance waits
	// for the engine's voice list to populate before proceeding with
	// the engine default.
	voiceResolveTimeout = 3 * time.Second
	voiceResolvePoll    = 200 * time.Millisecond

	// watchdogInterval is how often an in-flight utterance is paused
	// and immediately resumed. Some synthesizers silently stop about
	// 10-15 seconds in; the ping keeps long sentences audible.
	watchdogInterval = 10 * time.Second
)

// Options tunes one speech request.
type Options struct {
	// Rate is a speed multiplier, 1.0 = normal. Zero means 1.0.
	Rate float64
	// OnDone fires exactly once when the utterance finishes, errors,
	// or is cancelled by a newer request. May be nil.
	OnDone func()
}

// Orchestrator serializes speech on a single utterance channel. Only
// one utterance is ever in flight; a new request cancels the previous
// one (last-request-wins, no queueing). Safe for concurrent use.
type Orchestrator struct {
	engine Engine

	// Timing knobs, set to the package defaults by NewOrchestrator.
	watchdogEvery time.Duration
	voiceWait     time.Duration
	voicePoll     time.Duration

	voiceOnce sync.Once
	voice     string

	mu      sync.Mutex
	cancel  context.CancelFunc
	current string // id of the in-flight utterance, "" when idle
}

// NewOrchestrator wraps an engine. A nil engine is allowed: every
// request then completes silently, with OnDone still fired, so screens
// work identically on machines without a synthesizer.
func NewOrchestrator(engine Engine) *Orchestrator {
	return &Orchestrator{
		engine:        engine,
		watchdogEvery: watchdogInterval,
		voiceWait:     voiceResolveTimeout,
		voicePoll:     voiceResolvePoll,
	}
}

// SpeakText speaks free text at the requested rate, cancelling any
// in-flight utterance first. The cancel happens before voice
// resolution, which can block on the first call while the engine
// populates its voice list.
func (o *Orchestrator) SpeakText(text string, opts Options) {
	o.Stop()
	o.speak(text, o.resolveVoice(), wpm(opts.Rate), opts.OnDone)
}

// SpeakWord speaks a single word slowly, for sounding out.
func (o *Orchestrator) SpeakWord(word string, onDone func()) {
	o.SpeakText(word, Options{Rate: wordRate, OnDone: onDone})
}

// SpeakSentence reads a sentence at a gentle pace.
func (o *Orchestrator) SpeakSentence(sentence string, onDone func()) {
	o.SpeakText(sentence, Options{Rate: sentenceRate, OnDone: onDone})
}

// SpeakPhoneme produces the isolated sound of a letter, not its name.
// When the engine accepts raw phoneme input the sound is rendered
// directly; otherwise a short word opening with that sound stands in.
// Unknown letters complete silently.
func (o *Orchestrator) SpeakPhoneme(letter string, onDone func()) {
	if o.engine != nil && o.engine.SupportsPhonemes() {
		if p := PhonemeFor(letter); p != "" {
			// Raw phoneme markup bypasses voice selection; the
			// engine's native voice renders notation most cleanly.
			o.speak(p, "", phonemeWPM, onDone)
			return
		}
	}
	if w := ApproxSyllableFor(letter); w != "" {
		o.SpeakWord(w, onDone)
		return
	}
	if onDone != nil {
		onDone()
	}
}

// Stop cancels the in-flight utterance, if any. Its OnDone still fires.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
		o.current = ""
	}
}

// Speaking reports whether an utterance is currently in flight.
func (o *Orchestrator) Speaking() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current != ""
}

// speak starts one utterance, displacing any current one. It returns
// immediately; rendering happens on a goroutine.
func (o *Orchestrator) speak(text, voice string, rate int, onDone func()) {
	finish := exactlyOnce(onDone)

	if o.engine == nil || text == "" {
		finish()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	id := uuid.NewString()

	o.mu.Lock()
	if o.cancel != nil {
		o.cancel()
	}
	o.cancel = cancel
	o.current = id
	o.mu.Unlock()

	go o.watchdog(ctx)
	go func() {
		defer cancel()
		err := o.engine.Speak(ctx, Utterance{Text: text, Voice: voice, Rate: rate})
		if err != nil && !errors.Is(err, context.Canceled) {
			slog.Debug("utterance failed", "id", id, "err", err)
		}

		o.mu.Lock()
		if o.current == id {
			o.cancel = nil
			o.current = ""
		}
		o.mu.Unlock()
		finish()
	}()
}

// watchdog pings the engine while an utterance is in flight so long
// utterances are not silently truncated.
func (o *Orchestrator) watchdog(ctx context.Context) {
	ticker := time.NewTicker(o.watchdogEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := o.engine.Pause(); err != nil {
				continue
			}
			if err := o.engine.Resume(); err != nil {
				slog.Debug("watchdog resume", "err", err)
			}
		}
	}
}

// resolveVoice picks a voice once per process. Engines populate their
// voice lists asynchronously, so the first call polls up to the
// timeout; an empty result degrades to the engine default voice.
func (o *Orchestrator) resolveVoice() string {
	if o.engine == nil {
		return ""
	}
	o.voiceOnce.Do(func() {
		deadline := time.Now().Add(o.voiceWait)
		for {
			voices, err := o.engine.Voices()
			if err == nil && len(voices) > 0 {
				if v := ChooseVoice(voices); v != nil {
					o.voice = v.Name
					slog.Debug("voice selected", "voice", v.Name, "lang", v.Lang)
				}
				return
			}
			if time.Now().After(deadline) {
				slog.Warn("voice list unavailable, using engine default", "err", err)
				return
			}
			time.Sleep(o.voicePoll)
		}
	})
	return o.voice
}

// wpm converts a rate multiplier to engine words per minute.
func wpm(rate float64) int {
	if rate == 0 {
		rate = 1.0
	}
	if rate < minRate {
		rate = minRate
	}
	if rate > maxRate {
		rate = maxRate
	}
	return int(rate * baseWPM)
}

// exactlyOnce wraps a possibly-nil callback so it runs at most once.
func exactlyOnce(fn func()) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			if fn != nil {
				fn()
			}
		})
	}
}
