package speech

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"syscall"
)

// espeakEngine drives the eSpeak / eSpeak NG command line synthesizer.
// Each utterance is one short-lived child process; pause and resume map
// to SIGSTOP and SIGCONT on that process.
type espeakEngine struct {
	bin string

	mu   sync.Mutex
	proc *exec.Cmd // in-flight utterance, nil when idle
}

func newEspeakEngine(bin string) *espeakEngine {
	return &espeakEngine{bin: bin}
}

func (e *espeakEngine) Name() string { return e.bin }

func (e *espeakEngine) SupportsPhonemes() bool { return true }

// Voices lists installed English voices. eSpeak prints a fixed-width
// table; we only need the language tag and voice name columns.
func (e *espeakEngine) Voices() ([]Voice, error) {
	out, err := exec.Command(e.bin, "--voices=en").Output()
	if err != nil {
		return nil, fmt.Errorf("list voices: %w", err)
	}
	return parseEspeakVoices(out), nil
}

func parseEspeakVoices(out []byte) []Voice {
	var voices []Voice
	sc := bufio.NewScanner(bytes.NewReader(out))
	first := true
	for sc.Scan() {
		if first { // header row
			first = false
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) < 4 {
			continue
		}
		voices = append(voices, Voice{
			Name: fields[3],
			Lang: normalizeLang(fields[1]),
			// eSpeak synthesizes entirely on-device.
			Local: true,
		})
	}
	if len(voices) > 0 {
		voices[0].Default = true
	}
	return voices
}

// normalizeLang uppercases the region so "en-us" compares equal to the
// "en-US" form other engines report.
func normalizeLang(tag string) string {
	base, region, ok := strings.Cut(tag, "-")
	if !ok {
		return tag
	}
	return base + "-" + strings.ToUpper(region)
}

func (e *espeakEngine) Speak(ctx context.Context, u Utterance) error {
	args := []string{"-s", strconv.Itoa(u.Rate)}
	if u.Voice != "" {
		args = append(args, "-v", u.Voice)
	}
	args = append(args, "--", u.Text)

	cmd := exec.CommandContext(ctx, e.bin, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", e.bin, err)
	}

	e.mu.Lock()
	e.proc = cmd
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.proc = nil
		e.mu.Unlock()
	}()

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s: %w", e.bin, err)
	}
	return nil
}

func (e *espeakEngine) Pause() error  { return e.signal(syscall.SIGSTOP) }
func (e *espeakEngine) Resume() error { return e.signal(syscall.SIGCONT) }

func (e *espeakEngine) signal(sig syscall.Signal) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.proc == nil || e.proc.Process == nil {
		return nil
	}
	return e.proc.Process.Signal(sig)
}
