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

// sayEngine drives the macOS `say` command. Like the eSpeak backend it
// runs one child process per utterance and pauses with job control
// signals. `say` takes plain text only, so phoneme requests fall back
// to approximating words upstream.
type sayEngine struct {
	mu   sync.Mutex
	proc *exec.Cmd
}

func newSayEngine() *sayEngine { return &sayEngine{} }

func (e *sayEngine) Name() string { return "say" }

func (e *sayEngine) SupportsPhonemes() bool { return false }

// Voices parses `say -v ?`, whose rows look like:
//
//	Samantha            en_US    # Hello, my name is Samantha.
func (e *sayEngine) Voices() ([]Voice, error) {
	out, err := exec.Command("say", "-v", "?").Output()
	if err != nil {
		return nil, fmt.Errorf("list voices: %w", err)
	}
	return parseSayVoices(out), nil
}

func parseSayVoices(out []byte) []Voice {
	var voices []Voice
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line, _, _ := strings.Cut(sc.Text(), "#")
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		// The language tag is the last field; multi-word voice names
		// ("Bad News") occupy everything before it.
		lang := fields[len(fields)-1]
		name := strings.Join(fields[:len(fields)-1], " ")
		voices = append(voices, Voice{
			Name:  name,
			Lang:  strings.ReplaceAll(lang, "_", "-"),
			Local: true,
		})
	}
	return voices
}

func (e *sayEngine) Speak(ctx context.Context, u Utterance) error {
	args := []string{"-r", strconv.Itoa(u.Rate)}
	if u.Voice != "" {
		args = append(args, "-v", u.Voice)
	}
	args = append(args, "--", u.Text)

	cmd := exec.CommandContext(ctx, "say", args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start say: %w", err)
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
		return fmt.Errorf("say: %w", err)
	}
	return nil
}

func (e *sayEngine) Pause() error  { return e.signal(syscall.SIGSTOP) }
func (e *sayEngine) Resume() error { return e.signal(syscall.SIGCONT) }

func (e *sayEngine) signal(sig syscall.Signal) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.proc == nil || e.proc.Process == nil {
		return nil
	}
	return e.proc.Process.Signal(sig)
}
