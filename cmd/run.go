package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/abhisek/phonix/internal/app"
	"github.com/abhisek/phonix/internal/progress"
	"github.com/abhisek/phonix/internal/session"
	"github.com/abhisek/phonix/internal/sfx"
	"github.com/abhisek/phonix/internal/speech"
	"github.com/abhisek/phonix/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	closeLog := configureLogging(dbPath)
	defer closeLog()

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	engine, err := speech.DetectEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Speech engine not found:", err)
		fmt.Fprintln(os.Stderr, "Lessons will run silently. Install espeak-ng to hear the sounds.")
	}
	orch := speech.NewOrchestrator(engine)
	defer orch.Stop()

	sess := session.New(progress.NewService(st), orch, sfx.NewPlayer())
	return app.Run(sess)
}

// configureLogging routes slog away from the terminal: stray log lines
// would tear the TUI. With PHONIX_DEBUG set, logs go to a file next to
// the database; otherwise they are dropped.
func configureLogging(dbPath string) func() {
	discard := func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	if os.Getenv("PHONIX_DEBUG") == "" {
		discard()
		return func() {}
	}

	logPath := filepath.Join(filepath.Dir(dbPath), "phonix.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		discard()
		return func() {}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	return func() { _ = f.Close() }
}
