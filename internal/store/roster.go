package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/abhisek/phonix/internal/progress"
)

// rosterRecord is the name of the blob record holding all profiles.
const rosterRecord = "roster"

// LoadRoster reads the saved profile roster. A missing or unreadable
// record yields an empty roster so the app always starts; corruption
// costs saved progress, never a crash.
func (s *Store) LoadRoster() []progress.Profile {
	var data []byte
	err := s.db.QueryRow(
		"SELECT data FROM records WHERE name = ?", rosterRecord,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		slog.Warn("load roster", "err", err)
		return nil
	}

	var roster []progress.Profile
	if err := json.Unmarshal(data, &roster); err != nil {
		slog.Warn("roster record corrupt, starting fresh", "err", err)
		return nil
	}
	return roster
}

// SaveRoster writes the full roster as one JSON blob. Failures are
// logged and swallowed: a broken disk should not interrupt a lesson.
func (s *Store) SaveRoster(roster []progress.Profile) {
	data, err := json.Marshal(roster)
	if err != nil {
		slog.Warn("encode roster", "err", err)
		return
	}

	_, err = s.db.Exec(`
		INSERT INTO records (name, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		rosterRecord, data, time.Now().UTC(),
	)
	if err != nil {
		slog.Warn("save roster", "err", err)
	}
}

// DeleteRoster removes the saved roster record. Unlike the app-facing
// load/save path this reports the error; the reset command wants to
// tell the user whether anything happened.
func (s *Store) DeleteRoster() error {
	_, err := s.db.Exec("DELETE FROM records WHERE name = ?", rosterRecord)
	return err
}
