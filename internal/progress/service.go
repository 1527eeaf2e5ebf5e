package progress

import "time"

// Store persists the roster. Implementations must swallow their own failures:
// Load returns an empty roster on missing or corrupt data, Save logs and
// drops write errors. See internal/store.
type Store interface {
	LoadRoster() []Profile
	SaveRoster([]Profile)
}

// Service manages the roster and the session's active profile. It is not
// safe for concurrent use; the app drives it from the single UI loop.
type Service struct {
	store  Store
	roster []Profile
	active int // index into roster, -1 when no profile is selected
}

// NewService loads the roster from the store. No profile is active until
// SelectProfile or AddProfile succeeds.
func NewService(store Store) *Service {
	return &Service{
		store:  store,
		roster: store.LoadRoster(),
		active: -1,
	}
}

// Profiles returns the roster in insertion order. Callers must not mutate
// the returned slice.
func (s *Service) Profiles() []Profile {
	return s.roster
}

// Active returns the active profile, or nil if none is selected.
func (s *Service) Active() *Profile {
	if s.active < 0 || s.active >= len(s.roster) {
		return nil
	}
	return &s.roster[s.active]
}

// AddProfile creates a profile, appends it to the roster, and makes it
// active. Returns nil if the name is empty or already taken.
func (s *Service) AddProfile(name string) *Profile {
	if name == "" {
		return nil
	}
	for _, p := range s.roster {
		if p.Name == name {
			return nil
		}
	}
	s.roster = append(s.roster, Profile{
		Name:             name,
		CompletedLessons: make(map[string]bool),
		CreatedAt:        time.Now(),
	})
	s.active = len(s.roster) - 1
	s.persist()
	return &s.roster[s.active]
}

// DeleteProfile removes the named profile. Deleting the active profile
// clears the active selection. Unknown names are a no-op.
func (s *Service) DeleteProfile(name string) {
	idx := s.indexOf(name)
	if idx < 0 {
		return
	}
	s.roster = append(s.roster[:idx], s.roster[idx+1:]...)
	switch {
	case s.active == idx:
		s.active = -1
	case s.active > idx:
		s.active--
	}
	s.persist()
}

// SelectProfile makes the named profile active. Unknown names are a no-op.
func (s *Service) SelectProfile(name string) {
	if idx := s.indexOf(name); idx >= 0 {
		s.active = idx
	}
}

// Deselect clears the active profile (logout).
func (s *Service) Deselect() {
	s.active = -1
}

// AddStars adds a positive amount to the active profile's star count.
// No-op without an active profile or for non-positive amounts.
func (s *Service) AddStars(amount int) {
	p := s.Active()
	if p == nil || amount <= 0 {
		return
	}
	p.Stars += amount
	s.persist()
}

// MarkLessonComplete records the lesson as completed for the active profile.
// Idempotent; awards no stars.
func (s *Service) MarkLessonComplete(stageID, lessonIndex int) {
	p := s.Active()
	if p == nil {
		return
	}
	key := lessonKey(stageID, lessonIndex)
	if p.CompletedLessons[key] {
		return
	}
	if p.CompletedLessons == nil {
		p.CompletedLessons = make(map[string]bool)
	}
	p.CompletedLessons[key] = true
	s.persist()
}

// IsLessonComplete reports whether the active profile completed the lesson.
// False without an active profile.
func (s *Service) IsLessonComplete(stageID, lessonIndex int) bool {
	p := s.Active()
	if p == nil {
		return false
	}
	return p.CompletedLessons[lessonKey(stageID, lessonIndex)]
}

// Level returns the active profile's derived level. The lowest level
// without an active profile.
func (s *Service) Level() Level {
	p := s.Active()
	if p == nil {
		return LevelForCount(0)
	}
	return LevelForCount(len(p.CompletedLessons))
}

// StageProgress counts how many of the stage's lesson indices the active
// profile has completed.
func (s *Service) StageProgress(stageID, totalLessons int) StageProgress {
	sp := StageProgress{Total: totalLessons}
	p := s.Active()
	if p == nil {
		return sp
	}
	for i := 0; i < totalLessons; i++ {
		if p.CompletedLessons[lessonKey(stageID, i)] {
			sp.Completed++
		}
	}
	return sp
}

func (s *Service) indexOf(name string) int {
	for i, p := range s.roster {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func (s *Service) persist() {
	s.store.SaveRoster(s.roster)
}
