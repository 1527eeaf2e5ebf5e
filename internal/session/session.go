// Package session carries the state shared across screens for one run
// of the app: the service bundle and where the learner currently is in
// the curriculum. Screens receive the same *Session and read or move
// the cursor fields as the learner navigates.
package session

import (
	"github.com/abhisek/phonix/internal/games"
	"github.com/abhisek/phonix/internal/progress"
	"github.com/abhisek/phonix/internal/sfx"
	"github.com/abhisek/phonix/internal/speech"
)

// Session is the app-wide state bundle. It lives for the whole program
// and is driven from the single UI loop, so it needs no locking.
type Session struct {
	Progress *progress.Service
	Speech   *speech.Orchestrator
	Sound    *sfx.Player

	// Navigation cursor: which stage, lesson, and game the learner
	// has open. Zero values mean "nothing selected".
	StageID     int
	LessonIndex int
	GameID      games.ID
}

// New bundles the services. Speech and Sound may be nil-engined but
// never nil; callers rely on them being callable.
func New(prog *progress.Service, sp *speech.Orchestrator, snd *sfx.Player) *Session {
	return &Session{
		Progress: prog,
		Speech:   sp,
		Sound:    snd,
	}
}

// CompleteLesson marks the open lesson done. The first completion earns
// the lesson star bonus and the star chime; repeats are silent no-ops
// for rewards. Returns the stars awarded.
func (s *Session) CompleteLesson() int {
	first := !s.Progress.IsLessonComplete(s.StageID, s.LessonIndex)
	s.Progress.MarkLessonComplete(s.StageID, s.LessonIndex)
	if !first {
		return 0
	}
	s.Progress.AddStars(progress.LessonReward)
	s.Sound.Star()
	return progress.LessonReward
}

// RewardAnswer awards the correct-answer stars and plays the ding.
func (s *Session) RewardAnswer() int {
	s.Progress.AddStars(progress.AnswerReward)
	s.Sound.Ding()
	return progress.AnswerReward
}

// Stars returns the active profile's star count, 0 when logged out.
func (s *Session) Stars() int {
	p := s.Progress.Active()
	if p == nil {
		return 0
	}
	return p.Stars
}
