package session

import (
	"testing"

	"github.com/abhisek/phonix/internal/progress"
	"github.com/abhisek/phonix/internal/sfx"
	"github.com/abhisek/phonix/internal/speech"
)

type memStore struct {
	roster []progress.Profile
}

func (m *memStore) LoadRoster() []progress.Profile  { return m.roster }
func (m *memStore) SaveRoster(r []progress.Profile) { m.roster = r }

func newTestSession() *Session {
	s := New(progress.NewService(&memStore{}), speech.NewOrchestrator(nil), sfx.NewPlayer())
	s.Progress.AddProfile("Mina")
	return s
}

func TestCompleteLessonFirstTimeBonus(t *testing.T) {
	s := newTestSession()
	s.StageID, s.LessonIndex = 1, 0

	if got := s.CompleteLesson(); got != progress.LessonReward {
		t.Errorf("first completion awarded %d, want %d", got, progress.LessonReward)
	}
	if s.Stars() != progress.LessonReward {
		t.Errorf("stars = %d, want %d", s.Stars(), progress.LessonReward)
	}
	if !s.Progress.IsLessonComplete(1, 0) {
		t.Error("lesson not recorded complete")
	}
}

func TestCompleteLessonRepeatNoBonus(t *testing.T) {
	s := newTestSession()
	s.StageID, s.LessonIndex = 2, 3

	s.CompleteLesson()
	if got := s.CompleteLesson(); got != 0 {
		t.Errorf("repeat completion awarded %d, want 0", got)
	}
	if s.Stars() != progress.LessonReward {
		t.Errorf("stars = %d, want %d after repeat", s.Stars(), progress.LessonReward)
	}
}

func TestRewardAnswer(t *testing.T) {
	s := newTestSession()
	if got := s.RewardAnswer(); got != progress.AnswerReward {
		t.Errorf("answer awarded %d, want %d", got, progress.AnswerReward)
	}
	if s.Stars() != progress.AnswerReward {
		t.Errorf("stars = %d, want %d", s.Stars(), progress.AnswerReward)
	}
}

func TestStarsWithoutProfile(t *testing.T) {
	s := New(progress.NewService(&memStore{}), speech.NewOrchestrator(nil), sfx.NewPlayer())
	if s.Stars() != 0 {
		t.Errorf("stars = %d without a profile, want 0", s.Stars())
	}
}
