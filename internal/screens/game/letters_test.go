package game

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/phonix/internal/games"
	"github.com/abhisek/phonix/internal/progress"
	"github.com/abhisek/phonix/internal/session"
	"github.com/abhisek/phonix/internal/sfx"
	"github.com/abhisek/phonix/internal/speech"
)

type memStore struct {
	roster []progress.Profile
}

func (m *memStore) LoadRoster() []progress.Profile       { return m.roster }
func (m *memStore) SaveRoster(roster []progress.Profile) { m.roster = roster }

func newLetterHunt(t *testing.T) (*letterGame, *session.Session) {
	t.Helper()
	sess := session.New(progress.NewService(&memStore{}), speech.NewOrchestrator(nil), sfx.NewPlayer())
	sess.Progress.AddProfile("Sori")
	qs := []games.LetterQuestion{
		{Letter: "b", Sound: "/b/", Options: []string{"a", "b", "c"}},
		{Letter: "m", Sound: "/m/", Options: []string{"m", "s", "t"}},
	}
	return newLetterGame(sess, "🔤 Letter Hunt", qs, false), sess
}

func TestLetterGameAnswerWithChoicePicker(t *testing.T) {
	g, sess := newLetterHunt(t)

	g.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if got := g.choices.Choice(); got != "b" {
		t.Fatalf("choice after down = %q, want %q", got, "b")
	}

	g.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if g.fb != fbCorrect {
		t.Errorf("feedback = %v, want fbCorrect", g.fb)
	}
	if g.score != 1 {
		t.Errorf("score = %d, want 1", g.score)
	}
	if got := sess.Stars(); got != progress.AnswerReward {
		t.Errorf("stars = %d, want %d", got, progress.AnswerReward)
	}
}

func TestLetterGameNextQuestionResetsChoices(t *testing.T) {
	g, _ := newLetterHunt(t)

	g.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	g.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	g.Update(advanceMsg{})

	if g.idx != 1 {
		t.Fatalf("idx = %d, want 1", g.idx)
	}
	if g.choices.Cursor != 0 {
		t.Errorf("cursor = %d, want 0 on a fresh question", g.choices.Cursor)
	}
	if got := g.choices.Choice(); got != "m" {
		t.Errorf("choice = %q, want the new question's first option %q", got, "m")
	}
}

func TestLetterGameWrongAnswerKeepsQuestion(t *testing.T) {
	g, sess := newLetterHunt(t)

	g.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // "a" is wrong
	if g.fb != fbWrong {
		t.Errorf("feedback = %v, want fbWrong", g.fb)
	}
	if got := sess.Stars(); got != 0 {
		t.Errorf("stars = %d, want 0", got)
	}

	g.Update(advanceMsg{})
	if g.idx != 0 {
		t.Errorf("idx = %d, want 0 after a miss", g.idx)
	}
	if g.fb != fbNone {
		t.Errorf("feedback = %v, want fbNone after advance", g.fb)
	}
}
