package lesson

import (
	"strings"
	"testing"

	"github.com/abhisek/phonix/internal/content"
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

func newCVCLesson(t *testing.T) (*LessonScreen, *session.Session) {
	t.Helper()
	sess := session.New(progress.NewService(&memStore{}), speech.NewOrchestrator(nil), sfx.NewPlayer())
	sess.Progress.AddProfile("Sori")
	sess.StageID = 2
	return New(sess), sess
}

// pickWord feeds the bank indices that spell the given word, in order.
func pickWord(t *testing.T, l *LessonScreen, word string) {
	t.Helper()
	for _, r := range word {
		letter := string(r)
		found := false
		for i := range l.bank {
			if l.bank[i] == letter && !l.pickedBank(i) {
				l.pickLetter(i)
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("letter %q not available in bank %v", letter, l.bank)
		}
	}
}

func TestCVCBuildCorrectWordAwardsStars(t *testing.T) {
	l, sess := newCVCLesson(t)
	word := l.stage.CVC[0].Words[0]

	if len(l.bank) != len(word.Phonemes) {
		t.Fatalf("bank size = %d, want %d", len(l.bank), len(word.Phonemes))
	}

	pickWord(t, l, word.Word)

	if !l.solved {
		t.Error("building the word should solve it")
	}
	if got := sess.Stars(); got != progress.AnswerReward {
		t.Errorf("stars = %d, want %d", got, progress.AnswerReward)
	}

	// Further picks after solving are ignored.
	l.pickLetter(0)
	if got := sess.Stars(); got != progress.AnswerReward {
		t.Errorf("stars after extra pick = %d, want %d", got, progress.AnswerReward)
	}
}

func TestCVCWrongBuildClearsForRetry(t *testing.T) {
	l, _ := newCVCLesson(t)
	word := l.stage.CVC[0].Words[0]

	wrong := reverse(word.Word)
	if wrong == word.Word {
		t.Skip("first word is palindromic, cannot build a wrong order")
	}
	pickWord(t, l, wrong)

	if l.solved {
		t.Error("wrong order should not solve the word")
	}
	if len(l.picked) != 0 {
		t.Errorf("picked = %v, want cleared for retry", l.picked)
	}
	if !strings.Contains(l.flash, "Try again") {
		t.Errorf("flash = %q, want a retry prompt", l.flash)
	}
}

func TestCVCBankReshuffledPerWord(t *testing.T) {
	l, _ := newCVCLesson(t)

	l.word = 1
	l.resetBuild()

	want := l.stage.CVC[0].Words[1].Phonemes
	if len(l.bank) != len(want) {
		t.Fatalf("bank size = %d, want %d", len(l.bank), len(want))
	}
	counts := map[string]int{}
	for _, b := range l.bank {
		counts[b]++
	}
	for _, p := range want {
		counts[p]--
	}
	for letter, n := range counts {
		if n != 0 {
			t.Errorf("bank letter %q count off by %d", letter, n)
		}
	}
}

func TestNonCVCStageHasNoBank(t *testing.T) {
	sess := session.New(progress.NewService(&memStore{}), speech.NewOrchestrator(nil), sfx.NewPlayer())
	sess.StageID = 1
	l := New(sess)
	if len(l.bank) != 0 {
		t.Errorf("alphabet stage bank = %v, want empty", l.bank)
	}
	l.pickLetter(0)
	if l.solved || len(l.picked) != 0 {
		t.Error("pickLetter must be a no-op outside CVC stages")
	}
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
