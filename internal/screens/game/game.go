// Package game hosts the five mini-game screens. New dispatches on the
// session's game cursor; each game is its own model sharing the
// feedback/advance flow.
package game

import (
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/phonix/internal/games"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/session"
	"github.com/abhisek/phonix/internal/ui/layout"
)

const (
	correctPause = 1500 * time.Millisecond
	wrongPause   = time.Second
)

// advanceMsg moves a game past its feedback display.
type advanceMsg struct{}

func advanceAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return advanceMsg{} })
}

// feedback is the shared answer state.
type feedback int

const (
	fbNone feedback = iota
	fbCorrect
	fbWrong
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().Unix())))
}

// New builds the screen for the session's selected game.
func New(sess *session.Session) screen.Screen {
	r := newRand()
	switch sess.GameID {
	case games.AlphabetQuiz:
		return newLetterGame(sess, "🔤 Letter Hunt", games.NewAlphabetQuiz(r), true)
	case games.Listening:
		return newLetterGame(sess, "👂 Sound Search", games.NewListeningRound(r), false)
	case games.Matching:
		return newMatchingGame(sess, games.NewMatchingDeck(r))
	case games.Spelling:
		return newSpellingGame(sess, games.NewSpellingRound(r))
	case games.Sentence:
		return newSentenceGame(sess, games.NewSentenceRound(r))
	}
	return newLetterGame(sess, "🔤 Letter Hunt", games.NewAlphabetQuiz(r), true)
}

func gameKeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "R", Description: "Hear again"},
		{Key: "Esc", Description: "Back"},
	}
}
