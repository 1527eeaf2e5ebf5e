package game

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/games"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/session"
	"github.com/abhisek/phonix/internal/speech"
	"github.com/abhisek/phonix/internal/ui/components"
	"github.com/abhisek/phonix/internal/ui/layout"
	"github.com/abhisek/phonix/internal/ui/theme"
)

// spellingGame runs Word Builder: pick sounds from the bank to spell
// the pictured word.
type spellingGame struct {
	sess      *session.Session
	questions []games.SpellingQuestion

	idx      int
	cursor   int
	picked   []int // bank indices in pick order
	fb       feedback
	score    int
	finished bool
}

var _ screen.Screen = (*spellingGame)(nil)

func newSpellingGame(sess *session.Session, qs []games.SpellingQuestion) *spellingGame {
	return &spellingGame{sess: sess, questions: qs}
}

func (g *spellingGame) Title() string {
	if g.finished {
		return "🧩 Word Builder"
	}
	return fmt.Sprintf("🧩 Word Builder · %d/%d", g.idx+1, len(g.questions))
}

func (g *spellingGame) Init() tea.Cmd {
	g.sess.Speech.SpeakWord(g.questions[g.idx].Word.Word, nil)
	return nil
}

func (g *spellingGame) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(advanceMsg); ok {
		if g.fb == fbCorrect {
			if g.idx < len(g.questions)-1 {
				g.idx++
				g.cursor = 0
				g.picked = nil
				g.sess.Speech.SpeakWord(g.questions[g.idx].Word.Word, nil)
			} else {
				g.finished = true
			}
		} else {
			g.picked = nil
		}
		g.fb = fbNone
		return g, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || g.fb != fbNone || g.finished {
		return g, nil
	}

	q := g.questions[g.idx]
	switch kmsg.String() {
	case "left", "h":
		if g.cursor > 0 {
			g.cursor--
		}
	case "right", "l":
		if g.cursor < len(q.Bank)-1 {
			g.cursor++
		}
	case "r":
		g.sess.Speech.SpeakWord(q.Word.Word, nil)
	case "backspace":
		if len(g.picked) > 0 {
			g.picked = g.picked[:len(g.picked)-1]
		}
	case "enter", " ":
		return g, g.pick()
	}

	return g, nil
}

func (g *spellingGame) pick() tea.Cmd {
	q := g.questions[g.idx]
	if g.isPicked(g.cursor) {
		return nil
	}

	g.picked = append(g.picked, g.cursor)
	g.sess.Speech.SpeakPhoneme(q.Bank[g.cursor], nil)
	if len(g.picked) < len(q.Word.Phonemes) {
		return nil
	}

	var sounds []string
	for _, p := range g.picked {
		sounds = append(sounds, q.Bank[p])
	}
	if games.CheckSpelling(q, sounds) {
		g.fb = fbCorrect
		g.score++
		g.sess.RewardAnswer()
		g.sess.Speech.SpeakWord(q.Word.Word, nil)
		return advanceAfter(correctPause)
	}
	g.fb = fbWrong
	g.sess.Speech.SpeakText("Try again!", speech.Options{})
	return advanceAfter(wrongPause)
}

func (g *spellingGame) isPicked(idx int) bool {
	for _, p := range g.picked {
		if p == idx {
			return true
		}
	}
	return false
}

func (g *spellingGame) View(width, height int) string {
	if g.finished {
		return finishedView(width, height,
			fmt.Sprintf("You built %d of %d words!", g.score, len(g.questions)))
	}

	cw := components.ContentWidth(width)
	q := g.questions[g.idx]

	head := lipgloss.NewStyle().Bold(true).Render(q.Word.Emoji) + "\n\n" +
		theme.Body.Render("🔊 Build the word you hear!")

	// Slots fill left to right as sounds are picked.
	var slots []string
	for i := range q.Word.Phonemes {
		s := "_"
		if i < len(g.picked) {
			s = q.Bank[g.picked[i]]
		}
		slots = append(slots, s)
	}
	slotLine := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(strings.Join(slots, " "))

	var bank []string
	for i, sound := range q.Bank {
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1)
		if g.isPicked(i) {
			style = style.Foreground(theme.TextDim)
		}
		if i == g.cursor {
			style = style.BorderForeground(theme.Star)
		}
		bank = append(bank, style.Render(sound))
	}

	body := components.WordCard(head+"\n\n"+slotLine, cw) + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, bank...) + "\n" +
		feedbackLine(g.fb)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (g *spellingGame) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Pick"},
		{Key: "Bksp", Description: "Undo"},
		{Key: "R", Description: "Hear again"},
		{Key: "Esc", Description: "Back"},
	}
}
