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

// sentenceGame runs Sentence Fix: pick the word that fills the blank.
type sentenceGame struct {
	sess      *session.Session
	questions []games.SentenceQuestion

	idx      int
	choices  components.ChoiceList
	fb       feedback
	score    int
	finished bool
}

var _ screen.Screen = (*sentenceGame)(nil)

func newSentenceGame(sess *session.Session, qs []games.SentenceQuestion) *sentenceGame {
	return &sentenceGame{
		sess:      sess,
		questions: qs,
		choices:   components.NewChoiceList(qs[0].Options),
	}
}

func (g *sentenceGame) Title() string {
	if g.finished {
		return "📝 Sentence Fix"
	}
	return fmt.Sprintf("📝 Sentence Fix · %d/%d", g.idx+1, len(g.questions))
}

func (g *sentenceGame) Init() tea.Cmd { return nil }

func (g *sentenceGame) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(advanceMsg); ok {
		if g.fb == fbCorrect {
			if g.idx < len(g.questions)-1 {
				g.idx++
				g.choices = components.NewChoiceList(g.questions[g.idx].Options)
			} else {
				g.finished = true
			}
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
	case "enter":
		if g.choices.Choice() == q.Answer {
			g.fb = fbCorrect
			g.score++
			g.sess.RewardAnswer()
			g.sess.Speech.SpeakSentence(q.Text, nil)
			return g, advanceAfter(2 * correctPause)
		}
		g.fb = fbWrong
		g.sess.Speech.SpeakText("Try again!", speech.Options{})
		return g, advanceAfter(wrongPause)
	default:
		g.choices = g.choices.Update(msg)
	}

	return g, nil
}

// blanked renders the sentence with the missing word replaced, or the
// full sentence highlighted once it is solved.
func (g *sentenceGame) blanked(q games.SentenceQuestion) string {
	words := strings.Fields(q.Text)
	if g.fb == fbCorrect {
		words[q.BlankIndex] = lipgloss.NewStyle().
			Foreground(theme.Success).Bold(true).Render(words[q.BlankIndex])
	} else {
		words[q.BlankIndex] = "____"
	}
	return strings.Join(words, " ")
}

func (g *sentenceGame) View(width, height int) string {
	if g.finished {
		return finishedView(width, height,
			fmt.Sprintf("You fixed %d of %d sentences!", g.score, len(g.questions)))
	}

	cw := components.ContentWidth(width)
	q := g.questions[g.idx]

	head := q.Emoji + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(g.blanked(q))

	body := components.WordCard(head, cw) + "\n" +
		theme.Body.Render("Which word fits the blank?") + "\n\n" +
		g.choices.View(cw/2) + "\n" +
		feedbackLine(g.fb)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (g *sentenceGame) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Back"},
	}
}
