package game

import (
	"fmt"

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

// letterGame runs Letter Hunt and Sound Search: hear a sound, pick the
// letter. showSound additionally displays the IPA notation.
type letterGame struct {
	sess      *session.Session
	title     string
	questions []games.LetterQuestion
	showSound bool

	idx      int
	choices  components.ChoiceList
	fb       feedback
	score    int
	finished bool
}

var _ screen.Screen = (*letterGame)(nil)

func newLetterGame(sess *session.Session, title string, qs []games.LetterQuestion, showSound bool) *letterGame {
	return &letterGame{
		sess:      sess,
		title:     title,
		questions: qs,
		showSound: showSound,
		choices:   components.NewChoiceList(qs[0].Options),
	}
}

func (g *letterGame) Title() string {
	if g.finished {
		return g.title
	}
	return fmt.Sprintf("%s · %d/%d", g.title, g.idx+1, len(g.questions))
}

func (g *letterGame) Init() tea.Cmd {
	g.playSound()
	return nil
}

func (g *letterGame) playSound() {
	g.sess.Speech.SpeakPhoneme(g.questions[g.idx].Letter, nil)
}

func (g *letterGame) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(advanceMsg); ok {
		if g.fb == fbCorrect {
			if g.idx < len(g.questions)-1 {
				g.idx++
				g.choices = components.NewChoiceList(g.questions[g.idx].Options)
				g.playSound()
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
	case "r":
		g.playSound()
	case "enter":
		if g.choices.Choice() == q.Letter {
			g.fb = fbCorrect
			g.score++
			g.sess.RewardAnswer()
			g.sess.Speech.SpeakText("Correct!", speech.Options{})
			return g, advanceAfter(correctPause)
		}
		g.fb = fbWrong
		g.sess.Speech.SpeakText("Try again!", speech.Options{})
		return g, advanceAfter(wrongPause)
	default:
		g.choices = g.choices.Update(msg)
	}

	return g, nil
}

func (g *letterGame) View(width, height int) string {
	if g.finished {
		return finishedView(width, height,
			fmt.Sprintf("You found %d of %d letters!", g.score, len(g.questions)))
	}

	cw := components.ContentWidth(width)
	q := g.questions[g.idx]

	head := theme.Body.Render("🔊 Which letter makes this sound?")
	if g.showSound {
		head += "\n\n" + lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(q.Sound)
	}

	body := components.WordCard(head, cw) + "\n" +
		g.choices.View(cw/2) + "\n" +
		feedbackLine(g.fb)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (g *letterGame) KeyHints() []layout.KeyHint { return gameKeyHints() }

// feedbackLine renders the shared right/wrong banner.
func feedbackLine(fb feedback) string {
	switch fb {
	case fbCorrect:
		return theme.Correct.Render("🎉 Correct! +5 ⭐")
	case fbWrong:
		return theme.Incorrect.Render("😅 Try again!")
	}
	return ""
}

// finishedView renders the end-of-game banner.
func finishedView(width, height int, summary string) string {
	body := theme.Title.Render("🎉 All done!") + "\n\n" +
		theme.Body.Render(summary) + "\n\n" +
		theme.Hint.Render("press Esc to go back")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
