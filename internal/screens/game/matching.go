package game

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/games"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/session"
	"github.com/abhisek/phonix/internal/ui/layout"
	"github.com/abhisek/phonix/internal/ui/theme"
)

const matchingCols = 4

// matchingGame runs Card Flip: find the word/picture pairs.
type matchingGame struct {
	sess *session.Session
	deck []games.Card

	cursor  int
	flipped []int // indices of face-up, unmatched cards (0-2)
	matched map[int]bool
	tries   int
}

var _ screen.Screen = (*matchingGame)(nil)

func newMatchingGame(sess *session.Session, deck []games.Card) *matchingGame {
	return &matchingGame{sess: sess, deck: deck, matched: map[int]bool{}}
}

func (g *matchingGame) Title() string { return "🎴 Card Flip" }

func (g *matchingGame) Init() tea.Cmd { return nil }

func (g *matchingGame) done() bool {
	return len(g.matched) == len(g.deck)/2
}

func (g *matchingGame) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(advanceMsg); ok {
		// Mismatch pause over: flip both back down.
		g.flipped = nil
		return g, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || g.done() || len(g.flipped) == 2 {
		return g, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if g.cursor%matchingCols > 0 {
			g.cursor--
		}
	case "right", "l":
		if g.cursor%matchingCols < matchingCols-1 && g.cursor+1 < len(g.deck) {
			g.cursor++
		}
	case "up", "k":
		if g.cursor-matchingCols >= 0 {
			g.cursor -= matchingCols
		}
	case "down", "j":
		if g.cursor+matchingCols < len(g.deck) {
			g.cursor += matchingCols
		}
	case "enter", " ":
		return g, g.flip()
	}

	return g, nil
}

func (g *matchingGame) flip() tea.Cmd {
	card := g.deck[g.cursor]
	if g.matched[card.Pair] || g.faceUp(g.cursor) {
		return nil
	}

	g.flipped = append(g.flipped, g.cursor)
	if card.IsWord {
		g.sess.Speech.SpeakWord(card.Content, nil)
	}

	if len(g.flipped) < 2 {
		return nil
	}

	g.tries++
	a, b := g.deck[g.flipped[0]], g.deck[g.flipped[1]]
	if a.Pair == b.Pair {
		g.matched[a.Pair] = true
		g.flipped = nil
		g.sess.RewardAnswer()
		return nil
	}
	return advanceAfter(wrongPause)
}

func (g *matchingGame) faceUp(idx int) bool {
	for _, f := range g.flipped {
		if f == idx {
			return true
		}
	}
	return false
}

func (g *matchingGame) View(width, height int) string {
	if g.done() {
		return finishedView(width, height,
			fmt.Sprintf("All pairs found in %d tries!", g.tries))
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(8).
		Align(lipgloss.Center)

	var rows []string
	for start := 0; start < len(g.deck); start += matchingCols {
		var cells []string
		for i := start; i < start+matchingCols && i < len(g.deck); i++ {
			card := g.deck[i]
			face := "?"
			style := cardStyle
			if g.matched[card.Pair] {
				face = card.Content
				style = style.BorderForeground(theme.Success).Foreground(theme.TextDim)
			} else if g.faceUp(i) {
				face = card.Content
				style = style.BorderForeground(theme.Secondary)
			}
			if i == g.cursor {
				style = style.BorderForeground(theme.Star)
			}
			cells = append(cells, style.Render(face))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	body := strings.Join(rows, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (g *matchingGame) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓←→", Description: "Move"},
		{Key: "Enter", Description: "Flip"},
		{Key: "Esc", Description: "Back"},
	}
}
