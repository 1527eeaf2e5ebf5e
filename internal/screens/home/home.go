// Package home implements the main menu shown after login.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/router"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/session"
	"github.com/abhisek/phonix/internal/ui/components"
	"github.com/abhisek/phonix/internal/ui/theme"
)

const mascotArt = `  ╭───────────╮
  │  ┌─────┐  │
  │  │ ◉ ◉ │  │
  │  │  ◡  │  │
  │  ├─────┤  │
  │  │ abc │  │
  │  └─────┘  │
  ╰───────────╯`

// HomeScreen is the hub between lessons, games, and the progress report.
type HomeScreen struct {
	sess *session.Session
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen.
func New(sess *session.Session) *HomeScreen {
	items := []components.MenuItem{
		{Label: "📚 LESSONS", Action: func() tea.Cmd {
			return router.Navigate(router.Stages)
		}},
		{Label: "🎮 GAMES", Action: func() tea.Cmd {
			return router.Navigate(router.Games)
		}},
		{Label: "⭐ MY PROGRESS", Action: func() tea.Cmd {
			return router.Navigate(router.Progress)
		}},
		{Label: "👋 SWITCH LEARNER", Action: func() tea.Cmd {
			sess.Progress.Deselect()
			return router.Navigate(router.Login)
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &HomeScreen{sess: sess, menu: components.NewMenu(items)}
}

func (h *HomeScreen) Title() string { return "Home" }

func (h *HomeScreen) Init() tea.Cmd { return nil }

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	mascot := lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotArt)

	greeting := ""
	if p := h.sess.Progress.Active(); p != nil {
		lvl := h.sess.Progress.Level()
		greeting = theme.Body.Bold(true).Render(fmt.Sprintf("Hi %s!", p.Name)) + "\n" +
			theme.Subtitle.Render(fmt.Sprintf("%s %s  ·  ⭐ %d", lvl.Badge, lvl.Name, p.Stars))
	}

	content := strings.Join([]string{mascot, "", greeting, "", h.menu.View()}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
