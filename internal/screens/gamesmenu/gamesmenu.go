// Package gamesmenu implements the review games picker.
package gamesmenu

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/games"
	"github.com/abhisek/phonix/internal/router"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/session"
	"github.com/abhisek/phonix/internal/ui/components"
	"github.com/abhisek/phonix/internal/ui/theme"
)

// GamesScreen lists the five review games.
type GamesScreen struct {
	sess *session.Session
	menu components.Menu
}

var _ screen.Screen = (*GamesScreen)(nil)

// New creates a GamesScreen.
func New(sess *session.Session) *GamesScreen {
	var items []components.MenuItem
	for _, g := range games.All() {
		g := g
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s %s", g.Icon, g.Title),
			Action: func() tea.Cmd {
				sess.GameID = g.ID
				return router.Navigate(router.Game)
			},
		})
	}
	return &GamesScreen{sess: sess, menu: components.NewMenu(items)}
}

func (g *GamesScreen) Title() string { return "Games" }

func (g *GamesScreen) Init() tea.Cmd { return nil }

func (g *GamesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	g.menu, cmd = g.menu.Update(msg)
	return g, cmd
}

func (g *GamesScreen) View(width, height int) string {
	title := theme.Title.Render("🎮 Pick a game")

	desc := ""
	if g.menu.Selected < len(games.All()) {
		desc = theme.Subtitle.Render(games.All()[g.menu.Selected].Description)
	}

	body := strings.Join([]string{title, "", g.menu.View(), desc}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
