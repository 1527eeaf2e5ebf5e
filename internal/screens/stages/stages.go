// Package stages implements the curriculum overview: every stage with
// its completion bar, entered in any order.
package stages

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/content"
	"github.com/abhisek/phonix/internal/router"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/session"
	"github.com/abhisek/phonix/internal/ui/components"
	"github.com/abhisek/phonix/internal/ui/layout"
	"github.com/abhisek/phonix/internal/ui/theme"
)

// StagesScreen lists the seven curriculum stages.
type StagesScreen struct {
	sess *session.Session
	menu components.Menu
}

var _ screen.Screen = (*StagesScreen)(nil)

// New creates a StagesScreen.
func New(sess *session.Session) *StagesScreen {
	var items []components.MenuItem
	for _, st := range content.Stages() {
		st := st
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s %s", st.Icon, st.Title),
			Action: func() tea.Cmd {
				sess.StageID = st.ID
				sess.LessonIndex = 0
				return router.Navigate(router.Lesson)
			},
		})
	}
	return &StagesScreen{sess: sess, menu: components.NewMenu(items)}
}

func (s *StagesScreen) Title() string { return "Lessons" }

func (s *StagesScreen) Init() tea.Cmd { return nil }

func (s *StagesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *StagesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var rows []string
	for i, st := range content.Stages() {
		sp := s.sess.Progress.StageProgress(st.ID, st.LessonCount())

		label := fmt.Sprintf("%s %s", st.Icon, st.Title)
		if i == s.menu.Selected {
			label = theme.Selected.Render("▸ " + label)
		} else {
			label = theme.Unselected.Render("  " + label)
		}

		var pct float64
		if sp.Total > 0 {
			pct = float64(sp.Completed) / float64(sp.Total)
		}
		bar := components.NewProgressBar("", pct, false, cw/2).View()
		count := theme.Hint.Render(fmt.Sprintf(" %d/%d", sp.Completed, sp.Total))

		rows = append(rows, label+"\n    "+bar+count)
	}

	desc := ""
	if s.menu.Selected < len(content.Stages()) {
		desc = theme.Subtitle.Render(content.Stages()[s.menu.Selected].Description)
	}

	body := strings.Join(rows, "\n") + "\n\n" + desc
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// KeyHints implements screen.KeyHintProvider.
func (s *StagesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose stage"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}
