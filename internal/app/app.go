// Package app owns the root Bubble Tea model: window sizing, the
// header/footer chrome, global keys, and the screen factory behind the
// router.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/router"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/screens/game"
	"github.com/abhisek/phonix/internal/screens/gamesmenu"
	"github.com/abhisek/phonix/internal/screens/home"
	"github.com/abhisek/phonix/internal/screens/lesson"
	"github.com/abhisek/phonix/internal/screens/login"
	"github.com/abhisek/phonix/internal/screens/report"
	"github.com/abhisek/phonix/internal/screens/stages"
	"github.com/abhisek/phonix/internal/session"
	"github.com/abhisek/phonix/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	sess   *session.Session
	router *router.Router
	width  int
	height int
}

// newAppModel starts at the login screen.
func newAppModel(sess *session.Session) AppModel {
	factory := func(id router.ScreenID) screen.Screen {
		switch id {
		case router.Home:
			return home.New(sess)
		case router.Stages:
			return stages.New(sess)
		case router.Lesson:
			return lesson.New(sess)
		case router.Games:
			return gamesmenu.New(sess)
		case router.Game:
			return game.New(sess)
		case router.Progress:
			return report.New(sess)
		}
		return login.New(sess)
	}
	return AppModel{
		sess:   sess,
		router: router.New(router.Login, factory),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.sess.Speech.Stop()
			return m, tea.Quit
		case "esc":
			// The login screen is the root and handles esc itself
			// (it cancels name entry there).
			if m.router.Current() != router.Login {
				m.sess.Speech.Stop()
				return m, m.router.Back()
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	badge := ""
	if p := m.sess.Progress.Active(); p != nil {
		badge = fmt.Sprintf("%s %s", m.sess.Progress.Level().Badge, p.Name)
	}
	header := layout.RenderHeader(title, m.sess.Stars(), badge, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(sess *session.Session) error {
	p := tea.NewProgram(newAppModel(sess))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
