// Package login implements the profile picker: choose a learner,
// create a new one, or remove one.
package login

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/router"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/session"
	"github.com/abhisek/phonix/internal/ui/components"
	"github.com/abhisek/phonix/internal/ui/layout"
	"github.com/abhisek/phonix/internal/ui/theme"
)

const maxNameLen = 12

// LoginScreen lets the learner pick or create a profile.
type LoginScreen struct {
	sess     *session.Session
	menu     components.Menu
	input    components.TextInput
	creating bool
	errMsg   string
}

var _ screen.Screen = (*LoginScreen)(nil)

// New creates a LoginScreen over the current roster.
func New(sess *session.Session) *LoginScreen {
	s := &LoginScreen{sess: sess}
	s.menu = components.NewMenu(s.menuItems())
	return s
}

func (s *LoginScreen) menuItems() []components.MenuItem {
	var items []components.MenuItem
	for _, p := range s.sess.Progress.Profiles() {
		name := p.Name
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("👤 %s  ⭐ %d", name, p.Stars),
			Action: func() tea.Cmd {
				s.sess.Progress.SelectProfile(name)
				s.sess.Speech.SpeakWord("Hello "+name+"! Let's learn phonics!", nil)
				return router.Navigate(router.Home)
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "➕ New learner",
		Action: func() tea.Cmd {
			s.creating = true
			s.errMsg = ""
			s.input = components.NewTextInput("your name", false, maxNameLen)
			return s.input.Init()
		},
	})
	return items
}

func (s *LoginScreen) Title() string { return "Who's learning today?" }

func (s *LoginScreen) Init() tea.Cmd { return nil }

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.creating {
		return s.updateCreating(msg)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "x" {
			s.deleteSelected()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LoginScreen) updateCreating(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			name := strings.TrimSpace(s.input.Value())
			if p := s.sess.Progress.AddProfile(name); p != nil {
				s.creating = false
				s.sess.Speech.SpeakWord("Hello "+name+"! Let's learn phonics!", nil)
				return s, router.Navigate(router.Home)
			}
			if name == "" {
				s.errMsg = "Type a name first!"
			} else {
				s.errMsg = "That name is taken!"
			}
			return s, nil
		case "esc":
			s.creating = false
			s.errMsg = ""
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *LoginScreen) deleteSelected() {
	profiles := s.sess.Progress.Profiles()
	idx := s.menu.Selected
	if idx < 0 || idx >= len(profiles) {
		return
	}
	s.sess.Progress.DeleteProfile(profiles[idx].Name)
	s.menu = components.NewMenu(s.menuItems())
}

func (s *LoginScreen) View(width, height int) string {
	title := theme.Title.Render("🔤 Phonix")
	subtitle := theme.Subtitle.Render("Learn to read, sound by sound")

	var body string
	if s.creating {
		prompt := theme.Body.Render("What's your name?")
		body = prompt + "\n\n" + s.input.View()
		if s.errMsg != "" {
			body += "\n\n" + theme.Incorrect.Render(s.errMsg)
		}
	} else {
		body = s.menu.View()
	}

	content := strings.Join([]string{title, subtitle, "", body}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// KeyHints implements screen.KeyHintProvider.
func (s *LoginScreen) KeyHints() []layout.KeyHint {
	if s.creating {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Create"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Play"},
		{Key: "X", Description: "Remove"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
