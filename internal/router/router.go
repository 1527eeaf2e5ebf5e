// Package router owns screen navigation. Navigation follows an
// explicit transition table: every screen has at most one parent, so
// "back" is a total function of where you are and the whole map of the
// app is visible in one place.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/phonix/internal/screen"
)

// ScreenID identifies each screen of the app.
type ScreenID int

const (
	Login ScreenID = iota
	Home
	Stages
	Lesson
	Games
	Game
	Progress
)

func (id ScreenID) String() string {
	switch id {
	case Login:
		return "login"
	case Home:
		return "home"
	case Stages:
		return "stages"
	case Lesson:
		return "lesson"
	case Games:
		return "games"
	case Game:
		return "game"
	case Progress:
		return "progress"
	}
	return "unknown"
}

// parents is the full navigation map. A screen absent from the table
// (Login) is a root: back is a no-op there. Back from Home returns to
// the profile picker; the active profile stays selected.
var parents = map[ScreenID]ScreenID{
	Home:     Login,
	Stages:   Home,
	Lesson:   Stages,
	Games:    Home,
	Game:     Games,
	Progress: Home,
}

// NavigateMsg requests a jump to the given screen.
type NavigateMsg struct {
	To ScreenID
}

// BackMsg requests a move to the current screen's parent.
type BackMsg struct{}

// Navigate returns a command that jumps to the given screen.
func Navigate(to ScreenID) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{To: to} }
}

// Back returns a command that moves to the current screen's parent.
func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

// Factory builds a fresh screen model for an id. Screens are rebuilt on
// every entry so they always render from current progress state.
type Factory func(id ScreenID) screen.Screen

// Router tracks the active screen and applies the transition table.
type Router struct {
	factory Factory
	current ScreenID
	active  screen.Screen
}

// New creates a Router showing the initial screen.
func New(initial ScreenID, factory Factory) *Router {
	return &Router{
		factory: factory,
		current: initial,
		active:  factory(initial),
	}
}

// Current returns the active screen's id.
func (r *Router) Current() ScreenID {
	return r.current
}

// Active returns the active screen model.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Navigate switches to the given screen and calls its Init.
func (r *Router) Navigate(to ScreenID) tea.Cmd {
	r.current = to
	r.active = r.factory(to)
	return r.active.Init()
}

// Back moves to the current screen's parent. No-op at a root screen.
func (r *Router) Back() tea.Cmd {
	parent, ok := parents[r.current]
	if !ok {
		return nil
	}
	return r.Navigate(parent)
}

// Update handles navigation messages and forwards everything else to
// the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NavigateMsg:
		return r.Navigate(msg.To)
	case BackMsg:
		return r.Back()
	}

	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.active.View(width, height)
}
