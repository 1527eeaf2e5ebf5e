// Package report shows the active learner's star count, level badge, and
// per-stage completion bars.
package report

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/content"
	"github.com/abhisek/phonix/internal/progress"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/session"
	"github.com/abhisek/phonix/internal/ui/components"
	"github.com/abhisek/phonix/internal/ui/layout"
	"github.com/abhisek/phonix/internal/ui/theme"
)

// ReportScreen is the read-only progress overview.
type ReportScreen struct {
	sess *session.Session
}

var _ screen.Screen = (*ReportScreen)(nil)

// New creates a ReportScreen.
func New(sess *session.Session) *ReportScreen {
	return &ReportScreen{sess: sess}
}

func (r *ReportScreen) Title() string { return "My Progress" }

func (r *ReportScreen) Init() tea.Cmd { return nil }

func (r *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return r, nil
}

func (r *ReportScreen) View(width, height int) string {
	active := r.sess.Progress.Active()
	if active == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("no learner selected"))
	}

	cw := components.ContentWidth(width)
	lvl := r.sess.Progress.Level()

	head := theme.Title.Render(fmt.Sprintf("%s  %s", lvl.Badge, active.Name)) + "\n" +
		theme.Subtitle.Render(lvl.Name) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Star).Bold(true).
			Render(fmt.Sprintf("⭐ %d stars", active.Stars)) + "\n" +
		theme.Hint.Render(fmt.Sprintf("%d lessons completed", len(active.CompletedLessons)))

	var rows []string
	for _, st := range content.Stages() {
		sp := r.sess.Progress.StageProgress(st.ID, st.LessonCount())
		var pct float64
		if sp.Total > 0 {
			pct = float64(sp.Completed) / float64(sp.Total)
		}
		bar := components.NewProgressBar("", pct, false, cw/2).View()
		rows = append(rows, fmt.Sprintf("%s %-22s %s %s",
			st.Icon, st.Title, bar,
			theme.Hint.Render(fmt.Sprintf("%d/%d", sp.Completed, sp.Total))))
	}

	body := components.WordCard(head, cw) + "\n" +
		strings.Join(rows, "\n") + "\n\n" +
		r.nextLevelLine(lvl, len(active.CompletedLessons))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// nextLevelLine shows how many more lessons unlock the next badge.
func (r *ReportScreen) nextLevelLine(lvl progress.Level, count int) string {
	for _, l := range progress.Levels() {
		if l.Min > count {
			return theme.Subtitle.Render(fmt.Sprintf(
				"%d more lessons to become %s %s", l.Min-count, l.Name, l.Badge))
		}
	}
	return theme.Subtitle.Render("You reached the top level! 👑")
}

// KeyHints implements screen.KeyHintProvider.
func (r *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}
