package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for lesson and game
// cards. All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for the outer border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// WordCard wraps lesson content in a rounded-border card at the given
// content width, centered like a flashcard.
func WordCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ChoiceButton renders one selectable answer. The selected choice is
// highlighted in the accent color.
func ChoiceButton(label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Star).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Star).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}
