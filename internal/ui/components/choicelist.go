package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// ChoiceList is the shared answer picker for the mini-games: a vertical
// stack of ChoiceButtons driven by the arrow (or j/k) keys. Submitting
// is left to the caller, since every game reacts to an answer
// differently.
type ChoiceList struct {
	Options []string
	Cursor  int
}

// NewChoiceList creates a picker over the given options with the
// cursor on the first one.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{Options: options}
}

// Update moves the cursor on key messages and ignores everything else.
func (c ChoiceList) Update(msg tea.Msg) ChoiceList {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c
	}
	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	}
	return c
}

// Choice returns the option under the cursor.
func (c ChoiceList) Choice() string {
	return c.Options[c.Cursor]
}

// View renders the stacked choice buttons at the given button width.
func (c ChoiceList) View(width int) string {
	rows := make([]string, len(c.Options))
	for i, o := range c.Options {
		rows[i] = ChoiceButton(o, i == c.Cursor, width)
	}
	return strings.Join(rows, "\n")
}
