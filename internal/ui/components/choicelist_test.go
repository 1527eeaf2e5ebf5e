package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestChoiceListCursorMovesAndClamps(t *testing.T) {
	c := NewChoiceList([]string{"a", "b", "c"})

	c = c.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if c.Cursor != 0 {
		t.Errorf("up at top: cursor = %d, want 0", c.Cursor)
	}

	c = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	c = c.Update(tea.KeyPressMsg{Code: 'j'})
	if got := c.Choice(); got != "c" {
		t.Errorf("after two downs: choice = %q, want %q", got, "c")
	}

	c = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if c.Cursor != 2 {
		t.Errorf("down at bottom: cursor = %d, want 2", c.Cursor)
	}

	c = c.Update(tea.KeyPressMsg{Code: 'k'})
	if got := c.Choice(); got != "b" {
		t.Errorf("after up: choice = %q, want %q", got, "b")
	}
}

func TestChoiceListIgnoresOtherMessages(t *testing.T) {
	c := NewChoiceList([]string{"a", "b"})
	c = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	c = c.Update("not a key")
	c = c.Update(tea.KeyPressMsg{Code: 'x'})
	if c.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", c.Cursor)
	}
}

func TestChoiceListViewHighlightsCursorRow(t *testing.T) {
	c := NewChoiceList([]string{"cat", "dog"})
	c = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	view := c.View(20)
	if n := strings.Count(view, "▸"); n != 1 {
		t.Errorf("view marks %d rows, want 1", n)
	}
	lines := strings.Split(view, "\n")
	var catLine, dogLine int
	for i, line := range lines {
		if strings.Contains(line, "cat") {
			catLine = i
		}
		if strings.Contains(line, "dog") {
			dogLine = i
		}
	}
	if catLine >= dogLine {
		t.Errorf("options out of order: cat at %d, dog at %d", catLine, dogLine)
	}
}
