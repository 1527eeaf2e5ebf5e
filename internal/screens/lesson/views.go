package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/content"
	"github.com/abhisek/phonix/internal/ui/components"
	"github.com/abhisek/phonix/internal/ui/theme"
)

var bigStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

func (l *LessonScreen) alphabetCard(a content.AlphabetLesson, cw int) string {
	head := bigStyle.Render(fmt.Sprintf("%s %s", a.Letter, strings.ToLower(a.Letter))) +
		"\n" + theme.Subtitle.Render(a.Sound)

	var rows []string
	for i, w := range a.Words {
		line := fmt.Sprintf("%s %s", w.Emoji, w.Word)
		if i == l.word {
			line = theme.Selected.Render("▸ " + line)
		} else {
			line = theme.Unselected.Render("  " + line)
		}
		rows = append(rows, line)
	}

	return components.WordCard(head+"\n\n"+strings.Join(rows, "\n"), cw)
}

func (l *LessonScreen) cvcCard(c content.CVCLesson, cw int) string {
	head := theme.Subtitle.Render(fmt.Sprintf("short %q words", c.Vowel))
	w := c.Words[l.word]

	// Build slots fill as letters are picked.
	slots := make([]string, len(w.Phonemes))
	for i := range w.Phonemes {
		if i < len(l.picked) {
			slots[i] = theme.Correct.Render("[" + l.bank[l.picked[i]] + "]")
		} else {
			slots[i] = theme.Hint.Render("[_]")
		}
	}

	// Letter bank, picked letters dimmed, digits as pick keys.
	bank := make([]string, len(l.bank))
	for i, letter := range l.bank {
		label := fmt.Sprintf("%d:%s", i+1, letter)
		if l.pickedBank(i) {
			bank[i] = theme.Hint.Render(label)
		} else {
			bank[i] = theme.Body.Render(label)
		}
	}

	build := bigStyle.Render(w.Emoji) + "\n\n" +
		strings.Join(slots, " ") + "\n" +
		theme.Subtitle.Render(strings.Join(bank, "  "))
	if l.flash != "" {
		style := theme.Correct
		if !l.solved {
			style = theme.Incorrect
		}
		build += "\n" + style.Render(l.flash)
	}

	var rows []string
	for i, word := range c.Words {
		line := fmt.Sprintf("%s %s", word.Emoji, word.Word)
		if i == l.word {
			line = theme.Selected.Render("▸ " + line)
		} else {
			line = theme.Unselected.Render("  " + line)
		}
		rows = append(rows, line)
	}

	return components.WordCard(head+"\n\n"+build+"\n\n"+strings.Join(rows, "\n"), cw)
}

// pickedBank reports whether bank slot i is already used.
func (l *LessonScreen) pickedBank(i int) bool {
	for _, p := range l.picked {
		if p == i {
			return true
		}
	}
	return false
}

func (l *LessonScreen) patternCard(p content.PatternLesson, cw int) string {
	head := bigStyle.Render(p.Pattern) + "\n" + theme.Subtitle.Render(p.Sound)

	if p.ShortWord != "" {
		head += "\n" + theme.Body.Render(p.ShortWord) +
			theme.Hint.Render(" → ") +
			theme.Correct.Render(p.LongWord)
	}

	var rows []string
	for i, w := range p.Words {
		line := fmt.Sprintf("%s %s", w.Emoji, w.Word)
		if i == l.word {
			line = theme.Selected.Render("▸ " + line)
		} else {
			line = theme.Unselected.Render("  " + line)
		}
		rows = append(rows, line)
	}

	return components.WordCard(head+"\n\n"+strings.Join(rows, "\n"), cw)
}

func (l *LessonScreen) sightCard(s content.SightLesson, cw int) string {
	head := theme.Subtitle.Render(s.Level + " sight words")

	var rows []string
	for i, w := range s.Words {
		if i == l.word {
			rows = append(rows,
				theme.Selected.Render("▸ "+w.Word),
				theme.Hint.Render("    "+w.Sentence))
		} else {
			rows = append(rows, theme.Unselected.Render("  "+w.Word))
		}
	}

	return components.WordCard(head+"\n\n"+strings.Join(rows, "\n"), cw)
}

func (l *LessonScreen) sentenceCard(s content.SentenceLesson, cw int) string {
	head := theme.Subtitle.Render(s.Level + " sentences")

	var rows []string
	for i, sen := range s.Sentences {
		line := fmt.Sprintf("%s %s", sen.Emoji, sen.Text)
		if i == l.word {
			line = theme.Selected.Render("▸ " + line)
			rows = append(rows, line,
				theme.Hint.Render("    "+strings.Join(sen.Chunks, " / ")))
		} else {
			rows = append(rows, theme.Unselected.Render("  "+line))
		}
	}

	return components.WordCard(head+"\n\n"+strings.Join(rows, "\n"), cw)
}
