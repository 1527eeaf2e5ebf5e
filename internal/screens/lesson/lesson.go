// Package lesson renders one lesson of the open stage and wires the
// speak keys. Every stage kind gets its own card layout but shares the
// navigation and completion flow.
package lesson

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/content"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/session"
	"github.com/abhisek/phonix/internal/speech"
	"github.com/abhisek/phonix/internal/ui/components"
	"github.com/abhisek/phonix/internal/ui/layout"
	"github.com/abhisek/phonix/internal/ui/theme"
)

// LessonScreen shows the lesson at the session cursor.
type LessonScreen struct {
	sess  *session.Session
	stage content.Stage

	// word is the cursor into the lesson's word/sentence list for the
	// kinds that have one.
	word    int
	awarded int // stars banner after a first completion

	// CVC word-builder state: a shuffled letter bank for the selected
	// word and the letters picked so far.
	bank   []string
	picked []int
	solved bool
	flash  string
}

var _ screen.Screen = (*LessonScreen)(nil)

// New creates a LessonScreen for the session's open stage.
func New(sess *session.Session) *LessonScreen {
	stage, _ := content.StageByID(sess.StageID)
	l := &LessonScreen{sess: sess, stage: stage}
	l.resetBuild()
	return l
}

// resetBuild reshuffles the letter bank for the selected CVC word.
func (l *LessonScreen) resetBuild() {
	l.picked = nil
	l.solved = false
	l.flash = ""
	l.bank = nil
	if l.stage.Kind != content.KindCVC {
		return
	}
	w := l.stage.CVC[l.sess.LessonIndex].Words[l.word]
	l.bank = append([]string(nil), w.Phonemes...)
	rand.Shuffle(len(l.bank), func(i, j int) { l.bank[i], l.bank[j] = l.bank[j], l.bank[i] })
}

func (l *LessonScreen) Title() string {
	return fmt.Sprintf("%s %s · %d/%d",
		l.stage.Icon, l.stage.Title, l.sess.LessonIndex+1, l.stage.LessonCount())
}

func (l *LessonScreen) Init() tea.Cmd { return nil }

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if l.sess.LessonIndex > 0 {
			l.sess.LessonIndex--
			l.word = 0
			l.awarded = 0
			l.resetBuild()
		}
	case "right", "l":
		if l.sess.LessonIndex < l.stage.LessonCount()-1 {
			l.sess.LessonIndex++
			l.word = 0
			l.awarded = 0
			l.resetBuild()
		}
	case "up", "k":
		if l.word > 0 {
			l.word--
			l.resetBuild()
		}
	case "down", "j":
		if l.word < l.wordCount()-1 {
			l.word++
			l.resetBuild()
		}
	case "1", "2", "3", "4":
		l.pickLetter(int(kmsg.String()[0] - '1'))
	case "backspace":
		if l.stage.Kind == content.KindCVC && !l.solved {
			l.picked = nil
			l.flash = ""
		}
	case "enter":
		l.awarded = l.sess.CompleteLesson()
		l.sess.Speech.SpeakText("Great job!", speech.Options{})
	case "s":
		l.speakSound()
	case "w":
		l.speakWord()
	case "t":
		l.speakTeaching()
	}

	return l, nil
}

// wordCount is the size of the selectable list for the current lesson.
func (l *LessonScreen) wordCount() int {
	i := l.sess.LessonIndex
	switch l.stage.Kind {
	case content.KindAlphabet:
		return len(l.stage.Alphabet[i].Words)
	case content.KindCVC:
		return len(l.stage.CVC[i].Words)
	case content.KindBlend, content.KindLongVowel, content.KindRule:
		return len(l.stage.Patterns[i].Words)
	case content.KindSightWords:
		return len(l.stage.SightWords[i].Words)
	case content.KindSentences:
		return len(l.stage.Sentences[i].Sentences)
	}
	return 0
}

// pickLetter takes the nth bank letter into the build area, speaking
// its sound. A finished build either earns the answer reward or clears
// for another try.
func (l *LessonScreen) pickLetter(n int) {
	if l.stage.Kind != content.KindCVC || l.solved {
		return
	}
	if n < 0 || n >= len(l.bank) || len(l.picked) >= len(l.bank) {
		return
	}
	for _, p := range l.picked {
		if p == n {
			return
		}
	}

	l.picked = append(l.picked, n)
	l.sess.Speech.SpeakPhoneme(l.bank[n], nil)
	if len(l.picked) < len(l.bank) {
		return
	}

	var built strings.Builder
	for _, p := range l.picked {
		built.WriteString(l.bank[p])
	}
	w := l.stage.CVC[l.sess.LessonIndex].Words[l.word]
	if built.String() == w.Word {
		l.solved = true
		award := l.sess.RewardAnswer()
		l.flash = fmt.Sprintf("🎉 You built it! +%d ⭐", award)
		l.sess.Speech.SpeakWord(w.Word, nil)
		return
	}
	l.picked = nil
	l.flash = "😅 Try again!"
}

// speakSound plays the lesson's isolated sound: a letter phoneme, a
// word sounded out phoneme by phoneme, or a sentence read in chunks.
func (l *LessonScreen) speakSound() {
	i := l.sess.LessonIndex
	switch l.stage.Kind {
	case content.KindAlphabet:
		l.sess.Speech.SpeakPhoneme(l.stage.Alphabet[i].Letter, nil)
	case content.KindCVC:
		w := l.stage.CVC[i].Words[l.word]
		l.sess.Speech.SpeakText(strings.Join(w.Phonemes, ". "), speech.Options{Rate: 0.6})
	case content.KindBlend, content.KindLongVowel, content.KindRule:
		p := l.stage.Patterns[i]
		if p.ShortWord != "" {
			l.sess.Speech.SpeakText(p.ShortWord+". "+p.LongWord+".", speech.Options{Rate: 0.7})
			return
		}
		l.sess.Speech.SpeakText(p.Sound, speech.Options{Rate: 0.7})
	case content.KindSightWords:
		l.sess.Speech.SpeakSentence(l.stage.SightWords[i].Words[l.word].Sentence, nil)
	case content.KindSentences:
		s := l.stage.Sentences[i].Sentences[l.word]
		l.sess.Speech.SpeakText(strings.Join(s.Chunks, ", "), speech.Options{Rate: 0.7})
	}
}

// speakWord pronounces the selected word or sentence at learning pace.
func (l *LessonScreen) speakWord() {
	i := l.sess.LessonIndex
	switch l.stage.Kind {
	case content.KindAlphabet:
		l.sess.Speech.SpeakWord(l.stage.Alphabet[i].Words[l.word].Word, nil)
	case content.KindCVC:
		l.sess.Speech.SpeakWord(l.stage.CVC[i].Words[l.word].Word, nil)
	case content.KindBlend, content.KindLongVowel, content.KindRule:
		l.sess.Speech.SpeakWord(l.stage.Patterns[i].Words[l.word].Word, nil)
	case content.KindSightWords:
		l.sess.Speech.SpeakWord(l.stage.SightWords[i].Words[l.word].Word, nil)
	case content.KindSentences:
		l.sess.Speech.SpeakSentence(l.stage.Sentences[i].Sentences[l.word].Text, nil)
	}
}

// speakTeaching reads the alphabet teaching phrase (three example
// words, slowly). Other kinds re-read the lesson's words in order.
func (l *LessonScreen) speakTeaching() {
	i := l.sess.LessonIndex
	switch l.stage.Kind {
	case content.KindAlphabet:
		phrase := content.TeachingPhrase(l.stage.Alphabet[i].Letter)
		l.sess.Speech.SpeakText(phrase, speech.Options{Rate: 0.7})
	case content.KindCVC:
		var words []string
		for _, w := range l.stage.CVC[i].Words {
			words = append(words, w.Word)
		}
		l.sess.Speech.SpeakText(strings.Join(words, ". ")+".", speech.Options{Rate: 0.7})
	case content.KindBlend, content.KindLongVowel, content.KindRule:
		var words []string
		for _, w := range l.stage.Patterns[i].Words {
			words = append(words, w.Word)
		}
		l.sess.Speech.SpeakText(strings.Join(words, ". ")+".", speech.Options{Rate: 0.7})
	}
}

func (l *LessonScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	i := l.sess.LessonIndex

	var card string
	switch l.stage.Kind {
	case content.KindAlphabet:
		card = l.alphabetCard(l.stage.Alphabet[i], cw)
	case content.KindCVC:
		card = l.cvcCard(l.stage.CVC[i], cw)
	case content.KindBlend, content.KindLongVowel, content.KindRule:
		card = l.patternCard(l.stage.Patterns[i], cw)
	case content.KindSightWords:
		card = l.sightCard(l.stage.SightWords[i], cw)
	case content.KindSentences:
		card = l.sentenceCard(l.stage.Sentences[i], cw)
	}

	var footer string
	switch {
	case l.awarded > 0:
		footer = theme.Correct.Render(fmt.Sprintf("⭐ +%d stars! Great job!", l.awarded))
	case l.sess.Progress.IsLessonComplete(l.sess.StageID, i):
		footer = theme.Hint.Render("✓ already completed")
	default:
		footer = theme.Hint.Render("press Enter when you can read it")
	}

	body := card + "\n\n" + footer
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// KeyHints implements screen.KeyHintProvider.
func (l *LessonScreen) KeyHints() []layout.KeyHint {
	if l.stage.Kind == content.KindCVC {
		return []layout.KeyHint{
			{Key: "1-4", Description: "Build"},
			{Key: "Bksp", Description: "Clear"},
			{Key: "↑↓", Description: "Word"},
			{Key: "←→", Description: "Lesson"},
			{Key: "Enter", Description: "Done!"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Lesson"},
		{Key: "↑↓", Description: "Word"},
		{Key: "S", Description: "Sound"},
		{Key: "W", Description: "Say it"},
		{Key: "Enter", Description: "Done!"},
		{Key: "Esc", Description: "Back"},
	}
}
