package content

import (
	"strings"
	"testing"
)

func TestStagesOrderedAndComplete(t *testing.T) {
	stages := Stages()
	if len(stages) != 7 {
		t.Fatalf("stages = %d, want 7", len(stages))
	}
	for i, s := range stages {
		if s.ID != i+1 {
			t.Errorf("stage %d has ID %d, want %d", i, s.ID, i+1)
		}
		if s.Title == "" || s.Icon == "" || s.Description == "" {
			t.Errorf("stage %d missing display fields: %+v", s.ID, s)
		}
		if s.LessonCount() == 0 {
			t.Errorf("stage %d has no lessons", s.ID)
		}
	}
}

func TestStageByID(t *testing.T) {
	if s, ok := StageByID(1); !ok || s.Kind != KindAlphabet {
		t.Errorf("StageByID(1) = %+v, %v; want alphabet stage", s, ok)
	}
	if _, ok := StageByID(0); ok {
		t.Error("StageByID(0) should report missing")
	}
	if _, ok := StageByID(8); ok {
		t.Error("StageByID(8) should report missing")
	}
}

func TestAlphabetCoversAtoZ(t *testing.T) {
	stage, _ := StageByID(1)
	if len(stage.Alphabet) != 26 {
		t.Fatalf("alphabet lessons = %d, want 26", len(stage.Alphabet))
	}
	for i, l := range stage.Alphabet {
		want := string(rune('A' + i))
		if l.Letter != want {
			t.Errorf("lesson %d letter = %q, want %q", i, l.Letter, want)
		}
		if !strings.HasPrefix(l.Sound, "/") || !strings.HasSuffix(l.Sound, "/") {
			t.Errorf("%s sound = %q, want /.../ notation", l.Letter, l.Sound)
		}
		if len(l.Words) != 3 {
			t.Errorf("%s has %d example words, want 3", l.Letter, len(l.Words))
		}
		for _, w := range l.Words {
			if w.Word == "" || w.Emoji == "" {
				t.Errorf("%s has incomplete word card %+v", l.Letter, w)
			}
		}
		if TeachingPhrase(l.Letter) == "" {
			t.Errorf("no teaching phrase for %s", l.Letter)
		}
	}
}

func TestCVCWordsRejoinFromPhonemes(t *testing.T) {
	for _, w := range AllCVCWords() {
		if got := strings.Join(w.Phonemes, ""); got != w.Word {
			t.Errorf("phonemes %v join to %q, want %q", w.Phonemes, got, w.Word)
		}
		if w.Emoji == "" {
			t.Errorf("%q has no emoji", w.Word)
		}
	}
}

func TestCVCLessonsOnePerVowel(t *testing.T) {
	stage, _ := StageByID(2)
	vowels := []string{"a", "e", "i", "o", "u"}
	if len(stage.CVC) != len(vowels) {
		t.Fatalf("cvc lessons = %d, want %d", len(stage.CVC), len(vowels))
	}
	for i, l := range stage.CVC {
		if l.Vowel != vowels[i] {
			t.Errorf("lesson %d vowel = %q, want %q", i, l.Vowel, vowels[i])
		}
		for _, w := range l.Words {
			if !strings.Contains(w.Word, l.Vowel) {
				t.Errorf("%q filed under vowel %q it does not contain", w.Word, l.Vowel)
			}
		}
	}
}

func TestPatternLessonsWellFormed(t *testing.T) {
	for _, id := range []int{3, 4, 5} {
		stage, _ := StageByID(id)
		for _, l := range stage.Patterns {
			if l.Pattern == "" || l.Sound == "" {
				t.Errorf("stage %d lesson %+v missing pattern or sound", id, l)
			}
			if len(l.Words) == 0 {
				t.Errorf("stage %d pattern %q has no words", id, l.Pattern)
			}
		}
	}

	// Magic-E lessons carry the short/long contrast pair.
	stage, _ := StageByID(4)
	for _, l := range stage.Patterns {
		if l.ShortWord == "" || l.LongWord == "" {
			t.Errorf("long-vowel pattern %q missing contrast pair", l.Pattern)
		}
	}
}

func TestSightWordsHaveExampleSentences(t *testing.T) {
	stage, _ := StageByID(6)
	for _, lesson := range stage.SightWords {
		for _, w := range lesson.Words {
			if w.Sentence == "" {
				t.Errorf("sight word %q has no example sentence", w.Word)
			}
			if !strings.Contains(strings.ToLower(w.Sentence), strings.ToLower(w.Word)) {
				t.Errorf("sentence %q does not use sight word %q", w.Sentence, w.Word)
			}
		}
	}
}

func TestSentencesChunked(t *testing.T) {
	for _, s := range AllSentences() {
		if len(s.Chunks) == 0 {
			t.Errorf("sentence %q has no reading chunks", s.Text)
		}
		joined := strings.Join(s.Chunks, " ")
		if joined != s.Text {
			t.Errorf("chunks %v rejoin to %q, want %q", s.Chunks, joined, s.Text)
		}
	}
}

func TestLessonCountsMatchLessonSlices(t *testing.T) {
	for _, s := range Stages() {
		var want int
		switch s.Kind {
		case KindAlphabet:
			want = len(s.Alphabet)
		case KindCVC:
			want = len(s.CVC)
		case KindBlend, KindLongVowel, KindRule:
			want = len(s.Patterns)
		case KindSightWords:
			want = len(s.SightWords)
		case KindSentences:
			want = len(s.Sentences)
		}
		if got := s.LessonCount(); got != want {
			t.Errorf("stage %d LessonCount = %d, want %d", s.ID, got, want)
		}
	}
}
