package games

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func containsString(items []string, want string) bool {
	for _, s := range items {
		if s == want {
			return true
		}
	}
	return false
}

func TestNewAlphabetQuiz(t *testing.T) {
	qs := NewAlphabetQuiz(testRand())
	if len(qs) != quizQuestions {
		t.Fatalf("questions = %d, want %d", len(qs), quizQuestions)
	}

	seen := map[string]bool{}
	for _, q := range qs {
		if seen[q.Letter] {
			t.Errorf("letter %q asked twice", q.Letter)
		}
		seen[q.Letter] = true

		if q.Sound == "" {
			t.Errorf("question %q has no sound notation", q.Letter)
		}
		if len(q.Options) != letterOptions {
			t.Fatalf("question %q has %d options, want %d", q.Letter, len(q.Options), letterOptions)
		}
		if !containsString(q.Options, q.Letter) {
			t.Errorf("options %v missing answer %q", q.Options, q.Letter)
		}
		opts := map[string]bool{}
		for _, o := range q.Options {
			if opts[o] {
				t.Errorf("question %q has duplicate option %q", q.Letter, o)
			}
			opts[o] = true
		}
	}
}

func TestNewListeningRound(t *testing.T) {
	qs := NewListeningRound(testRand())
	if len(qs) != listeningQuestions {
		t.Fatalf("questions = %d, want %d", len(qs), listeningQuestions)
	}

	// Sound Search walks the curriculum in order from A.
	for i, q := range qs {
		want := string(rune('A' + i))
		if q.Letter != want {
			t.Errorf("question %d letter = %q, want %q", i, q.Letter, want)
		}
		if len(q.Options) != letterOptions || !containsString(q.Options, q.Letter) {
			t.Errorf("question %d options %v must include %q", i, q.Options, q.Letter)
		}
	}
}

func TestNewMatchingDeck(t *testing.T) {
	deck := NewMatchingDeck(testRand())
	if len(deck) != 2*matchingPairs {
		t.Fatalf("deck size = %d, want %d", len(deck), 2*matchingPairs)
	}

	words := map[int]int{}
	emojis := map[int]int{}
	for _, c := range deck {
		if c.Content == "" {
			t.Errorf("card %+v has empty content", c)
		}
		if c.IsWord {
			words[c.Pair]++
		} else {
			emojis[c.Pair]++
		}
	}
	for pair := 0; pair < matchingPairs; pair++ {
		if words[pair] != 1 || emojis[pair] != 1 {
			t.Errorf("pair %d has %d word and %d emoji cards, want 1 and 1",
				pair, words[pair], emojis[pair])
		}
	}
}

func TestNewSpellingRound(t *testing.T) {
	qs := NewSpellingRound(testRand())
	if len(qs) != spellingQuestions {
		t.Fatalf("questions = %d, want %d", len(qs), spellingQuestions)
	}

	for _, q := range qs {
		if got := len(q.Bank); got != len(q.Word.Phonemes)+spellingDecoys {
			t.Errorf("%q bank size = %d, want %d", q.Word.Word, got, len(q.Word.Phonemes)+spellingDecoys)
		}
		// Picking the word's own letters in order must always win.
		if !CheckSpelling(q, q.Word.Phonemes) {
			t.Errorf("%q not spellable from its own letters %v", q.Word.Word, q.Word.Phonemes)
		}
		for _, p := range q.Word.Phonemes {
			if !containsString(q.Bank, p) {
				t.Errorf("%q bank %v missing letter %q", q.Word.Word, q.Bank, p)
			}
		}
	}
}

func TestCheckSpelling(t *testing.T) {
	qs := NewSpellingRound(testRand())
	q := qs[0]

	if CheckSpelling(q, nil) {
		t.Error("empty selection should not spell anything")
	}
	wrong := append([]string{"z"}, q.Word.Phonemes[1:]...)
	if CheckSpelling(q, wrong) {
		t.Errorf("selection %v should not spell %q", wrong, q.Word.Word)
	}
}

func TestNewSentenceRound(t *testing.T) {
	qs := NewSentenceRound(testRand())
	if len(qs) != sentenceQuestions {
		t.Fatalf("questions = %d, want %d", len(qs), sentenceQuestions)
	}

	for _, q := range qs {
		words := strings.Fields(q.Text)
		if q.BlankIndex <= 0 || q.BlankIndex >= len(words) {
			t.Errorf("blank index %d out of range for %q", q.BlankIndex, q.Text)
			continue
		}
		if words[q.BlankIndex] != q.Answer {
			t.Errorf("answer %q does not match word %q at blank", q.Answer, words[q.BlankIndex])
		}
		if len(q.Options) != 3 {
			t.Errorf("%q has %d options, want 3", q.Text, len(q.Options))
		}
		if !containsString(q.Options, q.Answer) {
			t.Errorf("options %v missing answer %q", q.Options, q.Answer)
		}
	}
}

func TestGeneratorsDeterministicPerSeed(t *testing.T) {
	a := NewAlphabetQuiz(rand.New(rand.NewPCG(1, 2)))
	b := NewAlphabetQuiz(rand.New(rand.NewPCG(1, 2)))
	for i := range a {
		if a[i].Letter != b[i].Letter {
			t.Fatalf("question %d differs across identical seeds: %q vs %q", i, a[i].Letter, b[i].Letter)
		}
		for j := range a[i].Options {
			if a[i].Options[j] != b[i].Options[j] {
				t.Fatalf("options differ across identical seeds")
			}
		}
	}
}

func TestAllGamesMenu(t *testing.T) {
	infos := All()
	if len(infos) != 5 {
		t.Fatalf("games = %d, want 5", len(infos))
	}
	ids := map[ID]bool{}
	for _, g := range infos {
		if g.Title == "" || g.Icon == "" || g.Description == "" {
			t.Errorf("game %v has empty display fields", g.ID)
		}
		if ids[g.ID] {
			t.Errorf("duplicate game id %v", g.ID)
		}
		ids[g.ID] = true
	}
}
