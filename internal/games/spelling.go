package games

import (
	"math/rand/v2"
	"strings"

	"github.com/abhisek/phonix/internal/content"
)

// SpellingQuestion asks the learner to rebuild a word from a shuffled
// letter bank. The bank holds the word's letters plus three decoys.
type SpellingQuestion struct {
	Word content.CVCWord
	Bank []string
}

const (
	spellingQuestions = 8
	spellingDecoys    = 3
)

// NewSpellingRound picks eight random consonant-vowel-consonant words
// and builds a letter bank for each.
func NewSpellingRound(r *rand.Rand) []SpellingQuestion {
	words := content.AllCVCWords()
	order := r.Perm(len(words))

	qs := make([]SpellingQuestion, 0, spellingQuestions)
	for _, idx := range order[:spellingQuestions] {
		w := words[idx]
		qs = append(qs, SpellingQuestion{
			Word: w,
			Bank: shuffled(r, append(append([]string{}, w.Phonemes...), spellingBankDecoys(r, w)...)),
		})
	}
	return qs
}

// CheckSpelling reports whether the selected letters, in order, spell
// the target word.
func CheckSpelling(q SpellingQuestion, selected []string) bool {
	return strings.Join(selected, "") == q.Word.Word
}

// spellingBankDecoys returns three lowercase letters not already in the
// word.
func spellingBankDecoys(r *rand.Rand, w content.CVCWord) []string {
	used := make(map[string]bool, len(w.Phonemes))
	for _, p := range w.Phonemes {
		used[p] = true
	}
	pool := make([]string, 0, 26)
	for c := 'a'; c <= 'z'; c++ {
		if l := string(c); !used[l] {
			pool = append(pool, l)
		}
	}
	r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:spellingDecoys]
}
