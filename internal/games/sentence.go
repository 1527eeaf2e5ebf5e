package games

import (
	"math/rand/v2"
	"strings"

	"github.com/abhisek/phonix/internal/content"
)

// SentenceQuestion is a fill-in-the-blank over one practice sentence.
// BlankIndex is the position of the hidden word in the space-split
// sentence.
type SentenceQuestion struct {
	Text       string
	Emoji      string
	BlankIndex int
	Answer     string // the hidden word as written, punctuation included
	Options    []string
}

const sentenceQuestions = 6

// sentenceDecoys is the fixed pool the two wrong options are drawn
// from. All are words the learner has met in earlier stages.
var sentenceDecoys = []string{"cat", "big", "run", "see", "the", "red", "hot", "fun"}

// NewSentenceRound blanks one word out of each practice sentence, adds
// two decoy options, then keeps six random questions.
func NewSentenceRound(r *rand.Rand) []SentenceQuestion {
	var qs []SentenceQuestion
	for _, s := range content.AllSentences() {
		words := strings.Fields(s.Text)
		if len(words) < 3 {
			continue
		}

		// Any word but the first can be blanked, as long as it has
		// some substance once punctuation is stripped.
		var candidates []int
		for i := 1; i < len(words); i++ {
			if len(stripPunct(words[i])) > 1 {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		blank := candidates[r.IntN(len(candidates))]
		answer := words[blank]
		clean := strings.ToLower(stripPunct(answer))

		var pool []string
		for _, d := range sentenceDecoys {
			if d != clean {
				pool = append(pool, d)
			}
		}
		decoys := shuffled(r, pool)[:2]

		qs = append(qs, SentenceQuestion{
			Text:       s.Text,
			Emoji:      s.Emoji,
			BlankIndex: blank,
			Answer:     answer,
			Options:    shuffled(r, append([]string{answer}, decoys...)),
		})
	}

	r.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
	if len(qs) > sentenceQuestions {
		qs = qs[:sentenceQuestions]
	}
	return qs
}

func stripPunct(w string) string {
	var b strings.Builder
	for _, c := range w {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			b.WriteRune(c)
		}
	}
	return b.String()
}
