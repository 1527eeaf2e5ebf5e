package games

import "math/rand/v2"

// Card is one face-down card in the Card Flip deck. Cards come in
// pairs: a word card and an emoji card sharing a Pair id.
type Card struct {
	Pair    int
	IsWord  bool
	Content string
}

const matchingPairs = 6

// NewMatchingDeck deals a shuffled deck of six word/picture pairs drawn
// from the first six alphabet lessons.
func NewMatchingDeck(r *rand.Rand) []Card {
	src := alphabetLessons()[:matchingPairs]

	deck := make([]Card, 0, 2*matchingPairs)
	for i, l := range src {
		w := l.Words[0]
		deck = append(deck,
			Card{Pair: i, IsWord: true, Content: w.Word},
			Card{Pair: i, IsWord: false, Content: w.Emoji},
		)
	}
	r.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}
