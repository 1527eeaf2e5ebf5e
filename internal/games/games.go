// Package games generates the question sets for the five review
// mini-games. Generators are pure: all randomness comes through the
// caller's *rand.Rand, so rounds are reproducible under test. Screens
// own presentation, scoring, and star rewards.
package games

import (
	"math/rand/v2"

	"github.com/abhisek/phonix/internal/content"
)

// ID identifies one mini-game.
type ID int

const (
	AlphabetQuiz ID = iota
	Listening
	Matching
	Spelling
	Sentence
)

// Info describes a game for the games menu.
type Info struct {
	ID          ID
	Title       string
	Icon        string
	Description string
}

var allGames = []Info{
	{AlphabetQuiz, "Letter Hunt", "🔤", "Find the letter that makes the sound"},
	{Listening, "Sound Search", "👂", "Listen and pick the right letter"},
	{Matching, "Card Flip", "🎴", "Match words with their pictures"},
	{Spelling, "Word Builder", "🧩", "Build words letter by letter"},
	{Sentence, "Sentence Fix", "📝", "Fill in the missing word"},
}

// All returns the games menu entries in display order.
func All() []Info {
	return allGames
}

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// decoyLetters returns n distinct uppercase letters, none equal to
// exclude.
func decoyLetters(r *rand.Rand, exclude string, n int) []string {
	pool := make([]string, 0, len(alphabet)-1)
	for _, c := range alphabet {
		if l := string(c); l != exclude {
			pool = append(pool, l)
		}
	}
	r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:n]
}

func shuffled(r *rand.Rand, items []string) []string {
	out := append([]string(nil), items...)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func alphabetLessons() []content.AlphabetLesson {
	stage, _ := content.StageByID(1)
	return stage.Alphabet
}
