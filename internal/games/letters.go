package games

import "math/rand/v2"

// LetterQuestion asks the learner to pick the letter that makes a
// sound. In Letter Hunt the IPA notation is shown and the phoneme is
// played on demand; in Sound Search only the phoneme is played.
type LetterQuestion struct {
	Letter  string // the correct answer
	Sound   string // IPA notation, e.g. "/b/"
	Options []string
}

const (
	quizQuestions      = 12
	listeningQuestions = 10
	letterOptions      = 4
)

// NewAlphabetQuiz builds a Letter Hunt round: 12 letters drawn at
// random from the alphabet, each with 4 shuffled letter options.
func NewAlphabetQuiz(r *rand.Rand) []LetterQuestion {
	src := alphabetLessons()
	order := r.Perm(len(src))

	qs := make([]LetterQuestion, 0, quizQuestions)
	for _, idx := range order[:quizQuestions] {
		l := src[idx]
		opts := append([]string{l.Letter}, decoyLetters(r, l.Letter, letterOptions-1)...)
		qs = append(qs, LetterQuestion{
			Letter:  l.Letter,
			Sound:   l.Sound,
			Options: shuffled(r, opts),
		})
	}
	return qs
}

// NewListeningRound builds a Sound Search round over the first ten
// letters in curriculum order, each with 4 shuffled options.
func NewListeningRound(r *rand.Rand) []LetterQuestion {
	src := alphabetLessons()[:listeningQuestions]

	qs := make([]LetterQuestion, 0, listeningQuestions)
	for _, l := range src {
		opts := append([]string{l.Letter}, decoyLetters(r, l.Letter, letterOptions-1)...)
		qs = append(qs, LetterQuestion{
			Letter:  l.Letter,
			Sound:   l.Sound,
			Options: shuffled(r, opts),
		})
	}
	return qs
}
