// Package content holds the static, hand-authored phonics curriculum.
// The progress model treats lessons as opaque: it only ever sees stage IDs,
// lesson indices, and counts. Screens reach into the typed lesson data.
package content

// Kind identifies the shape of a stage's lessons.
type Kind int

const (
	KindAlphabet Kind = iota
	KindCVC
	KindBlend
	KindLongVowel
	KindRule
	KindSightWords
	KindSentences
)

// WordCard is an example word with a display emoji.
type WordCard struct {
	Word  string
	Emoji string
}

// AlphabetLesson teaches the sound of a single letter.
type AlphabetLesson struct {
	Letter string
	Sound  string // IPA, e.g. "/b/"
	Words  []WordCard
}

// CVCWord is a consonant-vowel-consonant word split into its letters.
type CVCWord struct {
	Word     string
	Emoji    string
	Phonemes []string
}

// CVCLesson groups CVC words sharing a short vowel.
type CVCLesson struct {
	Vowel string
	Words []CVCWord
}

// PatternLesson covers consonant blends, long-vowel patterns, and special
// rules. ShortWord/LongWord carry the Magic-E contrast pair and are empty
// for blends and rules.
type PatternLesson struct {
	Pattern   string // "sh", "a_e", "ck", ...
	Sound     string
	ShortWord string
	LongWord  string
	Words     []WordCard
}

// SightWord is a high-frequency word with an example sentence.
type SightWord struct {
	Word     string
	Sentence string
}

// SightLesson groups sight words by difficulty level.
type SightLesson struct {
	Level string
	Words []SightWord
}

// Sentence is a practice sentence with chunked reading groups.
type Sentence struct {
	Text   string
	Emoji  string
	Chunks []string
}

// SentenceLesson groups sentences by difficulty level.
type SentenceLesson struct {
	Level     string
	Sentences []Sentence
}

// Stage is one themed unit of the curriculum. Exactly one of the lesson
// slices is populated, according to Kind.
type Stage struct {
	ID          int
	Title       string
	Icon        string
	Description string
	Kind        Kind

	Alphabet   []AlphabetLesson
	CVC        []CVCLesson
	Patterns   []PatternLesson
	SightWords []SightLesson
	Sentences  []SentenceLesson
}

// LessonCount returns the number of addressable lessons in the stage.
func (s Stage) LessonCount() int {
	switch s.Kind {
	case KindAlphabet:
		return len(s.Alphabet)
	case KindCVC:
		return len(s.CVC)
	case KindBlend, KindLongVowel, KindRule:
		return len(s.Patterns)
	case KindSightWords:
		return len(s.SightWords)
	case KindSentences:
		return len(s.Sentences)
	}
	return 0
}

// Stages returns the full curriculum in order. The slice is shared; callers
// must not mutate it.
func Stages() []Stage {
	return allStages
}

// StageByID returns the stage with the given ID, or false if out of range.
func StageByID(id int) (Stage, bool) {
	for _, s := range allStages {
		if s.ID == id {
			return s, true
		}
	}
	return Stage{}, false
}

var allStages = []Stage{
	{ID: 1, Title: "Alphabet Sounds", Icon: "🔤", Description: "Learn the sound of every letter", Kind: KindAlphabet, Alphabet: alphabetLessons},
	{ID: 2, Title: "CVC Words", Icon: "📖", Description: "Read consonant-vowel-consonant words", Kind: KindCVC, CVC: cvcLessons},
	{ID: 3, Title: "Consonant Blends", Icon: "🔀", Description: "Two consonants, one sound", Kind: KindBlend, Patterns: blendLessons},
	{ID: 4, Title: "Long Vowels & Magic E", Icon: "✨", Description: "The magic E changes the vowel", Kind: KindLongVowel, Patterns: longVowelLessons},
	{ID: 5, Title: "Special Rules", Icon: "📚", Description: "Special pronunciation rules", Kind: KindRule, Patterns: ruleLessons},
	{ID: 6, Title: "Sight Words", Icon: "👀", Description: "Words you know at a glance", Kind: KindSightWords, SightWords: sightWordLessons},
	{ID: 7, Title: "Sentence Reading", Icon: "📝", Description: "Read and understand sentences", Kind: KindSentences, Sentences: sentenceLessons},
}
