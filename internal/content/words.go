package content

var sightWordLessons = []SightLesson{
	{Level: "Easy", Words: []SightWord{
		{"the", "The dog is big."},
		{"and", "Mom and Dad are here."},
		{"see", "I see a bird."},
		{"you", "You can do it."},
		{"come", "Come and play with me."},
		{"here", "The cat is here."},
		{"look", "Look at the moon."},
		{"play", "We play in the park."},
	}},
	{Level: "Medium", Words: []SightWord{
		{"said", "She said hello to me."},
		{"have", "I have two cats."},
		{"they", "They like to sing."},
		{"what", "What is in the box?"},
		{"want", "I want some milk."},
		{"good", "This is a good book."},
		{"little", "The little fish can swim."},
		{"where", "Where is my hat?"},
	}},
	{Level: "Hard", Words: []SightWord{
		{"because", "I smile because I am happy."},
		{"before", "Wash your hands before lunch."},
		{"together", "We read the book together."},
		{"always", "The sun always comes up."},
		{"every", "I brush my teeth every day."},
		{"friend", "My friend lives next door."},
		{"people", "Many people like ice cream."},
		{"again", "Let's play the game again."},
	}},
}

var sentenceLessons = []SentenceLesson{
	{Level: "Easy", Sentences: []Sentence{
		{Text: "The cat sat.", Emoji: "🐱", Chunks: []string{"The", "cat", "sat."}},
		{Text: "I see a dog.", Emoji: "🐶", Chunks: []string{"I", "see", "a", "dog."}},
		{Text: "The sun is hot.", Emoji: "☀️", Chunks: []string{"The", "sun", "is", "hot."}},
		{Text: "I like to run.", Emoji: "🏃", Chunks: []string{"I", "like", "to", "run."}},
		{Text: "The fish can swim.", Emoji: "🐟", Chunks: []string{"The", "fish", "can", "swim."}},
	}},
	{Level: "Medium", Sentences: []Sentence{
		{Text: "The big dog runs fast.", Emoji: "🐕", Chunks: []string{"The big dog", "runs fast."}},
		{Text: "I have a red ball.", Emoji: "🔴", Chunks: []string{"I have", "a red ball."}},
		{Text: "She likes to read books.", Emoji: "📚", Chunks: []string{"She likes", "to read books."}},
		{Text: "The bird sits on the tree.", Emoji: "🐦", Chunks: []string{"The bird sits", "on the tree."}},
		{Text: "We play games at home.", Emoji: "🎮", Chunks: []string{"We play games", "at home."}},
	}},
	{Level: "Hard", Sentences: []Sentence{
		{Text: "The white cat sleeps on the soft bed.", Emoji: "🐱", Chunks: []string{"The white cat", "sleeps", "on the soft bed."}},
		{Text: "My friend and I like to play together.", Emoji: "👫", Chunks: []string{"My friend and I", "like to play", "together."}},
		{Text: "The little bird sings a beautiful song.", Emoji: "🎵", Chunks: []string{"The little bird", "sings", "a beautiful song."}},
		{Text: "We can see many stars at night.", Emoji: "🌟", Chunks: []string{"We can see", "many stars", "at night."}},
		{Text: "The farmer grows vegetables on his farm.", Emoji: "🥕", Chunks: []string{"The farmer", "grows vegetables", "on his farm."}},
	}},
}

// AllSentences flattens every practice sentence across difficulty levels.
func AllSentences() []Sentence {
	var all []Sentence
	for _, l := range sentenceLessons {
		all = append(all, l.Sentences...)
	}
	return all
}
