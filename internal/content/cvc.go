package content

var cvcLessons = []CVCLesson{
	{Vowel: "a", Words: []CVCWord{
		{"cat", "🐱", []string{"c", "a", "t"}},
		{"bat", "🦇", []string{"b", "a", "t"}},
		{"hat", "🎩", []string{"h", "a", "t"}},
		{"map", "🗺️", []string{"m", "a", "p"}},
		{"bag", "👜", []string{"b", "a", "g"}},
		{"dad", "👨", []string{"d", "a", "d"}},
		{"can", "🥫", []string{"c", "a", "n"}},
		{"fan", "🪭", []string{"f", "a", "n"}},
	}},
	{Vowel: "e", Words: []CVCWord{
		{"bed", "🛏️", []string{"b", "e", "d"}},
		{"red", "🔴", []string{"r", "e", "d"}},
		{"pen", "🖊️", []string{"p", "e", "n"}},
		{"hen", "🐔", []string{"h", "e", "n"}},
		{"leg", "🦵", []string{"l", "e", "g"}},
		{"web", "🕸️", []string{"w", "e", "b"}},
		{"jet", "✈️", []string{"j", "e", "t"}},
		{"pet", "🐕", []string{"p", "e", "t"}},
	}},
	{Vowel: "i", Words: []CVCWord{
		{"pig", "🐷", []string{"p", "i", "g"}},
		{"big", "🐘", []string{"b", "i", "g"}},
		{"dig", "⛏️", []string{"d", "i", "g"}},
		{"sit", "🪑", []string{"s", "i", "t"}},
		{"hit", "👊", []string{"h", "i", "t"}},
		{"fin", "🦈", []string{"f", "i", "n"}},
		{"pin", "📌", []string{"p", "i", "n"}},
		{"win", "🏆", []string{"w", "i", "n"}},
	}},
	{Vowel: "o", Words: []CVCWord{
		{"dog", "🐶", []string{"d", "o", "g"}},
		{"log", "🪵", []string{"l", "o", "g"}},
		{"fog", "🌫️", []string{"f", "o", "g"}},
		{"hot", "🔥", []string{"h", "o", "t"}},
		{"pot", "🍲", []string{"p", "o", "t"}},
		{"top", "🔝", []string{"t", "o", "p"}},
		{"hop", "🐰", []string{"h", "o", "p"}},
		{"box", "📦", []string{"b", "o", "x"}},
	}},
	{Vowel: "u", Words: []CVCWord{
		{"bus", "🚌", []string{"b", "u", "s"}},
		{"cup", "🥤", []string{"c", "u", "p"}},
		{"sun", "☀️", []string{"s", "u", "n"}},
		{"run", "🏃", []string{"r", "u", "n"}},
		{"fun", "🎉", []string{"f", "u", "n"}},
		{"bug", "🐛", []string{"b", "u", "g"}},
		{"hug", "🤗", []string{"h", "u", "g"}},
		{"rug", "🟫", []string{"r", "u", "g"}},
	}},
}

// AllCVCWords flattens every CVC word across lessons, in curriculum order.
func AllCVCWords() []CVCWord {
	var all []CVCWord
	for _, l := range cvcLessons {
		all = append(all, l.Words...)
	}
	return all
}
