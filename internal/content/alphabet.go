package content

import "strings"

var alphabetLessons = []AlphabetLesson{
	{Letter: "A", Sound: "/æ/", Words: []WordCard{{"apple", "🍎"}, {"ant", "🐜"}, {"alligator", "🐊"}}},
	{Letter: "B", Sound: "/b/", Words: []WordCard{{"ball", "⚽"}, {"bear", "🐻"}, {"banana", "🍌"}}},
	{Letter: "C", Sound: "/k/", Words: []WordCard{{"cat", "🐱"}, {"car", "🚗"}, {"cake", "🎂"}}},
	{Letter: "D", Sound: "/d/", Words: []WordCard{{"dog", "🐶"}, {"duck", "🦆"}, {"door", "🚪"}}},
	{Letter: "E", Sound: "/ɛ/", Words: []WordCard{{"egg", "🥚"}, {"elephant", "🐘"}, {"elbow", "💪"}}},
	{Letter: "F", Sound: "/f/", Words: []WordCard{{"fish", "🐟"}, {"frog", "🐸"}, {"flower", "🌸"}}},
	{Letter: "G", Sound: "/g/", Words: []WordCard{{"goat", "🐐"}, {"grape", "🍇"}, {"gift", "🎁"}}},
	{Letter: "H", Sound: "/h/", Words: []WordCard{{"hat", "🎩"}, {"horse", "🐴"}, {"house", "🏠"}}},
	{Letter: "I", Sound: "/ɪ/", Words: []WordCard{{"igloo", "🏠"}, {"insect", "🐛"}, {"ink", "🖋️"}}},
	{Letter: "J", Sound: "/dʒ/", Words: []WordCard{{"jam", "🍯"}, {"jet", "✈️"}, {"jump", "🦘"}}},
	{Letter: "K", Sound: "/k/", Words: []WordCard{{"kite", "🪁"}, {"king", "🤴"}, {"key", "🔑"}}},
	{Letter: "L", Sound: "/l/", Words: []WordCard{{"lion", "🦁"}, {"leaf", "🍃"}, {"lemon", "🍋"}}},
	{Letter: "M", Sound: "/m/", Words: []WordCard{{"moon", "🌙"}, {"mouse", "🐭"}, {"milk", "🥛"}}},
	{Letter: "N", Sound: "/n/", Words: []WordCard{{"nose", "👃"}, {"nut", "🥜"}, {"nest", "🪹"}}},
	{Letter: "O", Sound: "/ɒ/", Words: []WordCard{{"octopus", "🐙"}, {"orange", "🍊"}, {"owl", "🦉"}}},
	{Letter: "P", Sound: "/p/", Words: []WordCard{{"pig", "🐷"}, {"pizza", "🍕"}, {"panda", "🐼"}}},
	{Letter: "Q", Sound: "/kw/", Words: []WordCard{{"queen", "👸"}, {"quilt", "🛏️"}, {"question", "❓"}}},
	{Letter: "R", Sound: "/r/", Words: []WordCard{{"rabbit", "🐰"}, {"rain", "🌧️"}, {"robot", "🤖"}}},
	{Letter: "S", Sound: "/s/", Words: []WordCard{{"sun", "☀️"}, {"star", "⭐"}, {"snake", "🐍"}}},
	{Letter: "T", Sound: "/t/", Words: []WordCard{{"tree", "🌳"}, {"tiger", "🐯"}, {"train", "🚂"}}},
	{Letter: "U", Sound: "/ʌ/", Words: []WordCard{{"umbrella", "☂️"}, {"up", "⬆️"}, {"unicorn", "🦄"}}},
	{Letter: "V", Sound: "/v/", Words: []WordCard{{"van", "🚐"}, {"violin", "🎻"}, {"vegetable", "🥕"}}},
	{Letter: "W", Sound: "/w/", Words: []WordCard{{"water", "💧"}, {"whale", "🐋"}, {"watch", "⌚"}}},
	{Letter: "X", Sound: "/ks/", Words: []WordCard{{"box", "📦"}, {"fox", "🦊"}, {"six", "6️⃣"}}},
	{Letter: "Y", Sound: "/j/", Words: []WordCard{{"yellow", "💛"}, {"yo-yo", "🪀"}, {"yak", "🦬"}}},
	{Letter: "Z", Sound: "/z/", Words: []WordCard{{"zebra", "🦓"}, {"zoo", "🦁"}, {"zero", "0️⃣"}}},
}

// TeachingPhrase returns three real example words spoken slowly so the child
// hears the letter's common sound in context. Empty for non-letters.
func TeachingPhrase(letter string) string {
	upper := strings.ToUpper(letter)
	for _, l := range alphabetLessons {
		if l.Letter == upper {
			parts := make([]string, 0, len(l.Words))
			for _, w := range l.Words {
				parts = append(parts, w.Word+".")
			}
			return strings.Join(parts, " ")
		}
	}
	return ""
}
