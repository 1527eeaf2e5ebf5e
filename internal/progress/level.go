package progress

// Level is a derived badge for a profile's total completed-lesson count.
type Level struct {
	Min   int
	Name  string
	Badge string
}

// Thresholds in ascending order. The level for a count is the highest
// threshold not exceeding it.
var levels = []Level{
	{Min: 0, Name: "Sprout Learner", Badge: "🌱"},
	{Min: 10, Name: "Sound Friend", Badge: "🎵"},
	{Min: 20, Name: "Word Explorer", Badge: "🚀"},
	{Min: 35, Name: "Reading Expert", Badge: "🌟"},
	{Min: 50, Name: "Phonics Master", Badge: "👑"},
}

// Levels returns the full threshold table in ascending order.
func Levels() []Level {
	return levels
}

// LevelForCount returns the level matching a completed-lesson count.
func LevelForCount(count int) Level {
	lvl := levels[0]
	for _, l := range levels {
		if count >= l.Min {
			lvl = l
		}
	}
	return lvl
}
