package speech

import "strings"

// voicePreferences is the ordered list of predicates used to pick a
// voice for young learners. Earlier entries win; within one predicate
// the first matching voice wins. The chain favors the high-quality
// voices kids are most likely to understand, then degrades to anything
// English, then to whatever the engine offers.
var qualityNames = []string{"Samantha", "Alex", "Karen", "Daniel"}

var voicePreferences = []func(Voice) bool{
	func(v Voice) bool { return strings.Contains(v.Name, "Google") && isEnglish(v) },
	func(v Voice) bool {
		return strings.Contains(v.Name, "Microsoft") &&
			(strings.Contains(v.Name, "Online") || strings.Contains(v.Name, "Natural"))
	},
	func(v Voice) bool {
		for _, n := range qualityNames {
			if strings.Contains(v.Name, n) {
				return true
			}
		}
		return false
	},
	func(v Voice) bool { return strings.Contains(v.Name, "Microsoft") && isEnglish(v) },
	func(v Voice) bool { return !v.Local && isEnglish(v) },
	func(v Voice) bool { return strings.HasPrefix(v.Lang, "en-US") },
	isEnglish,
}

func isEnglish(v Voice) bool {
	return strings.HasPrefix(v.Lang, "en")
}

// ChooseVoice picks the best voice from the engine's list. It returns
// nil when the list is empty; callers then speak with the engine
// default.
func ChooseVoice(voices []Voice) *Voice {
	for _, pref := range voicePreferences {
		for i := range voices {
			if pref(voices[i]) {
				return &voices[i]
			}
		}
	}
	if len(voices) > 0 {
		return &voices[0]
	}
	return nil
}
