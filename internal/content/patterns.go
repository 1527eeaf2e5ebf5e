package content

var blendLessons = []PatternLesson{
	{Pattern: "sh", Sound: "/ʃ/", Words: []WordCard{{"ship", "🚢"}, {"shop", "🏪"}, {"fish", "🐟"}, {"she", "👩"}, {"shoe", "👟"}, {"shell", "🐚"}}},
	{Pattern: "ch", Sound: "/tʃ/", Words: []WordCard{{"chip", "🍟"}, {"chat", "💬"}, {"much", "📈"}, {"rich", "💰"}, {"chin", "😊"}, {"lunch", "🍱"}}},
	{Pattern: "th", Sound: "/θ/", Words: []WordCard{{"thin", "📏"}, {"bath", "🛁"}, {"math", "🔢"}, {"with", "🤝"}, {"think", "🤔"}, {"tooth", "🦷"}}},
	{Pattern: "wh", Sound: "/w/", Words: []WordCard{{"when", "⏰"}, {"what", "❓"}, {"white", "⬜"}, {"whale", "🐋"}, {"wheel", "🎡"}, {"where", "📍"}}},
	{Pattern: "bl", Sound: "/bl/", Words: []WordCard{{"blue", "🔵"}, {"black", "⬛"}, {"block", "🧱"}, {"blow", "💨"}, {"blend", "🌀"}, {"blanket", "🛏️"}}},
	{Pattern: "cl", Sound: "/kl/", Words: []WordCard{{"clap", "👏"}, {"class", "🏫"}, {"clock", "🕐"}, {"clean", "✨"}, {"close", "🚪"}, {"cloud", "☁️"}}},
	{Pattern: "fl", Sound: "/fl/", Words: []WordCard{{"flag", "🚩"}, {"fly", "🪰"}, {"flower", "🌸"}, {"flat", "📋"}, {"floor", "🏠"}, {"flip", "🔄"}}},
	{Pattern: "br", Sound: "/br/", Words: []WordCard{{"bread", "🍞"}, {"brown", "🟤"}, {"brush", "🖌️"}, {"brain", "🧠"}, {"brave", "💪"}, {"bridge", "🌉"}}},
	{Pattern: "cr", Sound: "/kr/", Words: []WordCard{{"crab", "🦀"}, {"cry", "😢"}, {"crown", "👑"}, {"cream", "🍦"}, {"cross", "❌"}, {"crayon", "🖍️"}}},
	{Pattern: "gr", Sound: "/gr/", Words: []WordCard{{"green", "💚"}, {"grass", "🌿"}, {"grape", "🍇"}, {"grow", "🌱"}, {"group", "👥"}, {"great", "👍"}}},
	{Pattern: "st", Sound: "/st/", Words: []WordCard{{"star", "⭐"}, {"stop", "🛑"}, {"step", "👣"}, {"stone", "🪨"}, {"story", "📖"}, {"stick", "🪵"}}},
	{Pattern: "sp", Sound: "/sp/", Words: []WordCard{{"spin", "🌀"}, {"spot", "⭕"}, {"space", "🚀"}, {"spoon", "🥄"}, {"speak", "🗣️"}, {"spider", "🕷️"}}},
}

var longVowelLessons = []PatternLesson{
	{Pattern: "a_e", Sound: "/eɪ/", ShortWord: "cap", LongWord: "cape", Words: []WordCard{{"cake", "🎂"}, {"lake", "🏞️"}, {"make", "🔨"}, {"name", "📛"}, {"game", "🎮"}, {"late", "⏰"}}},
	{Pattern: "i_e", Sound: "/aɪ/", ShortWord: "kit", LongWord: "kite", Words: []WordCard{{"bike", "🚲"}, {"like", "❤️"}, {"time", "⏰"}, {"five", "5️⃣"}, {"ride", "🏇"}, {"line", "📏"}}},
	{Pattern: "o_e", Sound: "/oʊ/", ShortWord: "hop", LongWord: "hope", Words: []WordCard{{"home", "🏠"}, {"bone", "🦴"}, {"note", "📝"}, {"rose", "🌹"}, {"nose", "👃"}, {"hole", "🕳️"}}},
	{Pattern: "u_e", Sound: "/juː/", ShortWord: "cub", LongWord: "cube", Words: []WordCard{{"cute", "🥰"}, {"huge", "🐘"}, {"mule", "🫏"}, {"tune", "🎵"}, {"rule", "📐"}, {"flute", "🎶"}}},
	{Pattern: "ee", Sound: "/iː/", ShortWord: "bed", LongWord: "beet", Words: []WordCard{{"bee", "🐝"}, {"tree", "🌳"}, {"see", "👀"}, {"free", "🆓"}, {"feet", "🦶"}, {"green", "💚"}}},
	{Pattern: "ea", Sound: "/iː/", ShortWord: "met", LongWord: "meat", Words: []WordCard{{"eat", "🍽️"}, {"read", "📖"}, {"sea", "🌊"}, {"team", "👥"}, {"bean", "🫘"}, {"peach", "🍑"}}},
	{Pattern: "oa", Sound: "/oʊ/", ShortWord: "got", LongWord: "goat", Words: []WordCard{{"boat", "⛵"}, {"coat", "🧥"}, {"goat", "🐐"}, {"road", "🛣️"}, {"soap", "🧼"}, {"toast", "🍞"}}},
	{Pattern: "ai", Sound: "/eɪ/", ShortWord: "man", LongWord: "main", Words: []WordCard{{"rain", "🌧️"}, {"tail", "🐕"}, {"mail", "📬"}, {"sail", "⛵"}, {"train", "🚂"}, {"paint", "🎨"}}},
}

var ruleLessons = []PatternLesson{
	{Pattern: "ck", Sound: "/k/", Words: []WordCard{{"duck", "🦆"}, {"back", "🔙"}, {"kick", "🦵"}, {"rock", "🪨"}, {"sock", "🧦"}, {"clock", "🕐"}}},
	{Pattern: "ng", Sound: "/ŋ/", Words: []WordCard{{"ring", "💍"}, {"sing", "🎤"}, {"king", "🤴"}, {"long", "📏"}, {"song", "🎵"}, {"wing", "🪽"}}},
	{Pattern: "oo (short)", Sound: "/ʊ/", Words: []WordCard{{"book", "📖"}, {"look", "👀"}, {"cook", "👨‍🍳"}, {"good", "👍"}, {"wood", "🪵"}, {"foot", "🦶"}}},
	{Pattern: "oo (long)", Sound: "/uː/", Words: []WordCard{{"moon", "🌙"}, {"food", "🍔"}, {"cool", "😎"}, {"pool", "🏊"}, {"school", "🏫"}, {"room", "🚪"}}},
	{Pattern: "ow", Sound: "/aʊ/", Words: []WordCard{{"cow", "🐄"}, {"now", "⏰"}, {"how", "❓"}, {"wow", "😮"}, {"town", "🏘️"}, {"brown", "🟤"}}},
	{Pattern: "ou", Sound: "/aʊ/", Words: []WordCard{{"out", "🚪"}, {"house", "🏠"}, {"mouse", "🐭"}, {"loud", "🔊"}, {"cloud", "☁️"}, {"round", "⭕"}}},
	{Pattern: "aw", Sound: "/ɔː/", Words: []WordCard{{"saw", "🪚"}, {"paw", "🐾"}, {"draw", "✏️"}, {"law", "⚖️"}, {"straw", "🥤"}, {"crawl", "🐛"}}},
	{Pattern: "er", Sound: "/ɜːr/", Words: []WordCard{{"her", "👩"}, {"water", "💧"}, {"sister", "👧"}, {"teacher", "👩‍🏫"}, {"mother", "👩"}, {"father", "👨"}}},
	{Pattern: "ir", Sound: "/ɜːr/", Words: []WordCard{{"bird", "🐦"}, {"girl", "👧"}, {"first", "🥇"}, {"shirt", "👕"}, {"dirt", "🟤"}, {"circle", "⭕"}}},
	{Pattern: "ur", Sound: "/ɜːr/", Words: []WordCard{{"burn", "🔥"}, {"turn", "🔄"}, {"nurse", "👩‍⚕️"}, {"purple", "💜"}, {"turtle", "🐢"}, {"church", "⛪"}}},
}
