package engine

// Keyword lists scanned against check-in notes with case-insensitive
// substring matching. Deliberately crude: these are heuristic signals,
// not diagnostic claims.

var isolationKeywords = []string{
	"alone",
	"lonely",
	"isolated",
	"by myself",
	"stayed home",
	"stayed in",
	"cancelled plans",
	"no one",
	"nobody",
}

var stressKeywords = []string{
	"stress",
	"anxious",
	"anxiety",
	"overwhelmed",
	"pressure",
	"worried",
	"panic",
	"tense",
}

var sleepKeywords = []string{
	"tired",
	"exhausted",
	"insomnia",
	"couldn't sleep",
	"cant sleep",
	"can't sleep",
	"no sleep",
	"woke up",
	"sleepless",
}
