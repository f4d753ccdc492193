package search

// Match is one poem whose title matched the query
type Match struct {
	Page  int
	Title string
	Score int // lower is better
}

// State holds search state
type State struct {
	Query        string
	Matches      []Match
	CurrentMatch int // Current match index in Matches slice
}

const (
	// fuzzyBase ranks every fuzzy match after every substring match
	fuzzyBase = 1000
	// minTolerance is the edit distance always accepted for short queries
	minTolerance = 1
)
