package search

import (
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"poemview/internal/domain"
)

// Titles gives the search its haystack
type Titles interface {
	Items() []domain.ContentItem
}

// Service finds poems by title. Substring hits rank first, by position;
// near misses follow, by edit distance.
type Service struct {
	titles Titles
	state  State
	logger *slog.Logger
}

// NewService creates a new search service
func NewService(titles Titles, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{titles: titles, logger: logger.With("component", "search")}
}

// Search ranks titles against query and makes the best match current
func (s *Service) Search(query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	s.state = State{Query: query}
	if query == "" {
		return nil
	}

	tolerance := max(minTolerance, utf8.RuneCountInString(query)/3)
	for i, item := range s.titles.Items() {
		title := strings.ToLower(item.Title)
		if title == "" {
			continue
		}
		if pos := strings.Index(title, query); pos >= 0 {
			s.state.Matches = append(s.state.Matches, Match{Page: i + 1, Title: item.Title, Score: pos})
			continue
		}
		if d := distance(query, title); d <= tolerance {
			s.state.Matches = append(s.state.Matches, Match{Page: i + 1, Title: item.Title, Score: fuzzyBase + d})
		}
	}

	sort.SliceStable(s.state.Matches, func(i, j int) bool {
		return s.state.Matches[i].Score < s.state.Matches[j].Score
	})
	s.logger.Debug("search", "query", query, "matches", len(s.state.Matches))
	return s.state.Matches
}

// Next advances to the following match, wrapping around
func (s *Service) Next() (Match, bool) {
	if len(s.state.Matches) == 0 {
		return Match{}, false
	}
	s.state.CurrentMatch = (s.state.CurrentMatch + 1) % len(s.state.Matches)
	return s.state.Matches[s.state.CurrentMatch], true
}

// Current returns the current match
func (s *Service) Current() (Match, bool) {
	if len(s.state.Matches) == 0 {
		return Match{}, false
	}
	return s.state.Matches[s.state.CurrentMatch], true
}

// Query returns the last query
func (s *Service) Query() string {
	return s.state.Query
}

// MatchCount returns the number of matches
func (s *Service) MatchCount() int {
	return len(s.state.Matches)
}

// Clear forgets the last search
func (s *Service) Clear() {
	s.state = State{}
}

// distance is the smallest edit distance between query and the whole title
// or any of its words
func distance(query, title string) int {
	best := levenshtein.ComputeDistance(query, title)
	for _, word := range strings.FieldsFunc(title, isSeparator) {
		if d := levenshtein.ComputeDistance(query, word); d < best {
			best = d
		}
	}
	return best
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', ',', '.', ';', ':', '!', '?', '-', '\'', '"':
		return true
	}
	return false
}
