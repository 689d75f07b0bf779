// Package search finds topics by title, name, category or body text.
//
// Field matches are fuzzy: the query has to appear as a case-folded,
// accent-insensitive subsequence of the field ("uberladung" finds
// "Überladung"). Body text only matches on a case-insensitive substring,
// since almost any short query is a subsequence of a long paragraph.
package search

import (
	"sort"
	"strings"

	"github.com/arthur-debert/hilfsbuch/pkg/topics"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Field names the part of a topic a result matched
type Field string

const (
	FieldTitle    Field = "title"
	FieldName     Field = "name"
	FieldCategory Field = "category"
	FieldText     Field = "text"
)

// textPenalty sorts body matches after every field match
const textPenalty = 1 << 16

// DefaultLimit caps results when no limit is configured
const DefaultLimit = 10

// Result is a single topic hit. Each topic appears at most once.
type Result struct {
	Topic    *topics.Topic
	Field    Field
	Match    string // the field value or body line that matched
	Distance int    // lower is better
}

// Searcher searches a fixed set of topics
type Searcher struct {
	corpus []*topics.Topic
	limit  int
}

// New creates a searcher over the whole catalog. limit <= 0 uses DefaultLimit.
func New(limit int) *Searcher {
	return NewWithTopics(topics.All(), limit)
}

// NewWithTopics creates a searcher over the given topics
func NewWithTopics(corpus []*topics.Topic, limit int) *Searcher {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Searcher{corpus: corpus, limit: limit}
}

// Search returns the best hit per topic, best first. Ties keep corpus
// order. An empty query has no results.
func (s *Searcher) Search(query string) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var results []Result
	for _, t := range s.corpus {
		if r, ok := matchFields(query, t); ok {
			results = append(results, r)
			continue
		}
		if r, ok := matchText(query, t); ok {
			results = append(results, r)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if len(results) > s.limit {
		results = results[:s.limit]
	}
	return results
}

func matchFields(query string, t *topics.Topic) (Result, bool) {
	fields := []Field{FieldTitle, FieldName, FieldCategory}
	targets := []string{t.Title, t.Name, t.Category}

	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	if len(ranks) == 0 {
		return Result{}, false
	}
	sort.Sort(ranks)

	best := ranks[0]
	return Result{
		Topic:    t,
		Field:    fields[best.OriginalIndex],
		Match:    best.Target,
		Distance: best.Distance,
	}, true
}

func matchText(query string, t *topics.Topic) (Result, bool) {
	needle := strings.ToLower(query)
	for _, line := range t.Lines() {
		if strings.Contains(strings.ToLower(line), needle) {
			trimmed := strings.TrimSpace(line)
			return Result{
				Topic:    t,
				Field:    FieldText,
				Match:    trimmed,
				Distance: textPenalty + len(trimmed) - len(query),
			}, true
		}
	}
	return Result{}, false
}
