// Package analytics tracks search events in memory and aggregates
// them into the summary served at /analytics.
package analytics

import (
	"sort"
	"sync"
	"time"

	"github.com/urbanhive/marketplace-search/model"
)

const (
	maxEventsToKeep    = 10000 // keep last 10k events for performance
	maxPopularSearches = 10
)

// Service implements analytics tracking and reporting.
type Service struct {
	mutex  sync.RWMutex
	events []model.SearchEvent
}

// NewService creates a new analytics service.
func NewService() *Service {
	return &Service{
		events: make([]model.SearchEvent, 0),
	}
}

// TrackSearchEvent records a new search event.
func (s *Service) TrackSearchEvent(event model.SearchEvent) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}
	return nil
}

// EventCount returns the number of tracked events.
func (s *Service) EventCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.events)
}

// Summary aggregates the tracked events: totals, average latency,
// popular queries, zero-result queries and inferred-category hits.
func (s *Service) Summary() model.AnalyticsSummary {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	summary := model.AnalyticsSummary{
		TotalSearches: len(s.events),
		CategoryHits:  make(map[string]int),
	}

	queryCounts := make(map[string]int)
	zeroResultCounts := make(map[string]int)
	var totalResponseTime time.Duration
	for _, event := range s.events {
		totalResponseTime += event.ResponseTime
		if event.Query != "" {
			queryCounts[event.Query]++
			if event.ResultCount == 0 {
				zeroResultCounts[event.Query]++
			}
		}
		if event.InferredCategory != "" {
			summary.CategoryHits[event.InferredCategory]++
		}
	}

	if len(s.events) > 0 {
		summary.AvgResponseTimeMs = totalResponseTime.Milliseconds() / int64(len(s.events))
	}
	summary.PopularSearches = topSearches(queryCounts, maxPopularSearches)
	summary.ZeroResultQueries = topSearches(zeroResultCounts, maxPopularSearches)

	return summary
}

// topSearches ranks query counts descending, query text ascending on
// ties so the output is deterministic.
func topSearches(counts map[string]int, limit int) []model.PopularSearch {
	ranked := make([]model.PopularSearch, 0, len(counts))
	for query, count := range counts {
		ranked = append(ranked, model.PopularSearch{Query: query, SearchCount: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].SearchCount != ranked[j].SearchCount {
			return ranked[i].SearchCount > ranked[j].SearchCount
		}
		return ranked[i].Query < ranked[j].Query
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
