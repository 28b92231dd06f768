package model

import "time"

// SearchEvent represents a single search event for analytics tracking.
type SearchEvent struct {
	Query            string        `json:"query"`
	InferredCategory string        `json:"inferred_category,omitempty"`
	ResponseTime     time.Duration `json:"response_time"`
	ResultCount      int           `json:"result_count"`
	Timestamp        time.Time     `json:"timestamp"`
}

// PopularSearch represents aggregated data for popular search terms.
type PopularSearch struct {
	Query       string `json:"query"`
	SearchCount int    `json:"search_count"`
}

// AnalyticsSummary is the aggregate view exposed at /analytics.
type AnalyticsSummary struct {
	TotalSearches     int             `json:"total_searches"`
	AvgResponseTimeMs int64           `json:"avg_response_time_ms"`
	PopularSearches   []PopularSearch `json:"popular_searches"`
	ZeroResultQueries []PopularSearch `json:"zero_result_queries"`
	CategoryHits      map[string]int  `json:"category_hits"` // inferred category name -> search count
}
