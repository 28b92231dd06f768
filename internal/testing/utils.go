// Package testing provides utilities and helpers for testing the search service.
package testing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanhive/marketplace-search/internal/engine"
	"github.com/urbanhive/marketplace-search/model"
	"github.com/urbanhive/marketplace-search/services"
)

// CreateTestEngine creates a new engine instance for testing. An empty
// data directory disables snapshot persistence, so there is nothing to
// clean up.
func CreateTestEngine(t *testing.T) *engine.Engine {
	t.Helper()

	eng, err := engine.NewEngine("", nil)
	require.NoError(t, err, "Failed to create test engine")
	return eng
}

// SeedTestListings adds a representative marketplace catalog to the
// engine and returns it.
func SeedTestListings(t *testing.T, eng *engine.Engine) []model.Service {
	t.Helper()

	active := true
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	listings := []model.Service{
		{
			ID:             "svc-cleaning",
			Title:          "Deep Home Cleaning",
			Description:    "Full house cleaning with eco products",
			Category:       "Home Services",
			Location:       "DHA Karachi",
			Price:          4500,
			Rating:         4.7,
			ApprovalStatus: "approved",
			IsActive:       &active,
			CreatedAt:      base,
		},
		{
			ID:             "svc-plumber",
			Title:          "Emergency Plumber",
			Description:    "Leak repair and pipe fitting",
			Category:       "Home Services",
			Location:       "Gulshan Karachi",
			Price:          2000,
			Rating:         4.2,
			ApprovalStatus: "approved",
			IsActive:       &active,
			CreatedAt:      base.Add(24 * time.Hour),
		},
		{
			ID:             "svc-cctv",
			Title:          "CCTV Camera Installation",
			Description:    "Camera setup for offices and shops",
			Category:       "Security Services",
			Location:       "Lahore",
			Price:          12000,
			Rating:         4.9,
			ApprovalStatus: "approved",
			IsActive:       &active,
			CreatedAt:      base.Add(48 * time.Hour),
		},
		{
			ID:             "svc-tutor",
			Title:          "Math Tutor for O Levels",
			Description:    "Tuition and exam preparation at your doorstep",
			Category:       "Education & Tutoring",
			Location:       "Islamabad",
			Price:          1500,
			Rating:         5,
			ApprovalStatus: "approved",
			IsActive:       &active,
			CreatedAt:      base.Add(72 * time.Hour),
		},
	}

	require.NoError(t, eng.AddServices(listings), "Failed to seed test listings")
	return listings
}

// SearchTestCase represents a test case for search operations.
type SearchTestCase struct {
	Name          string
	Query         services.SearchQuery
	ExpectedCount int
	ExpectedFirst string // Expected first result listing ID
	ValidateFunc  func(t *testing.T, results *services.SearchResult)
}

// RunSearchTests runs a suite of search tests against an engine.
func RunSearchTests(t *testing.T, eng *engine.Engine, tests []SearchTestCase) {
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			results, err := eng.Search(context.Background(), tt.Query)
			require.NoError(t, err, "Search should not fail")

			assert.Equal(t, tt.ExpectedCount, results.Total, "Result count should match")

			if tt.ExpectedFirst != "" && len(results.Hits) > 0 {
				assert.Equal(t, tt.ExpectedFirst, results.Hits[0].Service.ID, "First result should match expected")
			}

			if tt.ValidateFunc != nil {
				tt.ValidateFunc(t, &results)
			}
		})
	}
}
