package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/urbanhive/marketplace-search/internal/tokenizer"
	"github.com/urbanhive/marketplace-search/model"
	"github.com/urbanhive/marketplace-search/services"
)

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query     string  `json:"query"`
	Category  string  `json:"category,omitempty"`
	Location  string  `json:"location,omitempty"`
	MaxPrice  float64 `json:"max_price,omitempty"`
	MinRating float64 `json:"min_rating,omitempty"`
	Page      int     `json:"page"`
	PageSize  int     `json:"page_size"`
}

// SuggestRequest defines the structure for category suggestion requests.
type SuggestRequest struct {
	Query string `json:"query"`
}

// SuggestResponse is the category suggestion result: the inferred
// category (if any) and the token set the query produces.
type SuggestResponse struct {
	Query            string   `json:"query"`
	InferredCategory string   `json:"inferred_category,omitempty"`
	Tokens           []string `json:"tokens"`
}

// SearchHandler handles relevance search requests.
// Request Body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	startTime := time.Now()

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return
	}

	if result := ValidateSearchRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	searchQuery := services.SearchQuery{
		Query: req.Query,
		Filters: services.CandidateFilters{
			Category:  req.Category,
			Location:  req.Location,
			MaxPrice:  req.MaxPrice,
			MinRating: req.MinRating,
		},
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	results, err := api.engine.Search(c.Request.Context(), searchQuery)
	if err != nil {
		SendSearchError(c, err)
		return
	}

	// Track analytics event
	event := model.SearchEvent{
		Query:            req.Query,
		InferredCategory: results.InferredCategory,
		ResponseTime:     time.Since(startTime),
		ResultCount:      results.Total,
	}

	// Track the event asynchronously to avoid slowing down the response
	go func() {
		if err := api.analytics.TrackSearchEvent(event); err != nil {
			log.Printf("Warning: Failed to track search event: %v", err)
		}
	}()

	c.JSON(http.StatusOK, results)
}

// SuggestCategoryHandler infers a category for a query without running
// a search; the UI uses it to preview category auto-selection.
// Request Body: SuggestRequest
func (api *API) SuggestCategoryHandler(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return
	}

	if result := ValidateSuggestRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	response := SuggestResponse{
		Query:  req.Query,
		Tokens: tokenizer.Tokenize(req.Query),
	}
	if name, ok := api.engine.SuggestCategory(req.Query); ok {
		response.InferredCategory = name
	}

	c.JSON(http.StatusOK, response)
}

// ListCategoriesHandler returns the category catalog.
func (api *API) ListCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": api.engine.Categories()})
}
