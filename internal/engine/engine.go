// Package engine wires the relevance engine together: settings, the
// listing store, the translation collaborator, the search service and
// snapshot persistence. It implements services.SearchProvider.
package engine

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/urbanhive/marketplace-search/config"
	"github.com/urbanhive/marketplace-search/internal/category"
	"github.com/urbanhive/marketplace-search/internal/persistence"
	"github.com/urbanhive/marketplace-search/internal/search"
	"github.com/urbanhive/marketplace-search/model"
	"github.com/urbanhive/marketplace-search/services"
	"github.com/urbanhive/marketplace-search/store"
)

// Engine owns the listing store and the search service built over it.
type Engine struct {
	settings     *config.EngineSettings
	serviceStore *store.ServiceStore
	searchSvc    *search.Service
	categories   []model.Category
	dataDir      string // empty disables snapshots
}

// NewEngine creates the relevance engine. A previous snapshot in
// dataDir is loaded when present; an empty dataDir disables
// persistence entirely (used by tests).
func NewEngine(dataDir string, translator services.Translator) (*Engine, error) {
	settings := &config.EngineSettings{}
	settings.ApplyDefaults()
	if problems := settings.Validate(); len(problems) > 0 {
		return nil, errors.New("invalid engine settings: " + problems[0])
	}

	serviceStore := store.NewServiceStore()
	if dataDir != "" {
		if err := persistence.LoadSnapshot(dataDir, serviceStore); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Printf("No listing snapshot in %s, starting with an empty catalog", dataDir)
			} else {
				log.Printf("Warning: Failed to load listing snapshot: %v", err)
			}
		} else {
			log.Printf("Loaded %d listings from %s", serviceStore.Count(), dataDir)
		}
	}

	categories := model.DefaultCategories
	searchSvc, err := search.NewService(serviceStore, translator, settings, categories)
	if err != nil {
		return nil, err
	}

	return &Engine{
		settings:     settings,
		serviceStore: serviceStore,
		searchSvc:    searchSvc,
		categories:   categories,
		dataDir:      dataDir,
	}, nil
}

// Settings returns the engine's effective settings.
func (e *Engine) Settings() config.EngineSettings {
	return *e.settings
}

// Search runs a relevance search over the stored listings.
func (e *Engine) Search(ctx context.Context, query services.SearchQuery) (services.SearchResult, error) {
	return e.searchSvc.Search(ctx, query)
}

// SuggestCategory infers a category for a query without running a
// search; used by the suggestion endpoint.
func (e *Engine) SuggestCategory(query string) (string, bool) {
	return category.InferWithThreshold(query, e.categories, e.settings.SimilarityThreshold)
}

// Categories returns a copy of the category catalog.
func (e *Engine) Categories() []model.Category {
	out := make([]model.Category, len(e.categories))
	copy(out, e.categories)
	return out
}

// AddServices upserts listings, filling in IDs and creation times for
// new entries, then persists a snapshot.
func (e *Engine) AddServices(listings []model.Service) error {
	prepared := make([]model.Service, len(listings))
	for i, listing := range listings {
		if listing.ID == "" {
			listing.ID = uuid.New().String()
		}
		if listing.CreatedAt.IsZero() {
			listing.CreatedAt = time.Now()
		}
		prepared[i] = listing
	}

	if err := e.serviceStore.AddServices(prepared); err != nil {
		return err
	}
	e.persist()
	return nil
}

// DeleteService removes one listing and persists a snapshot.
func (e *Engine) DeleteService(serviceID string) error {
	if err := e.serviceStore.DeleteService(serviceID); err != nil {
		return err
	}
	e.persist()
	return nil
}

// DeleteAllServices clears the catalog and persists a snapshot.
func (e *Engine) DeleteAllServices() error {
	if err := e.serviceStore.DeleteAllServices(); err != nil {
		return err
	}
	e.persist()
	return nil
}

// ListServices returns a page of listings newest-first plus the total.
func (e *Engine) ListServices(page, pageSize int) ([]model.Service, int) {
	return e.serviceStore.ListServices(page, pageSize)
}

// GetService returns a single listing by ID.
func (e *Engine) GetService(serviceID string) (model.Service, error) {
	return e.serviceStore.GetService(serviceID)
}

func (e *Engine) persist() {
	if e.dataDir == "" {
		return
	}
	if err := persistence.SaveSnapshot(e.dataDir, e.serviceStore); err != nil {
		log.Printf("Warning: Failed to persist listing snapshot: %v", err)
	}
}
