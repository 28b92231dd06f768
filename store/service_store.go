// Package store holds the in-memory listing catalog behind the search
// surface. It executes the abstract predicate the engine builds plus
// the structured caller filters, returning candidates newest-first the
// way the production backend orders them.
package store

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/urbanhive/marketplace-search/internal/errors"
	"github.com/urbanhive/marketplace-search/model"
	"github.com/urbanhive/marketplace-search/services"
)

// ServiceStore is a mutex-guarded in-memory listing store.
type ServiceStore struct {
	Mu       sync.RWMutex
	Listings map[string]model.Service
	Order    []string // listing IDs in insertion order
}

// NewServiceStore creates an empty store.
func NewServiceStore() *ServiceStore {
	return &ServiceStore{
		Listings: make(map[string]model.Service),
		Order:    make([]string, 0),
	}
}

// AddServices inserts or updates listings. Listings without an ID or
// with a zero CreatedAt are rejected by the engine before reaching the
// store, so both are treated as programmer errors here.
func (ss *ServiceStore) AddServices(listings []model.Service) error {
	ss.Mu.Lock()
	defer ss.Mu.Unlock()

	for _, listing := range listings {
		if listing.ID == "" {
			return fmt.Errorf("listing %q has no ID", listing.Title)
		}
		if _, exists := ss.Listings[listing.ID]; !exists {
			ss.Order = append(ss.Order, listing.ID)
		}
		ss.Listings[listing.ID] = listing
	}
	return nil
}

// DeleteService removes one listing by ID.
func (ss *ServiceStore) DeleteService(serviceID string) error {
	ss.Mu.Lock()
	defer ss.Mu.Unlock()

	if _, exists := ss.Listings[serviceID]; !exists {
		return errors.NewServiceNotFoundError(serviceID)
	}
	delete(ss.Listings, serviceID)
	for i, id := range ss.Order {
		if id == serviceID {
			ss.Order = append(ss.Order[:i], ss.Order[i+1:]...)
			break
		}
	}
	return nil
}

// DeleteAllServices clears the store.
func (ss *ServiceStore) DeleteAllServices() error {
	ss.Mu.Lock()
	defer ss.Mu.Unlock()

	ss.Listings = make(map[string]model.Service)
	ss.Order = ss.Order[:0]
	return nil
}

// GetService returns one listing by ID.
func (ss *ServiceStore) GetService(serviceID string) (model.Service, error) {
	ss.Mu.RLock()
	defer ss.Mu.RUnlock()

	listing, exists := ss.Listings[serviceID]
	if !exists {
		return model.Service{}, errors.NewServiceNotFoundError(serviceID)
	}
	return listing, nil
}

// Count returns the number of stored listings.
func (ss *ServiceStore) Count() int {
	ss.Mu.RLock()
	defer ss.Mu.RUnlock()
	return len(ss.Listings)
}

// ListServices returns a page of listings newest-first plus the total
// count, for the non-search catalog read.
func (ss *ServiceStore) ListServices(page, pageSize int) ([]model.Service, int) {
	ss.Mu.RLock()
	defer ss.Mu.RUnlock()

	all := ss.newestFirstLocked()
	total := len(all)

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = total
	}
	start := (page - 1) * pageSize
	if start >= total {
		return []model.Service{}, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return all[start:end], total
}

// FindCandidates returns bookable listings matching the OR-combined
// predicate and every structured filter, newest-first. A nil predicate
// matches everything the filters allow; the relevance engine handles
// the empty-query case by passing nil.
func (ss *ServiceStore) FindCandidates(predicate []services.FilterClause, filters services.CandidateFilters) []model.Service {
	ss.Mu.RLock()
	defer ss.Mu.RUnlock()

	candidates := make([]model.Service, 0)
	for _, listing := range ss.newestFirstLocked() {
		if !listing.Bookable() {
			continue
		}
		if !matchesFilters(listing, filters) {
			continue
		}
		if len(predicate) > 0 && !matchesPredicate(listing, predicate) {
			continue
		}
		candidates = append(candidates, listing)
	}
	return candidates
}

// newestFirstLocked returns all listings ordered by CreatedAt
// descending; ties keep reverse insertion order so reads stay
// deterministic. Callers must hold at least a read lock.
func (ss *ServiceStore) newestFirstLocked() []model.Service {
	all := make([]model.Service, 0, len(ss.Order))
	for i := len(ss.Order) - 1; i >= 0; i-- {
		if listing, ok := ss.Listings[ss.Order[i]]; ok {
			all = append(all, listing)
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all
}

// matchesPredicate evaluates the OR-combined contains clauses.
func matchesPredicate(listing model.Service, predicate []services.FilterClause) bool {
	for _, clause := range predicate {
		if clause.Operator != "contains" && clause.Operator != "" {
			log.Printf("Warning: unknown predicate operator %q for field %q, treating as contains", clause.Operator, clause.Field)
		}
		if containsFold(fieldValue(listing, clause.Field), clause.Value) {
			return true
		}
	}
	return false
}

// matchesFilters applies the structured caller filters: category
// equality, location substring, price ceiling, rating floor. Zero
// values disable a filter.
func matchesFilters(listing model.Service, filters services.CandidateFilters) bool {
	if filters.Category != "" && listing.Category != filters.Category {
		return false
	}
	if filters.Location != "" && !containsFold(listing.Location, filters.Location) {
		return false
	}
	if filters.MaxPrice > 0 && listing.Price > filters.MaxPrice {
		return false
	}
	if filters.MinRating > 0 && listing.Rating < filters.MinRating {
		return false
	}
	return true
}

func fieldValue(listing model.Service, field string) string {
	switch field {
	case "title":
		return listing.Title
	case "description":
		return listing.Description
	case "category":
		return listing.Category
	case "location":
		return listing.Location
	default:
		return ""
	}
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// gobServiceStoreData is a helper struct for gob encoding/decoding
// store data. It excludes the mutex.
type gobServiceStoreData struct {
	Listings map[string]model.Service
	Order    []string
}

// GobEncode implements the gob.GobEncoder interface for ServiceStore.
func (ss *ServiceStore) GobEncode() ([]byte, error) {
	ss.Mu.RLock()
	defer ss.Mu.RUnlock()

	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	if err := encoder.Encode(gobServiceStoreData{Listings: ss.Listings, Order: ss.Order}); err != nil {
		return nil, fmt.Errorf("failed to gob encode service store data: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface for ServiceStore.
func (ss *ServiceStore) GobDecode(data []byte) error {
	decoded := gobServiceStoreData{}

	decoder := gob.NewDecoder(bytes.NewBuffer(data))
	if err := decoder.Decode(&decoded); err != nil {
		return fmt.Errorf("failed to gob decode service store data: %w", err)
	}

	ss.Mu.Lock()
	defer ss.Mu.Unlock()

	ss.Listings = decoded.Listings
	ss.Order = decoded.Order
	if ss.Listings == nil {
		ss.Listings = make(map[string]model.Service)
	}
	if ss.Order == nil {
		ss.Order = make([]string, 0)
	}
	return nil
}
