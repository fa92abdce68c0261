package catalog

import (
	"sync"

	"github.com/maisonluxe/storefront/pkg/enums"
	"github.com/maisonluxe/storefront/pkg/types"
)

// State is a read-only projection of the catalog store. FilteredItems is
// always exactly the subset of Items matching the active category and search
// query; it is recomputed inside every mutation and never served stale.
type State struct {
	Items            []types.Product   `json:"items"`
	FilteredItems    []types.Product   `json:"filtered_items"`
	Categories       []string          `json:"categories"`
	SelectedCategory string            `json:"selected_category"`
	SearchQuery      string            `json:"search_query"`
	Status           enums.FetchStatus `json:"status"`
	Error            string            `json:"error,omitempty"`
}

// Store owns the product catalog, the category vocabulary, the active filter
// criteria, and the fetch lifecycle. Every mutation is applied atomically
// under the store mutex; consumers only ever see snapshots.
type Store struct {
	mu    sync.Mutex
	state State
}

// NewStore returns an empty catalog store in the idle state.
func NewStore() *Store {
	return &Store{
		state: State{
			Items:            []types.Product{},
			FilteredItems:    []types.Product{},
			Categories:       []string{AllCategories},
			SelectedCategory: AllCategories,
			Status:           enums.FetchStatusIdle,
		},
	}
}

// BeginLoad marks a product fetch as in flight and clears any prior error.
// Loading is entered synchronously, before the fetch resolves.
func (s *Store) BeginLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status = enums.FetchStatusLoading
	s.state.Error = ""
}

// FinishLoad applies a successful product fetch. The filtered view is rebuilt
// against the current category and query; at first load those are the
// defaults, so items and the filtered view coincide. When fetches overlap,
// whichever resolution lands last wins.
func (s *Store) FinishLoad(items []types.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Items = append([]types.Product(nil), items...)
	s.state.FilteredItems = filterProducts(s.state.Items, s.state.SelectedCategory, s.state.SearchQuery)
	s.state.Status = enums.FetchStatusSucceeded
	s.state.Error = ""
}

// FailLoad records a failed product fetch. The message must describe the
// failure class; the previous catalog contents are kept for retry display.
func (s *Store) FailLoad(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if message == "" {
		message = "failed to fetch products"
	}
	s.state.Status = enums.FetchStatusFailed
	s.state.Error = message
}

// SetCategories installs the fetched vocabulary behind the "all" sentinel.
// Server order is preserved and the list is deliberately not de-duplicated;
// the vocabulary is displayed exactly as the collaborator sent it.
func (s *Store) SetCategories(categories []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := make([]string, 0, len(categories)+1)
	merged = append(merged, AllCategories)
	merged = append(merged, categories...)
	s.state.Categories = merged
}

// SetCategory selects a category and rebuilds the filtered view. The value is
// not validated against the vocabulary; an unknown category simply filters to
// an empty result.
func (s *Store) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedCategory = category
	s.state.FilteredItems = filterProducts(s.state.Items, category, s.state.SearchQuery)
}

// SetSearchQuery stores the query as given and rebuilds the filtered view.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SearchQuery = query
	s.state.FilteredItems = filterProducts(s.state.Items, s.state.SelectedCategory, query)
}

// Snapshot returns a copy of the current state. The slices are cloned so a
// holder can never observe a mutation mid-flight.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.state
	snapshot.Items = append([]types.Product(nil), s.state.Items...)
	snapshot.FilteredItems = append([]types.Product(nil), s.state.FilteredItems...)
	snapshot.Categories = append([]string(nil), s.state.Categories...)
	return snapshot
}

// Status reports the current fetch lifecycle state.
func (s *Store) Status() enums.FetchStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Status
}
