// Package store holds all application state: service requests, employees,
// the marketplace catalog, the food menu and the shopping cart. It is the
// only place these collections are mutated; handlers and services receive a
// *Store and never fabricate ids or timestamps themselves.
package store

import (
	"sync"
	"time"

	"quicklink/models"
)

// Store is the single owner of all mutable collections. Reads return copies,
// so concurrent consumers always observe a consistent snapshot.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	requests  []models.Request
	employees []models.Employee
	products  []models.Product
	foodItems []models.FoodItem
	cart      []models.CartItem
	services  []models.Service

	// Monotonic id counters, seeded from the initial data and never tied to
	// slice length again, so numbering stays stable if deletion ever lands.
	requestSeq  int
	employeeSeq int
	productSeq  int
	foodSeq     int

	// Ancillary UI state carried for the admin screens.
	adminMode  bool
	selectedID string
}

// snapshot copies a collection so callers never hold store-owned state.
// The result is non-nil even when the collection is empty, so it always
// serializes as a JSON array.
func snapshot[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a Store from seed data. The seed slices are copied; the caller
// keeps no handle into store-owned state.
func New(seed Seed, opts ...Option) *Store {
	s := &Store{
		now:         time.Now,
		requests:    append([]models.Request(nil), seed.Requests...),
		employees:   append([]models.Employee(nil), seed.Employees...),
		products:    append([]models.Product(nil), seed.Products...),
		foodItems:   append([]models.FoodItem(nil), seed.FoodItems...),
		services:    append([]models.Service(nil), seed.Services...),
		requestSeq:  len(seed.Requests),
		employeeSeq: len(seed.Employees),
		productSeq:  len(seed.Products),
		foodSeq:     len(seed.FoodItems),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Services returns the fixed errand-services catalog.
func (s *Store) Services() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.services)
}

// SetAdminMode toggles the admin surface on or off.
func (s *Store) SetAdminMode(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminMode = enabled
}

// AdminMode reports whether the admin surface is enabled.
func (s *Store) AdminMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adminMode
}

// SelectRequest records the request the admin screens are focused on.
// An empty id clears the selection; an unknown id reports false and keeps
// the previous selection.
func (s *Store) SelectRequest(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		s.selectedID = ""
		return true
	}
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.selectedID = id
			return true
		}
	}
	return false
}

// SelectedRequest returns the currently focused request, if any.
func (s *Store) SelectedRequest() (models.Request, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedID == "" {
		return models.Request{}, false
	}
	for i := range s.requests {
		if s.requests[i].ID == s.selectedID {
			return s.requests[i], true
		}
	}
	return models.Request{}, false
}
