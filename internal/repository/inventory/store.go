package repository

import (
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/you-humble/parts-inventory/internal/model"
)

// Store holds every part and product in insertion order. Lookups are linear
// scans. Misses are reported with ok=false, -1 or an empty slice, never an
// error.
//
// Store is safe for concurrent use. The entities it hands out are shared;
// callers replace them through ReplacePart/ReplaceProduct instead of mutating
// them in place.
type Store struct {
	mu       sync.RWMutex
	parts    []*model.Part
	products []*model.Product
	autoID   int
}

func NewStore() *Store {
	return &Store{
		parts:    make([]*model.Part, 0),
		products: make([]*model.Product, 0),
	}
}

// NextID returns the next id. The counter is shared by parts and products;
// the first call returns 1.
func (s *Store) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.autoID++
	return s.autoID
}

func (s *Store) AddPart(p *model.Part) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.parts = append(s.parts, p)
}

func (s *Store) AddProduct(p *model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, p)
}

func (s *Store) PartByID(id int) (*model.Part, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Find(s.parts, func(p *model.Part) bool { return p.ID() == id })
}

func (s *Store) ProductByID(id int) (*model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Find(s.products, func(p *model.Product) bool { return p.ID() == id })
}

// PartsByName returns parts whose name contains query, ignoring case.
// An empty query matches everything.
func (s *Store) PartsByName(query string) []*model.Part {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	return lo.Filter(s.parts, func(p *model.Part, _ int) bool {
		return strings.Contains(strings.ToLower(p.Name), q)
	})
}

func (s *Store) ProductsByName(query string) []*model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	return lo.Filter(s.products, func(p *model.Product, _ int) bool {
		return strings.Contains(strings.ToLower(p.Name), q)
	})
}

// UpdatePart overwrites the slot at index. The index must come from PartIndex
// with no intervening changes; a stale index replaces the wrong part.
func (s *Store) UpdatePart(index int, p *model.Part) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.parts) {
		return false
	}
	s.parts[index] = p
	return true
}

func (s *Store) UpdateProduct(index int, p *model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.products) {
		return false
	}
	s.products[index] = p
	return true
}

// ReplacePart swaps the first part with the given id for p, keeping its
// position.
func (s *Store) ReplacePart(id int, p *model.Part) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, i, ok := lo.FindIndexOf(s.parts, func(item *model.Part) bool { return item.ID() == id })
	if !ok {
		return false
	}
	s.parts[i] = p
	return true
}

func (s *Store) ReplaceProduct(id int, p *model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, i, ok := lo.FindIndexOf(s.products, func(item *model.Product) bool { return item.ID() == id })
	if !ok {
		return false
	}
	s.products[i] = p
	return true
}

// DeletePart removes p. Products that reference p keep their reference.
func (s *Store) DeletePart(p *model.Part) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := lo.IndexOf(s.parts, p)
	if i < 0 {
		return false
	}
	s.parts = append(s.parts[:i:i], s.parts[i+1:]...)
	return true
}

func (s *Store) DeleteProduct(p *model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := lo.IndexOf(s.products, p)
	if i < 0 {
		return false
	}
	s.products = append(s.products[:i:i], s.products[i+1:]...)
	return true
}

// Parts returns a copy of the part list.
func (s *Store) Parts() []*model.Part {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Part, len(s.parts))
	copy(out, s.parts)
	return out
}

// Products returns a copy of the product list.
func (s *Store) Products() []*model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) PartIndex(p *model.Part) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.IndexOf(s.parts, p)
}

func (s *Store) ProductIndex(p *model.Product) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.IndexOf(s.products, p)
}
