package store

import (
	"sync"

	"gleamgallery/internal/models"
)

// ProductStore is the in-process source of truth for products. It holds
// no durable state: a fresh store is seeded on every cold start. A mutex
// serializes mutation so concurrent requests cannot interleave a
// read-modify-write.
type ProductStore struct {
	mu       sync.Mutex
	products []models.Product
}

func NewProductStore(seed []models.Product) *ProductStore {
	products := make([]models.Product, len(seed))
	copy(products, seed)
	return &ProductStore{products: products}
}

// All returns every product in insertion order. The result is a copy;
// callers may mutate it freely.
func (s *ProductStore) All() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id. A missing id is a normal
// outcome, not an error.
func (s *ProductStore) Get(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Add assigns a fresh id, appends the product and returns the stored copy.
func (s *ProductStore) Add(in models.ProductInput) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := models.Product{
		ID:          newID("prod"),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Material:    in.Material,
		Gemstones:   in.Gemstones,
		Style:       in.Style,
		Occasion:    in.Occasion,
	}
	s.products = append(s.products, product)
	return product
}

// Update merges the set fields of patch onto the stored record. Fields
// left nil are preserved and the id never changes.
func (s *ProductStore) Update(id string, patch models.ProductPatch) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.ImageURL != nil {
			p.ImageURL = *patch.ImageURL
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Material != nil {
			p.Material = *patch.Material
		}
		if patch.Gemstones != nil {
			p.Gemstones = *patch.Gemstones
		}
		if patch.Style != nil {
			p.Style = *patch.Style
		}
		if patch.Occasion != nil {
			p.Occasion = *patch.Occasion
		}
		return *p, true
	}
	return models.Product{}, false
}

// Delete removes the product with the given id. It reports whether a
// record was actually removed.
func (s *ProductStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

// Materials returns the distinct materials across the current products,
// in first-seen order.
func (s *ProductStore) Materials() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.products))
	var out []string
	for _, p := range s.products {
		if _, ok := seen[p.Material]; ok {
			continue
		}
		seen[p.Material] = struct{}{}
		out = append(out, p.Material)
	}
	return out
}
