package store

import (
	"sync"

	"gleamgallery/internal/models"
)

// CategoryStore mirrors ProductStore for categories. Product.Category is
// a soft name reference into this store: deleting or renaming a category
// does not touch products, so orphaned references are possible and
// accepted.
type CategoryStore struct {
	mu         sync.Mutex
	categories []models.Category
}

func NewCategoryStore(seed []models.Category) *CategoryStore {
	categories := make([]models.Category, len(seed))
	copy(categories, seed)
	return &CategoryStore{categories: categories}
}

func (s *CategoryStore) All() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *CategoryStore) Get(id string) (models.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

func (s *CategoryStore) Add(in models.CategoryInput) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := models.Category{
		ID:          newID("cat"),
		Name:        in.Name,
		ImageURL:    in.ImageURL,
		Description: in.Description,
	}
	s.categories = append(s.categories, category)
	return category
}

func (s *CategoryStore) Update(id string, patch models.CategoryPatch) (models.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		c := &s.categories[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.ImageURL != nil {
			c.ImageURL = *patch.ImageURL
		}
		if patch.Description != nil {
			c.Description = *patch.Description
		}
		return *c, true
	}
	return models.Category{}, false
}

func (s *CategoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return true
		}
	}
	return false
}
