package services

import (
	"github.com/rs/zerolog"

	"gleamgallery/internal/models"
	"gleamgallery/internal/store"
	"gleamgallery/internal/validation"
)

const placeholderCategoryImage = "https://placehold.co/400x300.png"

type CategoryService struct {
	categories *store.CategoryStore
	logger     zerolog.Logger
}

func NewCategoryService(categories *store.CategoryStore, logger zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, logger: logger}
}

func (s *CategoryService) List() []models.Category {
	return s.categories.All()
}

func (s *CategoryService) Get(id string) (models.Category, bool) {
	return s.categories.Get(id)
}

func (s *CategoryService) Create(fields map[string]string) *models.CategoryFormResult {
	if fields["imageUrl"] == "" {
		fields["imageUrl"] = placeholderCategoryImage
	}

	input, errs := validation.Category(fields)
	if errs.Any() {
		return &models.CategoryFormResult{
			Message: "Failed to add category. Please check the errors below.",
			Errors:  errs,
			Category: &models.Category{
				Name:        fields["name"],
				Description: fields["description"],
				ImageURL:    fields["imageUrl"],
			},
		}
	}

	category := s.categories.Add(input)
	s.logger.Info().Str("category_id", category.ID).Str("name", category.Name).Msg("Category created")
	return &models.CategoryFormResult{Message: "Category added successfully!"}
}

// Update merges the submitted fields onto the stored record. The second
// result reports whether the category existed.
func (s *CategoryService) Update(id string, fields map[string]string) (*models.CategoryFormResult, bool) {
	existing, ok := s.categories.Get(id)
	if !ok {
		return &models.CategoryFormResult{
			Message: "Category not found for update.",
			Errors:  map[string][]string{validation.FormField: {"Category not found."}},
		}, false
	}

	if fields["imageUrl"] == "" {
		fields["imageUrl"] = existing.ImageURL
	}

	input, errs := validation.Category(fields)
	if errs.Any() {
		return &models.CategoryFormResult{
			Message: "Failed to update category. Please check the errors below.",
			Errors:  errs,
			Category: &models.Category{
				Name:        fields["name"],
				Description: fields["description"],
				ImageURL:    existing.ImageURL,
			},
		}, true
	}

	updated, ok := s.categories.Update(id, input.Patch())
	if !ok {
		return &models.CategoryFormResult{
			Message: "Category not found for update.",
			Errors:  map[string][]string{validation.FormField: {"Category not found."}},
		}, false
	}

	s.logger.Info().Str("category_id", id).Msg("Category updated")
	return &models.CategoryFormResult{Message: "Category updated successfully!", Category: &updated}, true
}

func (s *CategoryService) Delete(id string) *models.DeleteResult {
	if !s.categories.Delete(id) {
		return &models.DeleteResult{Message: "Failed to delete category. Category not found.", Success: false}
	}
	s.logger.Info().Str("category_id", id).Msg("Category deleted")
	return &models.DeleteResult{Message: "Category deleted successfully.", Success: true}
}
