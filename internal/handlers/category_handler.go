package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"gleamgallery/internal/models"
	"gleamgallery/internal/services"
	"gleamgallery/internal/validation"
)

var categoryFieldNames = []string{"name", "description", "imageUrl"}

type CategoryHandler struct {
	categories *services.CategoryService
	logger     zerolog.Logger
}

func NewCategoryHandler(categories *services.CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, logger: logger}
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.categories.List())
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	category, ok := h.categories.Get(id)
	if !ok {
		respondWithError(w, http.StatusNotFound, "not_found", "Category not found")
		return
	}
	respondWithJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	fields := formFields(r, categoryFieldNames...)

	imageURL, err := uploadedImageURL(r)
	if err != nil {
		respondWithJSON(w, http.StatusBadRequest, categoryImageError(err, fields))
		return
	}
	if imageURL != "" {
		fields["imageUrl"] = imageURL
	}

	result := h.categories.Create(fields)
	if result.Errors != nil {
		respondWithJSON(w, http.StatusUnprocessableEntity, result)
		return
	}
	respondWithJSON(w, http.StatusCreated, result)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	fields := formFields(r, categoryFieldNames...)

	imageURL, err := uploadedImageURL(r)
	if err != nil {
		respondWithJSON(w, http.StatusBadRequest, categoryImageError(err, fields))
		return
	}
	if imageURL != "" {
		fields["imageUrl"] = imageURL
	}

	result, found := h.categories.Update(id, fields)
	switch {
	case !found:
		respondWithJSON(w, http.StatusNotFound, result)
	case result.Errors != nil:
		respondWithJSON(w, http.StatusUnprocessableEntity, result)
	default:
		respondWithJSON(w, http.StatusOK, result)
	}
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	result := h.categories.Delete(id)
	if !result.Success {
		respondWithJSON(w, http.StatusNotFound, result)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

func categoryImageError(err error, fields map[string]string) *models.CategoryFormResult {
	return &models.CategoryFormResult{
		Message: err.Error(),
		Errors: map[string][]string{
			validation.FormField: {err.Error()},
			"imageUrl":           {err.Error()},
		},
		Category: &models.Category{
			Name:        fields["name"],
			Description: fields["description"],
			ImageURL:    fields["imageUrl"],
		},
	}
}
