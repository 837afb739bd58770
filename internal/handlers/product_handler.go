package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"gleamgallery/internal/models"
	"gleamgallery/internal/services"
	"gleamgallery/internal/validation"
)

var productFieldNames = []string{
	"name", "description", "price", "category",
	"material", "gemstones", "style", "occasion", "imageUrl",
}

type ProductHandler struct {
	products *services.ProductService
	logger   zerolog.Logger
}

func NewProductHandler(products *services.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{products: products, logger: logger}
}

// GetProducts lists the catalog. Optional category/material query
// parameters narrow the result with case-insensitive exact matches.
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	products := h.products.List(query.Get("category"), query.Get("material"))
	respondWithJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	product, ok := h.products.Get(id)
	if !ok {
		respondWithError(w, http.StatusNotFound, "not_found", "Product not found")
		return
	}
	respondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) GetMaterials(w http.ResponseWriter, r *http.Request) {
	materials := h.products.Materials()
	if materials == nil {
		materials = []string{}
	}
	respondWithJSON(w, http.StatusOK, materials)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	fields := formFields(r, productFieldNames...)

	imageURL, err := uploadedImageURL(r)
	if err != nil {
		respondWithJSON(w, http.StatusBadRequest, &models.ProductFormResult{
			Message: err.Error(),
			Errors: map[string][]string{
				validation.FormField: {err.Error()},
				"imageUrl":           {err.Error()},
			},
			Product: services.ProductFromFields(fields),
		})
		return
	}
	if imageURL != "" {
		fields["imageUrl"] = imageURL
	}

	result := h.products.Create(fields)
	if result.Errors != nil {
		respondWithJSON(w, http.StatusUnprocessableEntity, result)
		return
	}
	respondWithJSON(w, http.StatusCreated, result)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	fields := formFields(r, productFieldNames...)

	imageURL, err := uploadedImageURL(r)
	if err != nil {
		respondWithJSON(w, http.StatusBadRequest, &models.ProductFormResult{
			Message: err.Error(),
			Errors: map[string][]string{
				validation.FormField: {err.Error()},
				"imageUrl":           {err.Error()},
			},
			Product: services.ProductFromFields(fields),
		})
		return
	}
	if imageURL != "" {
		fields["imageUrl"] = imageURL
	}

	result, found := h.products.Update(id, fields)
	switch {
	case !found:
		respondWithJSON(w, http.StatusNotFound, result)
	case result.Errors != nil:
		respondWithJSON(w, http.StatusUnprocessableEntity, result)
	default:
		respondWithJSON(w, http.StatusOK, result)
	}
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	result := h.products.Delete(id)
	if !result.Success {
		respondWithJSON(w, http.StatusNotFound, result)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
