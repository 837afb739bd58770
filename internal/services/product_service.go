package services

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"gleamgallery/internal/models"
	"gleamgallery/internal/store"
	"gleamgallery/internal/validation"
)

const placeholderProductImage = "https://placehold.co/600x400.png"

type ProductService struct {
	products *store.ProductStore
	logger   zerolog.Logger
}

func NewProductService(products *store.ProductStore, logger zerolog.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

// List returns the catalog, optionally narrowed by category and material.
// Filters are case-insensitive exact matches on the field values.
func (s *ProductService) List(category, material string) []models.Product {
	products := s.products.All()
	if category == "" && material == "" {
		return products
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if material != "" && !strings.EqualFold(p.Material, material) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func (s *ProductService) Get(id string) (models.Product, bool) {
	return s.products.Get(id)
}

func (s *ProductService) Materials() []string {
	return s.products.Materials()
}

// Create validates the submitted fields and appends a new product. When
// no image was uploaded the placeholder URL is used.
func (s *ProductService) Create(fields map[string]string) *models.ProductFormResult {
	if fields["imageUrl"] == "" {
		fields["imageUrl"] = placeholderProductImage
	}

	input, errs := validation.Product(fields)
	if errs.Any() {
		return &models.ProductFormResult{
			Message: "Failed to add product. Please check the errors below.",
			Errors:  errs,
			Product: ProductFromFields(fields),
		}
	}

	product := s.products.Add(input)
	s.logger.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("Product created")
	return &models.ProductFormResult{Message: "Product added successfully!"}
}

// Update validates the submitted fields and merges them onto the stored
// record. When no image was uploaded the existing URL is retained. The
// second result reports whether the product existed.
func (s *ProductService) Update(id string, fields map[string]string) (*models.ProductFormResult, bool) {
	existing, ok := s.products.Get(id)
	if !ok {
		return &models.ProductFormResult{
			Message: "Product not found for update.",
			Errors:  map[string][]string{validation.FormField: {"Product not found."}},
		}, false
	}

	if fields["imageUrl"] == "" {
		fields["imageUrl"] = existing.ImageURL
	}

	input, errs := validation.Product(fields)
	if errs.Any() {
		repop := ProductFromFields(fields)
		repop.ImageURL = existing.ImageURL
		return &models.ProductFormResult{
			Message: "Failed to update product. Please check the errors below.",
			Errors:  errs,
			Product: repop,
		}, true
	}

	updated, ok := s.products.Update(id, input.Patch())
	if !ok {
		return &models.ProductFormResult{
			Message: "Product not found for update.",
			Errors:  map[string][]string{validation.FormField: {"Product not found."}},
		}, false
	}

	s.logger.Info().Str("product_id", id).Msg("Product updated")
	return &models.ProductFormResult{Message: "Product updated successfully!", Product: &updated}, true
}

func (s *ProductService) Delete(id string) *models.DeleteResult {
	if !s.products.Delete(id) {
		return &models.DeleteResult{Message: "Failed to delete product. Product not found.", Success: false}
	}
	s.logger.Info().Str("product_id", id).Msg("Product deleted")
	return &models.DeleteResult{Message: "Product deleted successfully.", Success: true}
}

// ProductFromFields builds a best-effort record from raw form values so
// a rejected form can be repopulated.
func ProductFromFields(fields map[string]string) *models.Product {
	price, _ := strconv.ParseFloat(strings.TrimSpace(fields["price"]), 64)
	return &models.Product{
		Name:        fields["name"],
		Description: fields["description"],
		Price:       price,
		ImageURL:    fields["imageUrl"],
		Category:    fields["category"],
		Material:    fields["material"],
		Gemstones:   fields["gemstones"],
		Style:       fields["style"],
		Occasion:    fields["occasion"],
	}
}
