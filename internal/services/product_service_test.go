package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gleamgallery/internal/store"
	"gleamgallery/internal/validation"
)

func newProductService() *ProductService {
	return NewProductService(store.NewProductStore(store.SeedProducts()), zerolog.Nop())
}

func ringFields() map[string]string {
	return map[string]string{
		"name":        "Test Ring",
		"description": "A lovely ring for testing purposes",
		"price":       "100",
		"imageUrl":    "https://example.com/x.png",
		"category":    "Rings",
		"material":    "Gold",
		"gemstones":   "None",
		"style":       "Classic",
		"occasion":    "Everyday",
	}
}

func TestListFiltersCaseInsensitively(t *testing.T) {
	s := newProductService()

	rings := s.List("rings", "")
	require.Len(t, rings, 2)
	for _, p := range rings {
		assert.Equal(t, "Rings", p.Category)
	}

	goldRings := s.List("RINGS", "gold")
	require.Len(t, goldRings, 2)

	assert.Empty(t, s.List("Rings", "Platinum"))
	assert.Len(t, s.List("", ""), 6)
}

func TestCreateUsesPlaceholderWhenNoImage(t *testing.T) {
	s := newProductService()

	fields := ringFields()
	fields["imageUrl"] = ""
	result := s.Create(fields)

	require.Nil(t, result.Errors)
	assert.Equal(t, "Product added successfully!", result.Message)

	products := s.List("", "")
	last := products[len(products)-1]
	assert.Equal(t, placeholderProductImage, last.ImageURL)
}

func TestCreateReturnsErrorsAndRepopulation(t *testing.T) {
	s := newProductService()

	fields := ringFields()
	fields["name"] = "ab"
	fields["price"] = "-1"
	result := s.Create(fields)

	require.NotNil(t, result.Errors)
	assert.Contains(t, result.Errors, "name")
	assert.Contains(t, result.Errors, "price")
	require.NotNil(t, result.Product)
	assert.Equal(t, "ab", result.Product.Name)

	// Nothing was stored.
	assert.Len(t, s.List("", ""), 6)
}

func TestUpdateRetainsExistingImageWhenNoneUploaded(t *testing.T) {
	s := newProductService()

	fields := ringFields()
	fields["imageUrl"] = ""
	result, found := s.Update("prod1", fields)

	require.True(t, found)
	require.Nil(t, result.Errors)
	assert.Equal(t, "https://placehold.co/600x400.png", result.Product.ImageURL)
	assert.Equal(t, "prod1", result.Product.ID)
}

func TestUpdateMissingProduct(t *testing.T) {
	s := newProductService()

	result, found := s.Update("prod-missing", ringFields())
	assert.False(t, found)
	assert.Contains(t, result.Errors, validation.FormField)
}

func TestDeleteResult(t *testing.T) {
	s := newProductService()

	assert.True(t, s.Delete("prod1").Success)
	assert.False(t, s.Delete("prod1").Success)
}
