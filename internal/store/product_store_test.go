package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gleamgallery/internal/models"
)

func testRing() models.ProductInput {
	return models.ProductInput{
		Name:        "Test Ring",
		Description: "A lovely ring for testing purposes",
		Price:       100,
		ImageURL:    "https://example.com/x.png",
		Category:    "Rings",
		Material:    "Gold",
		Gemstones:   "None",
		Style:       "Classic",
		Occasion:    "Everyday",
	}
}

func TestAllReturnsSeedInInsertionOrder(t *testing.T) {
	s := NewProductStore(SeedProducts())

	products := s.All()
	require.Len(t, products, 6)
	assert.Equal(t, "prod1", products[0].ID)
	assert.Equal(t, "prod6", products[5].ID)
}

func TestAllIsIdempotentWithoutMutation(t *testing.T) {
	s := NewProductStore(SeedProducts())

	first := s.All()
	second := s.All()
	assert.Equal(t, first, second)
}

func TestAllReturnsDefensiveCopy(t *testing.T) {
	s := NewProductStore(SeedProducts())

	products := s.All()
	products[0].Name = "Vandalized"

	fresh, ok := s.Get("prod1")
	require.True(t, ok)
	assert.Equal(t, "Seraphina Diamond Necklace", fresh.Name)
}

func TestAddAssignsDistinctIDs(t *testing.T) {
	s := NewProductStore(nil)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		p := s.Add(testRing())
		_, dup := seen[p.ID]
		require.False(t, dup, "duplicate id %s", p.ID)
		seen[p.ID] = struct{}{}
	}
}

func TestAddAppendsToEnd(t *testing.T) {
	s := NewProductStore(SeedProducts())

	added := s.Add(testRing())

	products := s.All()
	assert.Equal(t, added.ID, products[len(products)-1].ID)
}

func TestGetMissingIDIsNotFound(t *testing.T) {
	s := NewProductStore(SeedProducts())

	_, ok := s.Get("prod-does-not-exist")
	assert.False(t, ok)
}

func TestUpdatePreservesIdentityAndOtherFields(t *testing.T) {
	s := NewProductStore(SeedProducts())

	before, ok := s.Get("prod2")
	require.True(t, ok)

	price := 999.0
	updated, ok := s.Update("prod2", models.ProductPatch{Price: &price})
	require.True(t, ok)

	assert.Equal(t, before.ID, updated.ID)
	assert.Equal(t, 999.0, updated.Price)

	expected := before
	expected.Price = 999
	assert.Equal(t, expected, updated)
}

func TestUpdateMissingIDIsNotFound(t *testing.T) {
	s := NewProductStore(SeedProducts())

	price := 1.0
	_, ok := s.Update("nope", models.ProductPatch{Price: &price})
	assert.False(t, ok)
}

func TestDeleteIsFinalAndIdempotentOnAbsence(t *testing.T) {
	s := NewProductStore(SeedProducts())

	assert.True(t, s.Delete("prod3"))
	assert.False(t, s.Delete("prod3"))

	_, ok := s.Get("prod3")
	assert.False(t, ok)
}

func TestMaterialsDistinctFirstSeenOrder(t *testing.T) {
	s := NewProductStore(SeedProducts())

	// prod2 and prod6 share "Gold"; it must appear once.
	assert.Equal(t,
		[]string{"Platinum", "Gold", "White Gold", "Rose Gold", "Silver"},
		s.Materials())
}

func TestProductLifecycleEndToEnd(t *testing.T) {
	s := NewProductStore(nil)

	added := s.Add(testRing())
	stored, ok := s.Get(added.ID)
	require.True(t, ok)
	assert.Equal(t, "Test Ring", stored.Name)

	price := 150.0
	_, ok = s.Update(added.ID, models.ProductPatch{Price: &price})
	require.True(t, ok)

	stored, ok = s.Get(added.ID)
	require.True(t, ok)
	assert.Equal(t, 150.0, stored.Price)

	require.True(t, s.Delete(added.ID))
	_, ok = s.Get(added.ID)
	assert.False(t, ok)
}
