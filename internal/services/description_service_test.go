package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gleamgallery/internal/models"
	"gleamgallery/internal/validation"
)

type stubGenerator struct {
	description string
	err         error
}

func (g *stubGenerator) GenerateDescription(ctx context.Context, in models.DescriptionInput) (string, error) {
	return g.description, g.err
}

func ringAttributes() models.DescriptionInput {
	return models.DescriptionInput{
		Name:      "Golden Knot Ring",
		Material:  "Gold",
		Gemstones: "None",
		Style:     "Classic",
		Occasion:  "Everyday",
	}
}

func TestGeneratePassesThroughDescription(t *testing.T) {
	s := NewDescriptionService(&stubGenerator{description: "A timeless golden knot."}, zerolog.Nop())

	result := s.Generate(context.Background(), ringAttributes())
	require.Nil(t, result.Errors)
	assert.Equal(t, "A timeless golden knot.", result.Description)
	assert.Equal(t, "Description generated successfully!", result.Message)
}

func TestGenerateRejectsIncompleteInput(t *testing.T) {
	s := NewDescriptionService(&stubGenerator{description: "unused"}, zerolog.Nop())

	result := s.Generate(context.Background(), models.DescriptionInput{Name: "Ring"})
	require.NotNil(t, result.Errors)
	assert.Contains(t, result.Errors, "material")
	assert.Empty(t, result.Description)
}

func TestGenerateMapsFailureToFormError(t *testing.T) {
	s := NewDescriptionService(&stubGenerator{err: errors.New("upstream down")}, zerolog.Nop())

	result := s.Generate(context.Background(), ringAttributes())
	require.NotNil(t, result.Errors)
	assert.Equal(t, []string{"AI service error."}, result.Errors[validation.FormField])
	assert.Empty(t, result.Description)
	assert.Equal(t, "Failed to generate AI description. Please try again.", result.Message)
}
