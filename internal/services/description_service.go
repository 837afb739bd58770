package services

import (
	"context"

	"github.com/rs/zerolog"

	"gleamgallery/internal/models"
	"gleamgallery/internal/validation"
)

// DescriptionGenerator is the external text-generation capability:
// jewelry attributes in, description out. May fail for any reason.
type DescriptionGenerator interface {
	GenerateDescription(ctx context.Context, in models.DescriptionInput) (string, error)
}

type DescriptionService struct {
	generator DescriptionGenerator
	logger    zerolog.Logger
}

func NewDescriptionService(generator DescriptionGenerator, logger zerolog.Logger) *DescriptionService {
	return &DescriptionService{generator: generator, logger: logger}
}

// Generate validates the attributes and forwards them to the generator.
// Any generator failure becomes a generic form-level error; there is no
// retry and no partial result.
func (s *DescriptionService) Generate(ctx context.Context, in models.DescriptionInput) *models.DescriptionFormResult {
	if errs := validation.Description(in); errs.Any() {
		return &models.DescriptionFormResult{
			Message: "Invalid input for AI description.",
			Errors:  errs,
			Input:   &in,
		}
	}

	description, err := s.generator.GenerateDescription(ctx, in)
	if err != nil {
		s.logger.Error().Err(err).Msg("AI description generation error")
		return &models.DescriptionFormResult{
			Message: "Failed to generate AI description. Please try again.",
			Errors:  map[string][]string{validation.FormField: {"AI service error."}},
			Input:   &in,
		}
	}

	return &models.DescriptionFormResult{
		Description: description,
		Message:     "Description generated successfully!",
		Input:       &in,
	}
}
