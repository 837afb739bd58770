package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"gleamgallery/internal/models"
	"gleamgallery/internal/services"
	"gleamgallery/internal/validation"
)

type GeneratorHandler struct {
	descriptions *services.DescriptionService
	logger       zerolog.Logger
}

func NewGeneratorHandler(descriptions *services.DescriptionService, logger zerolog.Logger) *GeneratorHandler {
	return &GeneratorHandler{descriptions: descriptions, logger: logger}
}

// GenerateDescription forwards the jewelry attributes to the external
// text-generation service and returns its description.
func (h *GeneratorHandler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	var input models.DescriptionInput
	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
			return
		}
	} else {
		input = models.DescriptionInput{
			Name:      r.FormValue("name"),
			Material:  r.FormValue("material"),
			Gemstones: r.FormValue("gemstones"),
			Style:     r.FormValue("style"),
			Occasion:  r.FormValue("occasion"),
		}
	}

	result := h.descriptions.Generate(r.Context(), input)
	if result.Errors != nil {
		code := http.StatusUnprocessableEntity
		if _, formLevel := result.Errors[validation.FormField]; formLevel {
			code = http.StatusBadGateway
		}
		respondWithJSON(w, code, result)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
