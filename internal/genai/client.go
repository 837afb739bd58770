package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"gleamgallery/internal/models"
)

// Client calls a generateContent-style text endpoint. It is a plain
// passthrough: no retry, no caching.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	logger     zerolog.Logger
}

func NewClient(endpoint, apiKey string, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		endpoint:   endpoint,
		apiKey:     apiKey,
		logger:     logger,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateDescription asks the model for a product description built
// from the jewelry attributes. The request context is honored; no
// client-side timeout is imposed beyond it.
func (c *Client) GenerateDescription(ctx context.Context, in models.DescriptionInput) (string, error) {
	prompt := fmt.Sprintf(`You are a jewelry description expert.

Based on the attributes of the jewelry, create an engaging and detailed description.

Name: %s
Material: %s
Gemstones: %s
Style: %s
Occasion: %s

Description:`, in.Name, in.Material, in.Gemstones, in.Style, in.Occasion)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-goog-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling generation endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("Generation endpoint returned non-OK status")
		return "", fmt.Errorf("generation endpoint returned status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decoding generation response: %w", err)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("generation response contained no candidates")
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
