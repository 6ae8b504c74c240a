// Package ai wraps the external assistant service as an opaque
// request/response capability. Every call is best-effort: failures surface as
// errors the caller turns into neutral fallbacks, never into blocked saves.
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Config holds the assistant service configuration
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the external assistant service
type Client struct {
	config Config
	http   *http.Client
}

// NewClient creates a new assistant client
func NewClient(config Config) *Client {
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &Client{
		config: config,
		http:   &http.Client{Timeout: config.Timeout},
	}
}

// ImageAnalysis is the best-effort product recognition result. Every field is
// optional; callers must tolerate absent values.
type ImageAnalysis struct {
	Name           string  `json:"name,omitempty"`
	Category       string  `json:"category,omitempty"`
	Unit           string  `json:"unit,omitempty"`
	Size           string  `json:"size,omitempty"`
	EstimatedPrice float64 `json:"estimated_price,omitempty"`
}

// Recipe is one recipe suggestion built from the current inventory
type Recipe struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Difficulty   string   `json:"difficulty"`
	Time         string   `json:"time"`
}

// InventoryLine is a compact item snapshot handed to the assistant as context
type InventoryLine struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// AnalyzeImage submits product photo bytes for recognition
func (c *Client) AnalyzeImage(ctx context.Context, image []byte) (*ImageAnalysis, error) {
	req := map[string]string{"image": base64.StdEncoding.EncodeToString(image)}
	var result ImageAnalysis
	if err := c.post(ctx, "/v1/analyze-image", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Chat sends a free-text message with the inventory snapshot as context
func (c *Client) Chat(ctx context.Context, message string, inventory []InventoryLine) (string, error) {
	req := map[string]interface{}{
		"message":   message,
		"inventory": inventory,
	}
	var result struct {
		Response string `json:"response"`
	}
	if err := c.post(ctx, "/v1/chat", req, &result); err != nil {
		return "", err
	}
	return result.Response, nil
}

// SuggestRecipes asks for recipe ideas based on the inventory snapshot
func (c *Client) SuggestRecipes(ctx context.Context, inventory []InventoryLine) ([]Recipe, error) {
	req := map[string]interface{}{"inventory": inventory}
	var result struct {
		Recipes []Recipe `json:"recipes"`
	}
	if err := c.post(ctx, "/v1/recipes", req, &result); err != nil {
		return nil, err
	}
	return result.Recipes, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("assistant service returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
