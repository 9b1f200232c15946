// Package openai talks to the OpenAI API with a user-supplied key. The
// dashboard only needs the model catalog; key verification is a catalog
// fetch that succeeds.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/discordpilot/dashboard-server-go/internal/errors"
	"github.com/discordpilot/dashboard-server-go/internal/config"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type modelsResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: config.VerifierHTTPTimeout},
	}
}

// ListModels fetches the model catalog authorized by apiKey. A 401 from the
// API maps to the distinguishable invalid-key error; anything else is a
// generic external failure.
func (c *Client) ListModels(ctx context.Context, apiKey string) ([]string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, apperrors.InvalidAPIKey()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/models", nil)
	if err != nil {
		return nil, apperrors.External("openai", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, apperrors.External("openai", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, apperrors.InvalidAPIKey()
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return nil, apperrors.External("openai", fmt.Errorf("list models: %s", msg))
	}

	var decoded modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, apperrors.External("openai", err)
	}
	if decoded.Error != nil && decoded.Error.Message != "" {
		return nil, apperrors.External("openai", fmt.Errorf("%s", decoded.Error.Message))
	}

	models := make([]string, 0, len(decoded.Data))
	for _, m := range decoded.Data {
		models = append(models, m.ID)
	}
	return models, nil
}

// VerifyKey reports whether apiKey is accepted by the API.
func (c *Client) VerifyKey(ctx context.Context, apiKey string) error {
	_, err := c.ListModels(ctx, apiKey)
	return err
}
