package client

import (
	"context"
	"net/http"

	"github.com/discordpilot/dashboard-server-go/api"
)

type authResponse struct {
	Token string   `json:"token"`
	User  api.User `json:"user"`
}

// Register creates an account and keeps the issued token for subsequent
// calls.
func (c *Client) Register(ctx context.Context, email, password string) (*api.User, error) {
	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*api.User, error) {
	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp.User, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

func (c *Client) Me(ctx context.Context) (*api.User, error) {
	var resp struct {
		User api.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/user/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// UpdateOpenAIKey stores a new API key, or clears it when key is nil.
func (c *Client) UpdateOpenAIKey(ctx context.Context, key *string) (*api.User, error) {
	var resp struct {
		User api.User `json:"user"`
	}
	payload := api.OpenAIKeyPayload{OpenAIAPIKey: key}
	if err := c.do(ctx, http.MethodPatch, "/user/openai-key", payload, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Models fetches the model catalog for the caller's stored key.
func (c *Client) Models(ctx context.Context) ([]string, error) {
	var resp api.ModelList
	if err := c.do(ctx, http.MethodGet, "/models", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Models, nil
}
