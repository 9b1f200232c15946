// Package discord verifies user-account tokens against the Discord API.
// The dashboard never sends messages; delivery belongs to the external
// responder worker.
package discord

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/discordpilot/dashboard-server-go/internal/config"
	apperrors "github.com/discordpilot/dashboard-server-go/internal/errors"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://discord.com/api/v10"
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: config.VerifierHTTPTimeout},
	}
}

// VerifyToken checks that token authenticates against the identity
// endpoint. 401 and 403 map to the distinguishable invalid-token error so
// the dashboard can show its dedicated message.
func (c *Client) VerifyToken(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return apperrors.InvalidDiscordToken()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/users/@me", nil)
	if err != nil {
		return apperrors.External("discord", err)
	}
	req.Header.Set("Authorization", token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return apperrors.External("discord", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return apperrors.InvalidDiscordToken()
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return apperrors.External("discord", fmt.Errorf("verify token: %s", msg))
	}
}
