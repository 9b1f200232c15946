package client

import (
	"context"
	"net/http"

	"github.com/discordpilot/dashboard-server-go/api"
)

// ValidationError is a chat configuration rejected locally, before any
// request is dispatched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

func (c *Client) ListChats(ctx context.Context, accountID string) ([]api.ChatSession, error) {
	var resp struct {
		Chats []api.ChatSession `json:"chats"`
	}
	if err := c.do(ctx, http.MethodGet, "/discord-accounts/"+accountID+"/chats", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Chats, nil
}

// CreateChat validates the draft locally and dispatches only when it
// passes. The created session always comes back stopped regardless of the
// draft's content.
func (c *Client) CreateChat(ctx context.Context, accountID string, draft api.ChatSessionDraft) (*api.ChatSession, error) {
	if fieldErr := draft.Validate(); fieldErr != nil {
		return nil, &ValidationError{Field: fieldErr.Field, Reason: fieldErr.Reason}
	}

	var resp struct {
		Chat api.ChatSession `json:"chat"`
	}
	if err := c.do(ctx, http.MethodPost, "/discord-accounts/"+accountID+"/chats", draft.Payload(), &resp); err != nil {
		return nil, err
	}
	return &resp.Chat, nil
}

// UpdateChat sends a partial edit; the server merges it onto the stored
// record and validates the result.
func (c *Client) UpdateChat(ctx context.Context, accountID, chatID string, patch api.ChatPatch) (*api.ChatSession, error) {
	var resp struct {
		Chat api.ChatSession `json:"chat"`
	}
	if err := c.do(ctx, http.MethodPatch, "/discord-accounts/"+accountID+"/chats/"+chatID, patch, &resp); err != nil {
		return nil, err
	}
	return &resp.Chat, nil
}

// UpdateChatStatus is the narrow patch behind the start/stop toggle.
func (c *Client) UpdateChatStatus(ctx context.Context, accountID, chatID string, status api.ChatStatus) (*api.ChatSession, error) {
	return c.UpdateChat(ctx, accountID, chatID, api.ChatPatch{Status: &status})
}

func (c *Client) DeleteChat(ctx context.Context, accountID, chatID string) error {
	return c.do(ctx, http.MethodDelete, "/discord-accounts/"+accountID+"/chats/"+chatID, nil, nil)
}
