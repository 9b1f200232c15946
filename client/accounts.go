package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/discordpilot/dashboard-server-go/api"
)

// ListAll fetches the caller's Discord accounts. The directory holds no
// cache: every mutation is followed by a fresh ListAll instead of patching
// a local copy.
func (c *Client) ListAll(ctx context.Context) ([]api.DiscordAccount, error) {
	var resp struct {
		Accounts []api.DiscordAccount `json:"accounts"`
	}
	if err := c.do(ctx, http.MethodGet, "/discord-accounts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

func (c *Client) CreateAccount(ctx context.Context, name, token string) (*api.DiscordAccount, error) {
	var resp struct {
		Account api.DiscordAccount `json:"account"`
	}
	payload := api.AccountPayload{Name: name, AccountToken: token}
	if err := c.do(ctx, http.MethodPost, "/discord-accounts", payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Account, nil
}

// UpdateAccount edits an account's name and token. When neither field
// differs from current, nothing is dispatched and ErrNoChanges is
// returned; a dispatch would re-verify the token against Discord for no
// reason.
func (c *Client) UpdateAccount(ctx context.Context, current *api.DiscordAccount, name, token string) (*api.DiscordAccount, error) {
	if current == nil {
		return nil, errors.New("update account: no current record")
	}
	if current.Name == name && current.AccountToken == token {
		return nil, ErrNoChanges
	}

	var resp struct {
		Account api.DiscordAccount `json:"account"`
	}
	payload := api.AccountPayload{Name: name, AccountToken: token}
	if err := c.do(ctx, http.MethodPatch, "/discord-accounts/"+current.ID, payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Account, nil
}

func (c *Client) DeleteAccount(ctx context.Context, accountID string) error {
	return c.do(ctx, http.MethodDelete, "/discord-accounts/"+accountID, nil, nil)
}
