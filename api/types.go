// Package api defines the wire contract shared by the dashboard server and
// its clients: the record types, partial-update payloads, and the chat
// session draft validation rules.
package api

type ChatStatus string

const (
	ChatStatusStopped ChatStatus = "stopped"
	ChatStatusActive  ChatStatus = "active"
)

type User struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	OpenAIAPIKey *string `json:"openai_api_key,omitempty"`
}

type DiscordAccount struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	AccountToken string `json:"accountToken"`
}

type ChatSession struct {
	ID               string     `json:"id"`
	DiscordAccountID string     `json:"discordAccountId"`
	Name             string     `json:"name"`
	DiscordChatID    string     `json:"discordChatId"`
	MinInterval      int        `json:"min_interval"`
	MaxInterval      int        `json:"max_interval"`
	SystemPrompt     string     `json:"prompt_system"`
	UserPrompt       string     `json:"prompt_user"`
	MaxTokens        int        `json:"max_tokens"`
	Temperature      float64    `json:"temperature"`
	Model            string     `json:"gpt_model"`
	Status           ChatStatus `json:"status"`
}

type AccountPayload struct {
	Name         string `json:"name"`
	AccountToken string `json:"accountToken"`
}

// ChatPayload is the create body for a chat session. Status is absent on
// purpose: new sessions always start stopped and the server enforces that.
type ChatPayload struct {
	Name          string  `json:"name"`
	DiscordChatID string  `json:"discordChatId"`
	MinInterval   int     `json:"min_interval"`
	MaxInterval   int     `json:"max_interval"`
	SystemPrompt  string  `json:"prompt_system"`
	UserPrompt    string  `json:"prompt_user"`
	MaxTokens     int     `json:"max_tokens"`
	Temperature   float64 `json:"temperature"`
	Model         string  `json:"gpt_model"`
}

// ChatPatch is a partial update. Nil fields are left unchanged by the
// server; the status toggle sends a patch with only Status set.
type ChatPatch struct {
	Name          *string     `json:"name,omitempty"`
	DiscordChatID *string     `json:"discordChatId,omitempty"`
	MinInterval   *int        `json:"min_interval,omitempty"`
	MaxInterval   *int        `json:"max_interval,omitempty"`
	SystemPrompt  *string     `json:"prompt_system,omitempty"`
	UserPrompt    *string     `json:"prompt_user,omitempty"`
	MaxTokens     *int        `json:"max_tokens,omitempty"`
	Temperature   *float64    `json:"temperature,omitempty"`
	Model         *string     `json:"gpt_model,omitempty"`
	Status        *ChatStatus `json:"status,omitempty"`
}

type OpenAIKeyPayload struct {
	OpenAIAPIKey *string `json:"openai_api_key"`
}

type ModelList struct {
	Models []string `json:"models"`
}

// PickModel returns selected if it is present in the catalog, otherwise the
// catalog's first entry. An empty catalog yields "".
func PickModel(catalog []string, selected string) string {
	for _, m := range catalog {
		if m == selected {
			return selected
		}
	}
	if len(catalog) > 0 {
		return catalog[0]
	}
	return ""
}
