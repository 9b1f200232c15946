package model

import (
	"time"
)

type Chat struct {
	ID               string     `db:"id" json:"id"`
	DiscordAccountID string     `db:"discord_account_id" json:"discordAccountId"`
	Name             string     `db:"name" json:"name"`
	DiscordChatID    string     `db:"discord_chat_id" json:"discordChatId"`
	MinInterval      int        `db:"min_interval" json:"min_interval"`
	MaxInterval      int        `db:"max_interval" json:"max_interval"`
	SystemPrompt     string     `db:"prompt_system" json:"prompt_system"`
	UserPrompt       string     `db:"prompt_user" json:"prompt_user"`
	MaxTokens        int        `db:"max_tokens" json:"max_tokens"`
	Temperature      float64    `db:"temperature" json:"temperature"`
	Model            string     `db:"gpt_model" json:"gpt_model"`
	Status           ChatStatus `db:"status" json:"status"`
	CreatedAt        time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updatedAt"`
}

// CreateChatParams carries a validated configuration. Status is not a
// parameter: new chats are inserted stopped.
type CreateChatParams struct {
	ID               string
	DiscordAccountID string
	Name             string
	DiscordChatID    string
	MinInterval      int
	MaxInterval      int
	SystemPrompt     string
	UserPrompt       string
	MaxTokens        int
	Temperature      float64
	Model            string
}

// UpdateChatParams is a partial update; nil fields keep their stored value.
type UpdateChatParams struct {
	Name          *string
	DiscordChatID *string
	MinInterval   *int
	MaxInterval   *int
	SystemPrompt  *string
	UserPrompt    *string
	MaxTokens     *int
	Temperature   *float64
	Model         *string
	Status        *ChatStatus
}
