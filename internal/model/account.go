package model

import (
	"time"
)

type DiscordAccount struct {
	ID     string `db:"id" json:"id"`
	UserID string `db:"user_id" json:"-"`
	Name   string `db:"name" json:"name"`
	// AccountToken is encrypted at rest when an encryption key is
	// configured.
	AccountToken string    `db:"account_token" json:"accountToken"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

type CreateAccountParams struct {
	ID           string
	UserID       string
	Name         string
	AccountToken string
}

type UpdateAccountParams struct {
	Name         *string
	AccountToken *string
}
