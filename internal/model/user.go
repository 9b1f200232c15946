package model

import (
	"time"
)

type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	// OpenAIKey holds the stored key, encrypted at rest when an
	// encryption key is configured. NULL means no key is set.
	OpenAIKey *string   `db:"openai_api_key" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type CreateUserParams struct {
	ID           string
	Email        string
	PasswordHash string
}
