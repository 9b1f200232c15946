package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/discordpilot/dashboard-server-go/internal/model"
)

type ChatRepository interface {
	FindByID(ctx context.Context, id string) (*model.Chat, error)
	FindAllByAccountID(ctx context.Context, accountID string) ([]model.Chat, error)
	Create(ctx context.Context, params model.CreateChatParams) (*model.Chat, error)
	Update(ctx context.Context, id string, params model.UpdateChatParams) (*model.Chat, error)
	Delete(ctx context.Context, id string) error
	DeleteByAccountID(ctx context.Context, accountID string) (int64, error)
	// WithTx returns a new repository that uses the given transaction
	WithTx(tx *sqlx.Tx) ChatRepository
}

type chatRepo struct {
	db sqlxDB
}

func NewChatRepository(db *sqlx.DB) ChatRepository {
	return &chatRepo{db: db}
}

func (r *chatRepo) WithTx(tx *sqlx.Tx) ChatRepository {
	return &chatRepo{db: tx}
}

func (r *chatRepo) FindByID(ctx context.Context, id string) (*model.Chat, error) {
	var chat model.Chat
	err := r.db.GetContext(ctx, &chat, `
		SELECT * FROM chats WHERE id = $1
	`, id)
	return HandleNotFound(&chat, err)
}

func (r *chatRepo) FindAllByAccountID(ctx context.Context, accountID string) ([]model.Chat, error) {
	var chats []model.Chat
	err := r.db.SelectContext(ctx, &chats, `
		SELECT * FROM chats
		WHERE discord_account_id = $1
		ORDER BY created_at DESC
	`, accountID)
	if err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *chatRepo) Create(ctx context.Context, params model.CreateChatParams) (*model.Chat, error) {
	var chat model.Chat
	err := r.db.GetContext(ctx, &chat, `
		INSERT INTO chats (
			id, discord_account_id, name, discord_chat_id,
			min_interval, max_interval, prompt_system, prompt_user,
			max_tokens, temperature, gpt_model, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING *
	`, params.ID, params.DiscordAccountID, params.Name, params.DiscordChatID,
		params.MinInterval, params.MaxInterval, params.SystemPrompt, params.UserPrompt,
		params.MaxTokens, params.Temperature, params.Model, model.ChatStatusStopped)
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *chatRepo) Update(ctx context.Context, id string, params model.UpdateChatParams) (*model.Chat, error) {
	var chat model.Chat
	err := r.db.GetContext(ctx, &chat, `
		UPDATE chats SET
			name = COALESCE($2, name),
			discord_chat_id = COALESCE($3, discord_chat_id),
			min_interval = COALESCE($4, min_interval),
			max_interval = COALESCE($5, max_interval),
			prompt_system = COALESCE($6, prompt_system),
			prompt_user = COALESCE($7, prompt_user),
			max_tokens = COALESCE($8, max_tokens),
			temperature = COALESCE($9, temperature),
			gpt_model = COALESCE($10, gpt_model),
			status = COALESCE($11, status),
			updated_at = $12
		WHERE id = $1
		RETURNING *
	`, id, params.Name, params.DiscordChatID, params.MinInterval, params.MaxInterval,
		params.SystemPrompt, params.UserPrompt, params.MaxTokens, params.Temperature,
		params.Model, params.Status, time.Now())
	return HandleNotFound(&chat, err)
}

func (r *chatRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM chats WHERE id = $1`, id)
	return err
}

func (r *chatRepo) DeleteByAccountID(ctx context.Context, accountID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM chats WHERE discord_account_id = $1`, accountID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
