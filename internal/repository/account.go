package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/discordpilot/dashboard-server-go/internal/model"
)

type AccountRepository interface {
	FindByID(ctx context.Context, id string) (*model.DiscordAccount, error)
	FindAllByUserID(ctx context.Context, userID string) ([]model.DiscordAccount, error)
	Create(ctx context.Context, params model.CreateAccountParams) (*model.DiscordAccount, error)
	Update(ctx context.Context, id string, params model.UpdateAccountParams) (*model.DiscordAccount, error)
	Delete(ctx context.Context, id string) error
	// WithTx returns a new repository that uses the given transaction
	WithTx(tx *sqlx.Tx) AccountRepository
}

type accountRepo struct {
	db sqlxDB
}

func NewAccountRepository(db *sqlx.DB) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) WithTx(tx *sqlx.Tx) AccountRepository {
	return &accountRepo{db: tx}
}

func (r *accountRepo) FindByID(ctx context.Context, id string) (*model.DiscordAccount, error) {
	var account model.DiscordAccount
	err := r.db.GetContext(ctx, &account, `
		SELECT * FROM discord_accounts WHERE id = $1
	`, id)
	return HandleNotFound(&account, err)
}

func (r *accountRepo) FindAllByUserID(ctx context.Context, userID string) ([]model.DiscordAccount, error) {
	var accounts []model.DiscordAccount
	err := r.db.SelectContext(ctx, &accounts, `
		SELECT * FROM discord_accounts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *accountRepo) Create(ctx context.Context, params model.CreateAccountParams) (*model.DiscordAccount, error) {
	var account model.DiscordAccount
	err := r.db.GetContext(ctx, &account, `
		INSERT INTO discord_accounts (id, user_id, name, account_token)
		VALUES ($1, $2, $3, $4)
		RETURNING *
	`, params.ID, params.UserID, params.Name, params.AccountToken)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) Update(ctx context.Context, id string, params model.UpdateAccountParams) (*model.DiscordAccount, error) {
	var account model.DiscordAccount
	err := r.db.GetContext(ctx, &account, `
		UPDATE discord_accounts SET
			name = COALESCE($2, name),
			account_token = COALESCE($3, account_token),
			updated_at = $4
		WHERE id = $1
		RETURNING *
	`, id, params.Name, params.AccountToken, time.Now())
	return HandleNotFound(&account, err)
}

func (r *accountRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM discord_accounts WHERE id = $1`, id)
	return err
}
