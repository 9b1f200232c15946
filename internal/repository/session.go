package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/discordpilot/dashboard-server-go/internal/model"
)

type AuthSessionRepository interface {
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.AuthSession, error)
	Create(ctx context.Context, params model.CreateAuthSessionParams) (*model.AuthSession, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type authSessionRepo struct {
	db sqlxDB
}

func NewAuthSessionRepository(db *sqlx.DB) AuthSessionRepository {
	return &authSessionRepo{db: db}
}

func (r *authSessionRepo) FindByTokenHash(ctx context.Context, tokenHash string) (*model.AuthSession, error) {
	var session model.AuthSession
	err := r.db.GetContext(ctx, &session, `
		SELECT * FROM auth_sessions
		WHERE token_hash = $1 AND expires_at > $2
	`, tokenHash, time.Now())
	return HandleNotFound(&session, err)
}

func (r *authSessionRepo) Create(ctx context.Context, params model.CreateAuthSessionParams) (*model.AuthSession, error) {
	var session model.AuthSession
	err := r.db.GetContext(ctx, &session, `
		INSERT INTO auth_sessions (token_hash, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING *
	`, params.TokenHash, params.UserID, params.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *authSessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM auth_sessions WHERE id = $1`, id)
	return err
}

func (r *authSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM auth_sessions WHERE expires_at <= $1
	`, time.Now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
