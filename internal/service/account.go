package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/discordpilot/dashboard-server-go/internal/database"
	apperrors "github.com/discordpilot/dashboard-server-go/internal/errors"
	"github.com/discordpilot/dashboard-server-go/internal/model"
	"github.com/discordpilot/dashboard-server-go/internal/repository"
)

// TokenVerifier is the slice of the Discord client the account service
// needs.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) error
}

type AccountService struct {
	db          *database.DB
	accountRepo repository.AccountRepository
	chatRepo    repository.ChatRepository
	discord     TokenVerifier
	box         secretBox
}

func NewAccountService(
	db *database.DB,
	accountRepo repository.AccountRepository,
	chatRepo repository.ChatRepository,
	discord TokenVerifier,
	encryptionKey string,
) *AccountService {
	return &AccountService{
		db:          db,
		accountRepo: accountRepo,
		chatRepo:    chatRepo,
		discord:     discord,
		box:         newSecretBox(encryptionKey),
	}
}

// List returns the user's accounts with tokens decrypted for display in
// the edit form.
func (s *AccountService) List(ctx context.Context, userID string) ([]model.DiscordAccount, error) {
	accounts, err := s.accountRepo.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	for i := range accounts {
		opened, err := s.box.open(accounts[i].AccountToken)
		if err != nil {
			return nil, apperrors.Internal("failed to decrypt account token").WithCause(err)
		}
		accounts[i].AccountToken = opened
	}
	return accounts, nil
}

func (s *AccountService) Create(ctx context.Context, userID, name, token string) (*model.DiscordAccount, error) {
	name = strings.TrimSpace(name)
	token = strings.TrimSpace(token)
	if name == "" {
		return nil, apperrors.MissingRequired("name")
	}
	if token == "" {
		return nil, apperrors.MissingRequired("accountToken")
	}

	if err := s.discord.VerifyToken(ctx, token); err != nil {
		return nil, err
	}

	sealed, err := s.box.seal(token)
	if err != nil {
		return nil, apperrors.Internal("failed to encrypt account token").WithCause(err)
	}

	account, err := s.accountRepo.Create(ctx, model.CreateAccountParams{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         name,
		AccountToken: sealed,
	})
	if err != nil {
		return nil, apperrors.Database(err)
	}

	log.Info().Str("userId", userID).Str("accountId", account.ID).Msg("discord account created")

	account.AccountToken = token
	return account, nil
}

func (s *AccountService) Update(ctx context.Context, userID, accountID, name, token string) (*model.DiscordAccount, error) {
	if _, err := s.requireOwned(ctx, userID, accountID); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	token = strings.TrimSpace(token)
	if name == "" {
		return nil, apperrors.MissingRequired("name")
	}
	if token == "" {
		return nil, apperrors.MissingRequired("accountToken")
	}

	if err := s.discord.VerifyToken(ctx, token); err != nil {
		return nil, err
	}

	sealed, err := s.box.seal(token)
	if err != nil {
		return nil, apperrors.Internal("failed to encrypt account token").WithCause(err)
	}

	account, err := s.accountRepo.Update(ctx, accountID, model.UpdateAccountParams{
		Name:         &name,
		AccountToken: &sealed,
	})
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if account == nil {
		return nil, apperrors.NotFound("Discord account")
	}

	account.AccountToken = token
	return account, nil
}

// Delete removes the account and its chats in one transaction. The chats
// would also go via the FK cascade; deleting them explicitly keeps the
// count for the log.
func (s *AccountService) Delete(ctx context.Context, userID, accountID string) error {
	if _, err := s.requireOwned(ctx, userID, accountID); err != nil {
		return err
	}

	err := s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		removed, err := s.chatRepo.WithTx(tx).DeleteByAccountID(ctx, accountID)
		if err != nil {
			return err
		}
		if err := s.accountRepo.WithTx(tx).Delete(ctx, accountID); err != nil {
			return err
		}
		log.Info().Str("accountId", accountID).Int64("chats", removed).Msg("discord account deleted")
		return nil
	})
	if err != nil {
		return apperrors.Database(err)
	}
	return nil
}

// requireOwned loads the account and hides other users' records behind a
// not-found answer.
func (s *AccountService) requireOwned(ctx context.Context, userID, accountID string) (*model.DiscordAccount, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if account == nil || account.UserID != userID {
		return nil, apperrors.NotFound("Discord account")
	}
	return account, nil
}
