package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/discordpilot/dashboard-server-go/internal/errors"
	"github.com/discordpilot/dashboard-server-go/internal/model"
)

func TestAccountCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("verifies the token and stores the account", func(t *testing.T) {
		accountRepo := new(mockAccountRepo)
		chatRepo := new(mockChatRepo)
		verifier := &fakeVerifier{}
		svc := NewAccountService(nil, accountRepo, chatRepo, verifier, "")

		accountRepo.On("Create", ctx, mock.MatchedBy(func(p model.CreateAccountParams) bool {
			return p.UserID == testUserID && p.Name == "main" && p.AccountToken == "tok-1" && p.ID != ""
		})).Return(&model.DiscordAccount{ID: testAccountID, UserID: testUserID, Name: "main", AccountToken: "tok-1"}, nil)

		account, err := svc.Create(ctx, testUserID, "  main  ", " tok-1 ")
		require.NoError(t, err)
		assert.Equal(t, "main", account.Name)
		assert.Equal(t, "tok-1", account.AccountToken)
		assert.Equal(t, 1, verifier.called)
	})

	t.Run("invalid token stays distinguishable and nothing is stored", func(t *testing.T) {
		accountRepo := new(mockAccountRepo)
		chatRepo := new(mockChatRepo)
		verifier := &fakeVerifier{err: apperrors.InvalidDiscordToken()}
		svc := NewAccountService(nil, accountRepo, chatRepo, verifier, "")

		_, err := svc.Create(ctx, testUserID, "main", "bad-token")
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidDiscordToken))
		accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("blank fields never reach the verifier", func(t *testing.T) {
		accountRepo := new(mockAccountRepo)
		chatRepo := new(mockChatRepo)
		verifier := &fakeVerifier{}
		svc := NewAccountService(nil, accountRepo, chatRepo, verifier, "")

		_, err := svc.Create(ctx, testUserID, "   ", "tok")
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeMissingRequired))

		_, err = svc.Create(ctx, testUserID, "main", "  ")
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeMissingRequired))

		assert.Equal(t, 0, verifier.called)
	})
}

func TestAccountUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("updates name and token after verification", func(t *testing.T) {
		accountRepo := new(mockAccountRepo)
		chatRepo := new(mockChatRepo)
		verifier := &fakeVerifier{}
		svc := NewAccountService(nil, accountRepo, chatRepo, verifier, "")

		accountRepo.On("FindByID", ctx, testAccountID).Return(ownedAccount(), nil)
		accountRepo.On("Update", ctx, testAccountID, mock.MatchedBy(func(p model.UpdateAccountParams) bool {
			return p.Name != nil && *p.Name == "renamed" && p.AccountToken != nil
		})).Return(&model.DiscordAccount{ID: testAccountID, UserID: testUserID, Name: "renamed", AccountToken: "tok-2"}, nil)

		account, err := svc.Update(ctx, testUserID, testAccountID, "renamed", "tok-2")
		require.NoError(t, err)
		assert.Equal(t, "renamed", account.Name)
		assert.Equal(t, 1, verifier.called)
	})

	t.Run("foreign account is not found", func(t *testing.T) {
		accountRepo := new(mockAccountRepo)
		chatRepo := new(mockChatRepo)
		svc := NewAccountService(nil, accountRepo, chatRepo, &fakeVerifier{}, "")

		foreign := ownedAccount()
		foreign.UserID = "someone-else"
		accountRepo.On("FindByID", ctx, testAccountID).Return(foreign, nil)

		_, err := svc.Update(ctx, testUserID, testAccountID, "renamed", "tok-2")
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
	})
}

func TestAccountList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored accounts", func(t *testing.T) {
		accountRepo := new(mockAccountRepo)
		chatRepo := new(mockChatRepo)
		svc := NewAccountService(nil, accountRepo, chatRepo, &fakeVerifier{}, "")

		accountRepo.On("FindAllByUserID", ctx, testUserID).Return([]model.DiscordAccount{*ownedAccount()}, nil)

		accounts, err := svc.List(ctx, testUserID)
		require.NoError(t, err)
		require.Len(t, accounts, 1)
		assert.Equal(t, testAccountID, accounts[0].ID)
	})

	t.Run("decrypts tokens when an encryption key is set", func(t *testing.T) {
		accountRepo := new(mockAccountRepo)
		chatRepo := new(mockChatRepo)
		verifier := &fakeVerifier{}
		svc := NewAccountService(nil, accountRepo, chatRepo, verifier, "enc-key")

		var sealed string
		accountRepo.On("Create", ctx, mock.MatchedBy(func(p model.CreateAccountParams) bool {
			sealed = p.AccountToken
			return p.AccountToken != "tok-1"
		})).Return(&model.DiscordAccount{ID: testAccountID, UserID: testUserID, Name: "main"}, nil)

		_, err := svc.Create(ctx, testUserID, "main", "tok-1")
		require.NoError(t, err)

		stored := *ownedAccount()
		stored.AccountToken = sealed
		accountRepo.On("FindAllByUserID", ctx, testUserID).Return([]model.DiscordAccount{stored}, nil)

		accounts, err := svc.List(ctx, testUserID)
		require.NoError(t, err)
		assert.Equal(t, "tok-1", accounts[0].AccountToken)
	})
}
