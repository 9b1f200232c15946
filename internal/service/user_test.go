package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/discordpilot/dashboard-server-go/internal/errors"
	"github.com/discordpilot/dashboard-server-go/internal/model"
	"github.com/discordpilot/dashboard-server-go/internal/util"
)

func storedUser() *model.User {
	return &model.User{ID: testUserID, Email: "user@example.com"}
}

func TestUserUpdateOpenAIKey(t *testing.T) {
	ctx := context.Background()

	t.Run("verifies a new key before storing it", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		lister := &fakeLister{models: []string{"gpt-x"}}
		svc := NewUserService(userRepo, lister, "")

		key := "sk-valid"
		userRepo.On("UpdateOpenAIKey", ctx, testUserID, mock.MatchedBy(func(stored *string) bool {
			return stored != nil && *stored == "sk-valid"
		})).Return(storedUser(), nil)

		user, err := svc.UpdateOpenAIKey(ctx, testUserID, &key)
		require.NoError(t, err)
		assert.Equal(t, 1, lister.called)
		require.NotNil(t, user.OpenAIKey)
		assert.Equal(t, "sk-valid", *user.OpenAIKey)
	})

	t.Run("invalid key is rejected and nothing is stored", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		lister := &fakeLister{err: apperrors.InvalidAPIKey()}
		svc := NewUserService(userRepo, lister, "")

		key := "sk-bad"
		_, err := svc.UpdateOpenAIKey(ctx, testUserID, &key)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidAPIKey))
		userRepo.AssertNotCalled(t, "UpdateOpenAIKey", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blank submission clears the key without verification", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		lister := &fakeLister{}
		svc := NewUserService(userRepo, lister, "")

		userRepo.On("UpdateOpenAIKey", ctx, testUserID, (*string)(nil)).Return(storedUser(), nil)

		blank := "   "
		user, err := svc.UpdateOpenAIKey(ctx, testUserID, &blank)
		require.NoError(t, err)
		assert.Nil(t, user.OpenAIKey)
		assert.Equal(t, 0, lister.called)
	})

	t.Run("nil submission clears the key", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		lister := &fakeLister{}
		svc := NewUserService(userRepo, lister, "")

		userRepo.On("UpdateOpenAIKey", ctx, testUserID, (*string)(nil)).Return(storedUser(), nil)

		user, err := svc.UpdateOpenAIKey(ctx, testUserID, nil)
		require.NoError(t, err)
		assert.Nil(t, user.OpenAIKey)
	})

	t.Run("stores the sealed key when encryption is configured", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		lister := &fakeLister{models: []string{"gpt-x"}}
		svc := NewUserService(userRepo, lister, "enc-key")

		key := "sk-valid"
		userRepo.On("UpdateOpenAIKey", ctx, testUserID, mock.MatchedBy(func(stored *string) bool {
			return stored != nil && *stored != "sk-valid"
		})).Return(storedUser(), nil)

		user, err := svc.UpdateOpenAIKey(ctx, testUserID, &key)
		require.NoError(t, err)
		require.NotNil(t, user.OpenAIKey)
		assert.Equal(t, "sk-valid", *user.OpenAIKey)
	})
}

func TestUserListModels(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches the catalog with the stored key", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		lister := &fakeLister{models: []string{"gpt-x", "gpt-y"}}
		svc := NewUserService(userRepo, lister, "")

		key := "sk-valid"
		user := storedUser()
		user.OpenAIKey = &key
		userRepo.On("FindByID", ctx, testUserID).Return(user, nil)

		models, err := svc.ListModels(ctx, testUserID)
		require.NoError(t, err)
		assert.Equal(t, []string{"gpt-x", "gpt-y"}, models)
		assert.Equal(t, 1, lister.called)
	})

	t.Run("no configured key short-circuits without a fetch", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		lister := &fakeLister{}
		svc := NewUserService(userRepo, lister, "")

		userRepo.On("FindByID", ctx, testUserID).Return(storedUser(), nil)

		_, err := svc.ListModels(ctx, testUserID)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidAPIKey))
		assert.Equal(t, 0, lister.called)
	})
}

func TestUserGet(t *testing.T) {
	ctx := context.Background()

	t.Run("decrypts the stored key", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := NewUserService(userRepo, &fakeLister{}, "enc-key")

		sealed, err := util.Encrypt("enc-key", "sk-valid")
		require.NoError(t, err)
		stored := storedUser()
		stored.OpenAIKey = &sealed
		userRepo.On("FindByID", ctx, testUserID).Return(stored, nil)

		user, err := svc.Get(ctx, testUserID)
		require.NoError(t, err)
		require.NotNil(t, user.OpenAIKey)
		assert.Equal(t, "sk-valid", *user.OpenAIKey)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := NewUserService(userRepo, &fakeLister{}, "")

		userRepo.On("FindByID", ctx, "missing").Return(nil, nil)

		_, err := svc.Get(ctx, "missing")
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
	})
}
