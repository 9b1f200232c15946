package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	apperrors "github.com/discordpilot/dashboard-server-go/internal/errors"
	"github.com/discordpilot/dashboard-server-go/internal/model"
	"github.com/discordpilot/dashboard-server-go/internal/repository"
)

// ModelLister is the slice of the OpenAI client the user service needs.
type ModelLister interface {
	ListModels(ctx context.Context, apiKey string) ([]string, error)
}

type UserService struct {
	userRepo repository.UserRepository
	openai   ModelLister
	box      secretBox
}

func NewUserService(userRepo repository.UserRepository, openai ModelLister, encryptionKey string) *UserService {
	return &UserService{
		userRepo: userRepo,
		openai:   openai,
		box:      newSecretBox(encryptionKey),
	}
}

// Get returns the user with the stored API key decrypted for display.
func (s *UserService) Get(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User")
	}
	if err := s.openKey(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateOpenAIKey normalizes and stores the user's API key. A nil or blank
// submission clears the key; a non-blank key must pass verification against
// the OpenAI API before it is stored.
func (s *UserService) UpdateOpenAIKey(ctx context.Context, userID string, rawKey *string) (*model.User, error) {
	var normalized *string
	if rawKey != nil {
		trimmed := strings.TrimSpace(*rawKey)
		if trimmed != "" {
			normalized = &trimmed
		}
	}

	var stored *string
	if normalized != nil {
		if _, err := s.openai.ListModels(ctx, *normalized); err != nil {
			return nil, err
		}
		sealed, err := s.box.seal(*normalized)
		if err != nil {
			return nil, apperrors.Internal("failed to encrypt API key").WithCause(err)
		}
		stored = &sealed
	}

	user, err := s.userRepo.UpdateOpenAIKey(ctx, userID, stored)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User")
	}

	log.Info().Str("userId", userID).Bool("keySet", normalized != nil).Msg("openai api key updated")

	user.OpenAIKey = normalized
	return user, nil
}

// ListModels fetches the model catalog with the user's stored key. Without
// a configured key the fetch is short-circuited so no unauthenticated call
// ever leaves the server.
func (s *UserService) ListModels(ctx context.Context, userID string) ([]string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User")
	}
	if user.OpenAIKey == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidAPIKey, "OpenAI API Key is not configured")
	}
	if err := s.openKey(user); err != nil {
		return nil, err
	}

	return s.openai.ListModels(ctx, *user.OpenAIKey)
}

func (s *UserService) openKey(user *model.User) error {
	if user.OpenAIKey == nil {
		return nil
	}
	opened, err := s.box.open(*user.OpenAIKey)
	if err != nil {
		return apperrors.Internal("failed to decrypt API key").WithCause(err)
	}
	user.OpenAIKey = &opened
	return nil
}
