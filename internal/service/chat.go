package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/discordpilot/dashboard-server-go/api"
	apperrors "github.com/discordpilot/dashboard-server-go/internal/errors"
	"github.com/discordpilot/dashboard-server-go/internal/events"
	"github.com/discordpilot/dashboard-server-go/internal/model"
	"github.com/discordpilot/dashboard-server-go/internal/repository"
)

type ChatService struct {
	chatRepo    repository.ChatRepository
	accountRepo repository.AccountRepository
	events      events.Publisher
}

func NewChatService(
	chatRepo repository.ChatRepository,
	accountRepo repository.AccountRepository,
	publisher events.Publisher,
) *ChatService {
	return &ChatService{
		chatRepo:    chatRepo,
		accountRepo: accountRepo,
		events:      publisher,
	}
}

func (s *ChatService) List(ctx context.Context, userID, accountID string) ([]model.Chat, error) {
	if err := s.requireAccount(ctx, userID, accountID); err != nil {
		return nil, err
	}

	chats, err := s.chatRepo.FindAllByAccountID(ctx, accountID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return chats, nil
}

// Create validates the configuration and inserts it. Status is not taken
// from the payload: every new chat starts stopped.
func (s *ChatService) Create(ctx context.Context, userID, accountID string, payload api.ChatPayload) (*model.Chat, error) {
	if err := s.requireAccount(ctx, userID, accountID); err != nil {
		return nil, err
	}

	draft := draftFromPayload(payload)
	if fieldErr := draft.Validate(); fieldErr != nil {
		return nil, apperrors.ValidationError(fieldErr.Error()).WithDetails(map[string]string{"field": fieldErr.Field})
	}
	clean := draft.Payload()

	chat, err := s.chatRepo.Create(ctx, model.CreateChatParams{
		ID:               uuid.NewString(),
		DiscordAccountID: accountID,
		Name:             clean.Name,
		DiscordChatID:    clean.DiscordChatID,
		MinInterval:      clean.MinInterval,
		MaxInterval:      clean.MaxInterval,
		SystemPrompt:     clean.SystemPrompt,
		UserPrompt:       clean.UserPrompt,
		MaxTokens:        clean.MaxTokens,
		Temperature:      clean.Temperature,
		Model:            clean.Model,
	})
	if err != nil {
		return nil, apperrors.Database(err)
	}

	log.Info().Str("chatId", chat.ID).Str("accountId", accountID).Msg("chat created")
	s.events.Publish(ctx, events.Event{
		Type:      events.TypeChatCreated,
		AccountID: accountID,
		ChatID:    chat.ID,
		Status:    chat.Status,
	})

	return chat, nil
}

// Update merges the patch onto the stored configuration and validates the
// merged result, so a partial edit can never leave an invalid record. A
// patch carrying only a status change skips configuration validation and
// is announced as a status event.
func (s *ChatService) Update(ctx context.Context, userID, accountID, chatID string, patch api.ChatPatch) (*model.Chat, error) {
	if err := s.requireAccount(ctx, userID, accountID); err != nil {
		return nil, err
	}

	existing, err := s.chatRepo.FindByID(ctx, chatID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if existing == nil || existing.DiscordAccountID != accountID {
		return nil, apperrors.NotFound("Chat")
	}

	params, statusOnly, err := patchParams(patch)
	if err != nil {
		return nil, err
	}

	if !statusOnly {
		merged := mergeDraft(existing, patch)
		if fieldErr := merged.Validate(); fieldErr != nil {
			return nil, apperrors.ValidationError(fieldErr.Error()).WithDetails(map[string]string{"field": fieldErr.Field})
		}
	}

	chat, err := s.chatRepo.Update(ctx, chatID, params)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if chat == nil {
		return nil, apperrors.NotFound("Chat")
	}

	eventType := events.TypeChatUpdated
	if statusOnly {
		eventType = events.TypeChatStatusChanged
		log.Info().Str("chatId", chatID).Str("status", string(chat.Status)).Msg("chat status changed")
	}
	s.events.Publish(ctx, events.Event{
		Type:      eventType,
		AccountID: accountID,
		ChatID:    chatID,
		Status:    chat.Status,
	})

	return chat, nil
}

func (s *ChatService) Delete(ctx context.Context, userID, accountID, chatID string) error {
	if err := s.requireAccount(ctx, userID, accountID); err != nil {
		return err
	}

	existing, err := s.chatRepo.FindByID(ctx, chatID)
	if err != nil {
		return apperrors.Database(err)
	}
	if existing == nil || existing.DiscordAccountID != accountID {
		return apperrors.NotFound("Chat")
	}

	if err := s.chatRepo.Delete(ctx, chatID); err != nil {
		return apperrors.Database(err)
	}

	log.Info().Str("chatId", chatID).Str("accountId", accountID).Msg("chat deleted")
	s.events.Publish(ctx, events.Event{
		Type:      events.TypeChatDeleted,
		AccountID: accountID,
		ChatID:    chatID,
	})

	return nil
}

func (s *ChatService) requireAccount(ctx context.Context, userID, accountID string) error {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return apperrors.Database(err)
	}
	if account == nil || account.UserID != userID {
		return apperrors.NotFound("Discord account")
	}
	return nil
}

func draftFromPayload(p api.ChatPayload) api.ChatSessionDraft {
	return api.ChatSessionDraft{
		Name:          p.Name,
		DiscordChatID: p.DiscordChatID,
		MinInterval:   float64(p.MinInterval),
		MaxInterval:   float64(p.MaxInterval),
		SystemPrompt:  p.SystemPrompt,
		UserPrompt:    p.UserPrompt,
		MaxTokens:     float64(p.MaxTokens),
		Temperature:   p.Temperature,
		Model:         p.Model,
	}
}

// mergeDraft overlays the patch on the stored chat to get the would-be
// configuration for validation.
func mergeDraft(chat *model.Chat, patch api.ChatPatch) api.ChatSessionDraft {
	draft := api.ChatSessionDraft{
		Name:          chat.Name,
		DiscordChatID: chat.DiscordChatID,
		MinInterval:   float64(chat.MinInterval),
		MaxInterval:   float64(chat.MaxInterval),
		SystemPrompt:  chat.SystemPrompt,
		UserPrompt:    chat.UserPrompt,
		MaxTokens:     float64(chat.MaxTokens),
		Temperature:   chat.Temperature,
		Model:         chat.Model,
	}
	if patch.Name != nil {
		draft.Name = *patch.Name
	}
	if patch.DiscordChatID != nil {
		draft.DiscordChatID = *patch.DiscordChatID
	}
	if patch.MinInterval != nil {
		draft.MinInterval = float64(*patch.MinInterval)
	}
	if patch.MaxInterval != nil {
		draft.MaxInterval = float64(*patch.MaxInterval)
	}
	if patch.SystemPrompt != nil {
		draft.SystemPrompt = *patch.SystemPrompt
	}
	if patch.UserPrompt != nil {
		draft.UserPrompt = *patch.UserPrompt
	}
	if patch.MaxTokens != nil {
		draft.MaxTokens = float64(*patch.MaxTokens)
	}
	if patch.Temperature != nil {
		draft.Temperature = *patch.Temperature
	}
	if patch.Model != nil {
		draft.Model = *patch.Model
	}
	return draft
}

// patchParams converts the wire patch into repository params and reports
// whether the patch only touches status.
func patchParams(patch api.ChatPatch) (model.UpdateChatParams, bool, error) {
	params := model.UpdateChatParams{
		Name:          patch.Name,
		DiscordChatID: patch.DiscordChatID,
		MinInterval:   patch.MinInterval,
		MaxInterval:   patch.MaxInterval,
		SystemPrompt:  patch.SystemPrompt,
		UserPrompt:    patch.UserPrompt,
		MaxTokens:     patch.MaxTokens,
		Temperature:   patch.Temperature,
		Model:         patch.Model,
	}

	if patch.Status != nil {
		status := model.ChatStatus(*patch.Status)
		if !status.Valid() {
			return params, false, apperrors.InvalidInput("status", "must be stopped or active")
		}
		params.Status = &status
	}

	configTouched := patch.Name != nil || patch.DiscordChatID != nil ||
		patch.MinInterval != nil || patch.MaxInterval != nil ||
		patch.SystemPrompt != nil || patch.UserPrompt != nil ||
		patch.MaxTokens != nil || patch.Temperature != nil || patch.Model != nil

	statusOnly := patch.Status != nil && !configTouched
	return params, statusOnly, nil
}
