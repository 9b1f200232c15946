// Package events notifies the external responder worker about chat
// configuration changes over Redis pub/sub, so a status toggle takes
// effect without the worker polling the database.
package events

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/discordpilot/dashboard-server-go/internal/model"
	redisclient "github.com/discordpilot/dashboard-server-go/internal/redis"
)

const (
	TypeChatCreated       = "chat.created"
	TypeChatUpdated       = "chat.updated"
	TypeChatDeleted       = "chat.deleted"
	TypeChatStatusChanged = "chat.status_changed"
)

type Event struct {
	Type      string           `json:"type"`
	AccountID string           `json:"accountId"`
	ChatID    string           `json:"chatId"`
	Status    model.ChatStatus `json:"status,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event)
}

type redisPublisher struct {
	redis *redisclient.Client
}

func NewPublisher(redisClient *redisclient.Client) Publisher {
	return &redisPublisher{redis: redisClient}
}

// Publish is best-effort: the worker reconciles against the database on
// its own schedule, so a dropped notification delays it but loses nothing.
func (p *redisPublisher) Publish(ctx context.Context, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("failed to marshal chat event")
		return
	}

	channel := redisclient.ChatEventChannel(event.AccountID)
	if err := p.redis.Publish(ctx, channel, payload).Err(); err != nil {
		log.Warn().Err(err).Str("channel", channel).Msg("failed to publish chat event")
	}
}

// NopPublisher discards events; used in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}
