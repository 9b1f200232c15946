package client

import (
	"context"
	"sync"

	"github.com/discordpilot/dashboard-server-go/api"
)

// ChatUpdater is the slice of the client the controller needs.
type ChatUpdater interface {
	UpdateChatStatus(ctx context.Context, accountID, chatID string, status api.ChatStatus) (*api.ChatSession, error)
}

// LifecycleController drives the start/stop toggle for one chat session.
// It flips the displayed status optimistically, then confirms against the
// backend; a failed confirmation reverts the display to the last
// confirmed status so the toggle never shows a state the server does not
// hold.
type LifecycleController struct {
	mu        sync.Mutex
	client    ChatUpdater
	accountID string
	chatID    string
	confirmed api.ChatStatus
	displayed api.ChatStatus
}

func NewLifecycleController(client ChatUpdater, chat *api.ChatSession) *LifecycleController {
	return &LifecycleController{
		client:    client,
		accountID: chat.DiscordAccountID,
		chatID:    chat.ID,
		confirmed: chat.Status,
		displayed: chat.Status,
	}
}

// Displayed is the status the dashboard should render right now.
func (l *LifecycleController) Displayed() api.ChatStatus {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.displayed
}

// Start requests the active status.
func (l *LifecycleController) Start(ctx context.Context) error {
	return l.set(ctx, api.ChatStatusActive)
}

// Stop requests the stopped status.
func (l *LifecycleController) Stop(ctx context.Context) error {
	return l.set(ctx, api.ChatStatusStopped)
}

// Toggle flips the displayed status.
func (l *LifecycleController) Toggle(ctx context.Context) error {
	l.mu.Lock()
	target := api.ChatStatusActive
	if l.displayed == api.ChatStatusActive {
		target = api.ChatStatusStopped
	}
	l.mu.Unlock()
	return l.set(ctx, target)
}

func (l *LifecycleController) set(ctx context.Context, target api.ChatStatus) error {
	l.mu.Lock()
	if l.displayed == target {
		l.mu.Unlock()
		return nil
	}
	l.displayed = target
	l.mu.Unlock()

	chat, err := l.client.UpdateChatStatus(ctx, l.accountID, l.chatID, target)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.displayed = l.confirmed
		return err
	}
	l.confirmed = chat.Status
	l.displayed = chat.Status
	return nil
}
