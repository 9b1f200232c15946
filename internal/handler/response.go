package handler

import (
	"net/http"

	"github.com/discordpilot/dashboard-server-go/api"
	"github.com/discordpilot/dashboard-server-go/internal/httputil"
	"github.com/discordpilot/dashboard-server-go/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	httputil.WriteJSON(w, status, data)
}

func writeError(w http.ResponseWriter, err error) {
	httputil.WriteError(w, err)
}

func formatUser(user *model.User) api.User {
	return api.User{
		ID:           user.ID,
		Email:        user.Email,
		OpenAIAPIKey: user.OpenAIKey,
	}
}

func formatAccount(account *model.DiscordAccount) api.DiscordAccount {
	return api.DiscordAccount{
		ID:           account.ID,
		Name:         account.Name,
		AccountToken: account.AccountToken,
	}
}

func formatAccounts(accounts []model.DiscordAccount) []api.DiscordAccount {
	formatted := make([]api.DiscordAccount, len(accounts))
	for i := range accounts {
		formatted[i] = formatAccount(&accounts[i])
	}
	return formatted
}

func formatChat(chat *model.Chat) api.ChatSession {
	return api.ChatSession{
		ID:               chat.ID,
		DiscordAccountID: chat.DiscordAccountID,
		Name:             chat.Name,
		DiscordChatID:    chat.DiscordChatID,
		MinInterval:      chat.MinInterval,
		MaxInterval:      chat.MaxInterval,
		SystemPrompt:     chat.SystemPrompt,
		UserPrompt:       chat.UserPrompt,
		MaxTokens:        chat.MaxTokens,
		Temperature:      chat.Temperature,
		Model:            chat.Model,
		Status:           api.ChatStatus(chat.Status),
	}
}

func formatChats(chats []model.Chat) []api.ChatSession {
	formatted := make([]api.ChatSession, len(chats))
	for i := range chats {
		formatted[i] = formatChat(&chats[i])
	}
	return formatted
}
