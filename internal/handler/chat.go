package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/discordpilot/dashboard-server-go/api"
	apperrors "github.com/discordpilot/dashboard-server-go/internal/errors"
	"github.com/discordpilot/dashboard-server-go/internal/middleware"
	"github.com/discordpilot/dashboard-server-go/internal/service"
)

// ChatHandler serves the chat session collection nested under a Discord
// account.
type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Patch("/{chatID}", h.Update)
	r.Delete("/{chatID}", h.Delete)

	return r
}

func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	accountID := chi.URLParam(r, "accountID")

	chats, err := h.chatService.List(r.Context(), user.ID, accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"chats": formatChats(chats),
	})
}

func (h *ChatHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	accountID := chi.URLParam(r, "accountID")

	var req api.ChatPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.InvalidInput("body", "not valid JSON"))
		return
	}

	chat, err := h.chatService.Create(r.Context(), user.ID, accountID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"chat": formatChat(chat),
	})
}

func (h *ChatHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	accountID := chi.URLParam(r, "accountID")
	chatID := chi.URLParam(r, "chatID")

	var req api.ChatPatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.InvalidInput("body", "not valid JSON"))
		return
	}

	chat, err := h.chatService.Update(r.Context(), user.ID, accountID, chatID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"chat": formatChat(chat),
	})
}

func (h *ChatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	accountID := chi.URLParam(r, "accountID")
	chatID := chi.URLParam(r, "chatID")

	if err := h.chatService.Delete(r.Context(), user.ID, accountID, chatID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
