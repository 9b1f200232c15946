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

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/me", h.Me)
	r.Patch("/openai-key", h.UpdateOpenAIKey)

	return r
}

// Models proxies the OpenAI model catalog using the caller's stored key.
func (h *UserHandler) Models(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	models, err := h.userService.ListModels(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.ModelList{Models: models})
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	full, err := h.userService.Get(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": formatUser(full),
	})
}

func (h *UserHandler) UpdateOpenAIKey(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req api.OpenAIKeyPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.InvalidInput("body", "not valid JSON"))
		return
	}

	updated, err := h.userService.UpdateOpenAIKey(r.Context(), user.ID, req.OpenAIAPIKey)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": formatUser(updated),
	})
}
