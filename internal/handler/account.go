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

type AccountHandler struct {
	accountService *service.AccountService
	chatHandler    *ChatHandler
}

func NewAccountHandler(accountService *service.AccountService, chatHandler *ChatHandler) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		chatHandler:    chatHandler,
	}
}

func (h *AccountHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{accountID}", func(r chi.Router) {
		r.Patch("/", h.Update)
		r.Delete("/", h.Delete)
		r.Mount("/chats", h.chatHandler.Routes())
	})

	return r
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	accounts, err := h.accountService.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"accounts": formatAccounts(accounts),
	})
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req api.AccountPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.InvalidInput("body", "not valid JSON"))
		return
	}

	account, err := h.accountService.Create(r.Context(), user.ID, req.Name, req.AccountToken)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"account": formatAccount(account),
	})
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	accountID := chi.URLParam(r, "accountID")

	var req api.AccountPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.InvalidInput("body", "not valid JSON"))
		return
	}

	account, err := h.accountService.Update(r.Context(), user.ID, accountID, req.Name, req.AccountToken)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"account": formatAccount(account),
	})
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	accountID := chi.URLParam(r, "accountID")

	if err := h.accountService.Delete(r.Context(), user.ID, accountID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
