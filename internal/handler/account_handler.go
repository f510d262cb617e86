package handler

import (
	"net/http"

	"github.com/sintftl/voyage/internal/auth"
	"github.com/sintftl/voyage/internal/store"
)

// AccountHandler serves the authenticated player's own profile.
type AccountHandler struct {
	accounts store.AccountRepository
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(accounts store.AccountRepository) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// GetMe returns the authenticated account's profile.
func (h *AccountHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	id := auth.PlayerIDFromContext(r.Context())
	account, err := h.accounts.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load account")
		return
	}
	if account == nil {
		writeError(w, http.StatusNotFound, "account not found")
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// UpdateMe updates the authenticated account's display name.
func (h *AccountHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	id := auth.PlayerIDFromContext(r.Context())

	var req struct {
		DisplayName string `json:"display_name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DisplayName == "" {
		writeError(w, http.StatusBadRequest, "display_name is required")
		return
	}

	if err := h.accounts.UpdateDisplayName(r.Context(), id, req.DisplayName); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update account")
		return
	}

	account, err := h.accounts.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load account")
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// GetAccount returns another account's public profile.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	account, err := h.accounts.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load account")
		return
	}
	if account == nil {
		writeError(w, http.StatusNotFound, "account not found")
		return
	}
	writeJSON(w, http.StatusOK, account)
}
