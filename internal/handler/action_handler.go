package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/sintftl/voyage/internal/auth"
	"github.com/sintftl/voyage/internal/service"
	"github.com/sintftl/voyage/pkg/voyage"
)

// ActionHandler submits player actions to a room and exposes the
// legal-action hinting endpoint a client uses to grey out buttons.
type ActionHandler struct {
	rooms *service.RoomService
}

// NewActionHandler creates an ActionHandler.
func NewActionHandler(rooms *service.RoomService) *ActionHandler {
	return &ActionHandler{rooms: rooms}
}

// SubmitAction decodes a §6 Action envelope from the request body and
// applies it on behalf of the caller.
func (h *ActionHandler) SubmitAction(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	playerID := auth.PlayerIDFromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	defer r.Body.Close()

	action, err := voyage.UnmarshalAction(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid action: "+err.Error())
		return
	}

	state, err := h.rooms.SubmitAction(r.Context(), roomID, voyage.PlayerID(playerID), action)
	if err != nil {
		respondActionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// ValidActions returns the set of actions the caller may currently
// legally submit, per voyage.GetValidActions.
func (h *ActionHandler) ValidActions(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	playerID := auth.PlayerIDFromContext(r.Context())

	actions, err := h.rooms.ValidActions(r.Context(), roomID, voyage.PlayerID(playerID))
	if err != nil {
		respondRoomError(w, err)
		return
	}

	wire := make([]map[string]any, 0, len(actions))
	for _, a := range actions {
		raw, err := voyage.MarshalAction(a)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to encode valid action")
			return
		}
		var decoded map[string]any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to encode valid action")
			return
		}
		wire = append(wire, decoded)
	}
	writeJSON(w, http.StatusOK, wire)
}

func respondActionError(w http.ResponseWriter, err error) {
	switch err {
	case voyage.ErrPlayerNotFound, voyage.ErrRoomNotFound:
		writeError(w, http.StatusNotFound, err.Error())
	case voyage.ErrInvalidMove, voyage.ErrInvalidAction, voyage.ErrInventoryFull, voyage.ErrSilenced:
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case voyage.ErrGameOver:
		writeError(w, http.StatusConflict, err.Error())
	case service.ErrRoomNotFound:
		writeError(w, http.StatusNotFound, "room not found")
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}
