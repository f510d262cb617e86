package handler

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"net/http"

	"github.com/sintftl/voyage/internal/auth"
	"github.com/sintftl/voyage/internal/service"
)

// RoomHandler serves room lifecycle endpoints: create, list, join,
// inspect, and delete. It never touches voyage.GameState directly —
// every mutation goes through RoomService.
type RoomHandler struct {
	rooms *service.RoomService
}

// NewRoomHandler creates a RoomHandler.
func NewRoomHandler(rooms *service.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// CreateRoom creates a new room in the Lobby phase with the caller as
// its sole player and creator.
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	playerID := auth.PlayerIDFromContext(r.Context())

	var req struct {
		Name   string `json:"name"`
		Layout string `json:"layout"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Layout != "Star" && req.Layout != "Torus" {
		req.Layout = "Star"
	}

	room, err := h.rooms.CreateRoom(r.Context(), req.Name, playerID, req.Layout, randomSeed())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create room: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

// ListOpenRooms lists rooms still in the Lobby phase.
func (h *RoomHandler) ListOpenRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.rooms.ListOpenRooms(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list rooms")
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

// GetRoom returns room metadata.
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	room, err := h.rooms.GetRoom(r.Context(), id)
	if err != nil {
		respondRoomError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

// GetState returns the room's live GameState.
func (h *RoomHandler) GetState(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	state, err := h.rooms.GetState(r.Context(), id)
	if err != nil {
		respondRoomError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// JoinRoom applies a Join action on behalf of the caller.
func (h *RoomHandler) JoinRoom(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	playerID := auth.PlayerIDFromContext(r.Context())

	var req struct {
		Name string `json:"name"`
	}
	_ = decodeJSON(r, &req)
	if req.Name == "" {
		req.Name = playerID
	}

	state, err := h.rooms.JoinRoom(r.Context(), id, playerID, req.Name)
	if err != nil {
		respondRoomError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// DeleteRoom removes a room. Only its creator may do this.
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	playerID := auth.PlayerIDFromContext(r.Context())

	if err := h.rooms.DeleteRoom(r.Context(), id, playerID); err != nil {
		respondRoomError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondRoomError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		writeError(w, http.StatusNotFound, "room not found")
	case errors.Is(err, service.ErrRoomFull):
		writeError(w, http.StatusConflict, "room is full")
	case errors.Is(err, service.ErrNotCreator):
		writeError(w, http.StatusForbidden, "only the creator may do this")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func randomSeed() uint64 {
	var b [8]byte
	rand.Read(b[:])
	return binary.BigEndian.Uint64(b[:])
}
