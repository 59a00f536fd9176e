package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rent-records-service/internal/core/domain"
	usecases_port "rent-records-service/internal/core/port/usecases_port"
)

// RoomHandler — операции над комнатами записи-владельца.
type RoomHandler struct {
	roomsUC usecases_port.ManageRoomsPort
}

func NewRoomHandler(roomsUC usecases_port.ManageRoomsPort) *RoomHandler {
	return &RoomHandler{roomsUC: roomsUC}
}

func (h *RoomHandler) AddRoom(w http.ResponseWriter, r *http.Request) {
	landlordID := chi.URLParam(r, "landlordID")

	var req AddRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.RoomType == "" {
		WriteJSONError(w, http.StatusBadRequest, "Room type is required")
		return
	}

	room, err := h.roomsUC.AddRoom(r.Context(), landlordID, req.toRoom())
	if err != nil {
		if errors.Is(err, domain.ErrLandlordNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Landlord not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to add room")
		return
	}

	RespondWithJSON(w, http.StatusCreated, room)
}

func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	landlordID := chi.URLParam(r, "landlordID")
	roomID := chi.URLParam(r, "roomID")

	var req UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	room, err := h.roomsUC.UpdateRoom(r.Context(), landlordID, roomID, req.toPatch())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLandlordNotFound):
			WriteJSONError(w, http.StatusNotFound, "Landlord not found")
		case errors.Is(err, domain.ErrRoomNotFound):
			WriteJSONError(w, http.StatusNotFound, "Room not found")
		default:
			WriteJSONError(w, http.StatusInternalServerError, "Failed to update room")
		}
		return
	}

	RespondWithJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) RemoveRoom(w http.ResponseWriter, r *http.Request) {
	landlordID := chi.URLParam(r, "landlordID")
	roomID := chi.URLParam(r, "roomID")

	if err := h.roomsUC.RemoveRoom(r.Context(), landlordID, roomID); err != nil {
		switch {
		case errors.Is(err, domain.ErrLandlordNotFound):
			WriteJSONError(w, http.StatusNotFound, "Landlord not found")
		case errors.Is(err, domain.ErrRoomNotFound):
			WriteJSONError(w, http.StatusNotFound, "Room not found")
		default:
			WriteJSONError(w, http.StatusInternalServerError, "Failed to remove room")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
