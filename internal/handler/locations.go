package handler

import (
	"net/http"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/utils"
)

func (h *Handler) GetAllLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.repository.GetAllLocations()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "locations fetched", map[string]any{
		"locations": locations,
	})
}

func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	location := r.Context().Value(LocationCtx).(*domain.Location)

	h.successResponse(w, r, "location fetched", map[string]any{
		"location": location,
	})
}

func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title      string             `json:"title" validate:"required"`
		ShiftTypes []domain.ShiftType `json:"shiftTypes" validate:"required,min=1,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	location := &domain.Location{
		Title:      req.Title,
		ShiftTypes: req.ShiftTypes,
	}

	if err := utils.ValidateShiftTypeTimes(location); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.CreateLocation(location); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "location created", map[string]any{
		"location": location,
	})
}

func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	location := r.Context().Value(LocationCtx).(*domain.Location)

	var req struct {
		Title      *string            `json:"title"`
		ShiftTypes []domain.ShiftType `json:"shiftTypes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Title != nil {
		location.Title = *req.Title
	}
	if req.ShiftTypes != nil {
		location.ShiftTypes = req.ShiftTypes
	}

	if err := utils.ValidateShiftTypeTimes(location); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.UpdateLocation(location); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "location updated", map[string]any{
		"location": location,
	})
}

func (h *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	location := r.Context().Value(LocationCtx).(*domain.Location)

	if err := h.repository.DeleteLocation(location.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "location deleted", nil)
}
