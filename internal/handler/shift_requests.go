package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/grid"
)

func (h *Handler) GetShiftRequests(w http.ResponseWriter, r *http.Request) {
	page, limit, locationID := h.listParams(r)

	requests, total, err := h.repository.GetShiftRequests(locationID, page, limit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	pagination := domain.NewPagination(total, page, limit)

	h.successResponse(w, r, "shift requests fetched", map[string]any{
		"requests":   requests,
		"pagination": pagination,
		"pages":      grid.PageWindow(pagination.Page, pagination.TotalPages, grid.DefaultMaxVisiblePages),
	})
}

func (h *Handler) CreateShiftRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date        string `json:"date" validate:"required"`
		ShiftTypeID int64  `json:"shiftType" validate:"required"`
		LocationID  int64  `json:"location" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		h.errorResponse(w, r, "invalid date, expected YYYY-MM-DD")
		return
	}

	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	employee, err := h.repository.GetUserByID(userID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "user not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	request := &domain.ShiftRequest{
		Employee:   *employee,
		Date:       date,
		ShiftType:  domain.ShiftType{ID: req.ShiftTypeID},
		LocationID: req.LocationID,
		Status:     domain.ShiftRequestPending,
	}

	if err := h.repository.CreateShiftRequest(request); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift request submitted", map[string]any{
		"request": request,
	})
}

func (h *Handler) UpdateShiftRequestStatus(w http.ResponseWriter, r *http.Request) {
	request := r.Context().Value(ShiftRequestCtx).(*domain.ShiftRequest)

	var req struct {
		Status domain.ShiftRequestStatus `json:"status" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !req.Status.Decided() {
		h.errorResponse(w, r, "status must be Accepted or Refused")
		return
	}

	// a decided request never changes again
	if request.Status != domain.ShiftRequestPending {
		h.errorResponse(w, r, "shift request has already been decided")
		return
	}

	request.Status = req.Status
	if err := h.repository.UpdateShiftRequestStatus(request); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shift request updated", map[string]any{
		"request": request,
	})
}

func (h *Handler) DeleteShiftRequest(w http.ResponseWriter, r *http.Request) {
	request := r.Context().Value(ShiftRequestCtx).(*domain.ShiftRequest)

	if err := h.repository.DeleteShiftRequest(request.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift request deleted", nil)
}
