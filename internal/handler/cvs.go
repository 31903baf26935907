package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/grid"
)

func (h *Handler) GetAllCVs(w http.ResponseWriter, r *http.Request) {
	page, limit, _ := h.listParams(r)

	cvs, total, err := h.repository.GetAllCVs(page, limit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	pagination := domain.NewPagination(total, page, limit)

	h.successResponse(w, r, "cvs fetched", map[string]any{
		"cvs":        cvs,
		"pagination": pagination,
		"pages":      grid.PageWindow(pagination.Page, pagination.TotalPages, grid.DefaultMaxVisiblePages),
	})
}

func (h *Handler) SubmitCV(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name" validate:"required"`
		Designation string `json:"designation" validate:"required"`
		Location    string `json:"location" validate:"required"`
		FileURL     string `json:"cv" validate:"required,url"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	cv := &domain.CV{
		Name:           req.Name,
		Designation:    req.Designation,
		UserID:         userID,
		Location:       req.Location,
		FileURL:        req.FileURL,
		ApprovalStatus: domain.CVPending,
	}

	if err := h.repository.CreateCV(cv); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "cv submitted", map[string]any{
		"cv": cv,
	})
}

func (h *Handler) UpdateCVStatus(w http.ResponseWriter, r *http.Request) {
	cv := r.Context().Value(CVCtx).(*domain.CV)

	var req struct {
		Status domain.CVStatus `json:"status" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !req.Status.Valid() {
		h.errorResponse(w, r, "invalid status")
		return
	}

	cv.ApprovalStatus = req.Status
	if err := h.repository.UpdateCVStatus(cv); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "cv status updated", map[string]any{
		"cv": cv,
	})
}
