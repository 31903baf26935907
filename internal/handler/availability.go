package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/grid"
)

func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	page, limit, locationID := h.listParams(r)

	entries, total, err := h.repository.GetAvailability(locationID, page, limit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	pagination := domain.NewPagination(total, page, limit)

	h.successResponse(w, r, "availability fetched", map[string]any{
		"availabilities": entries,
		"pagination":     pagination,
		"pages":          grid.PageWindow(pagination.Page, pagination.TotalPages, grid.DefaultMaxVisiblePages),
	})
}

func (h *Handler) GetAvailabilityCalendar(w http.ResponseWriter, r *http.Request) {
	year, month, week, err := h.calendarParams(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	_, _, locationID := h.listParams(r)

	dates, err := grid.WeekDates(year, month, week, time.Local)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	from := dates[0]
	to := dates[len(dates)-1].AddDate(0, 0, 1)

	entryPtrs, err := h.repository.GetAvailabilityInRange(from, to, locationID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	entries := make([]domain.Availability, 0, len(entryPtrs))
	for _, e := range entryPtrs {
		entries = append(entries, *e)
	}

	employeePtrs, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	employees := make([]domain.User, 0, len(employeePtrs))
	for _, e := range employeePtrs {
		employees = append(employees, *e)
	}

	gridDates, rows, err := grid.BuildAvailabilityGrid(entries, employees, year, month, week, locationID, time.Local)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.successResponse(w, r, "availability calendar fetched", map[string]any{
		"dates":        gridDates,
		"rows":         rows,
		"week":         week,
		"weekLabel":    grid.WeekLabel(week),
		"weeksInMonth": grid.WeeksInMonth(year, month),
	})
}

// CreateAvailability records the calling employee as available for a shift
// type on a date. Several entries on the same day are fine, e.g. for
// different locations.
func (h *Handler) CreateAvailability(w http.ResponseWriter, r *http.Request) {
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

	entry := &domain.Availability{
		Employee:  *employee,
		Date:      date,
		Location:  domain.LocationRef{ID: req.LocationID},
		ShiftType: domain.ShiftType{ID: req.ShiftTypeID},
	}

	if err := h.repository.CreateAvailability(entry); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "availability recorded", map[string]any{
		"availability": entry,
	})
}
