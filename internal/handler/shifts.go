package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/grid"
)

func (h *Handler) GetShifts(w http.ResponseWriter, r *http.Request) {
	page, limit, locationID := h.listParams(r)

	shifts, total, err := h.repository.GetShifts(locationID, page, limit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	pagination := domain.NewPagination(total, page, limit)

	h.successResponse(w, r, "shifts fetched", map[string]any{
		"shifts":     shifts,
		"pagination": pagination,
		"pages":      grid.PageWindow(pagination.Page, pagination.TotalPages, grid.DefaultMaxVisiblePages),
	})
}

// calendarParams reads the year/month/week triple of the calendar views,
// defaulting to the week containing today.
func (h *Handler) calendarParams(r *http.Request) (year int, month time.Month, week int, err error) {
	query := r.URL.Query()
	now := time.Now()

	year = now.Year()
	if raw := query.Get("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, 0, errors.New("invalid year")
		}
	}

	month = now.Month()
	if raw := query.Get("month"); raw != "" {
		m, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return 0, 0, 0, errors.New("invalid month")
		}
		month = time.Month(m)
	}

	week = 1
	if raw := query.Get("week"); raw != "" {
		week, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, 0, errors.New("invalid week")
		}
	}

	return year, month, week, nil
}

func (h *Handler) GetShiftCalendar(w http.ResponseWriter, r *http.Request) {
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

	// [from, to) covers the whole week including a spill into the next month
	from := dates[0]
	to := dates[len(dates)-1].AddDate(0, 0, 1)

	shiftPtrs, err := h.repository.GetShiftsInRange(from, to, locationID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	shifts := make([]domain.Shift, 0, len(shiftPtrs))
	for _, s := range shiftPtrs {
		shifts = append(shifts, *s)
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

	gridDates, rows, err := grid.BuildShiftGrid(shifts, employees, year, month, week, locationID, time.Local)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.successResponse(w, r, "shift calendar fetched", map[string]any{
		"dates":        gridDates,
		"rows":         rows,
		"week":         week,
		"weekLabel":    grid.WeekLabel(week),
		"weeksInMonth": grid.WeeksInMonth(year, month),
	})
}

func (h *Handler) AssignShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID  *int64 `json:"employee"`
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

	shift := &domain.Shift{
		Date:      date,
		ShiftType: domain.ShiftType{ID: req.ShiftTypeID},
		Location:  domain.LocationRef{ID: req.LocationID},
	}

	if req.EmployeeID != nil {
		employee, err := h.repository.GetUserByID(*req.EmployeeID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "employee not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		count, err := h.repository.CountShiftsOnDay(employee.ID, date)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if count > 0 {
			h.errorResponse(w, r, "employee already has a shift on this day")
			return
		}

		shift.Employee = employee
	}

	if err := h.repository.CreateShift(shift); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift assigned", map[string]any{
		"shift": shift,
	})
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shiftIDParam := chi.URLParam(r, "id")
	shiftID, err := strconv.ParseInt(shiftIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid shift id")
		return
	}

	if _, err := h.repository.GetShiftByID(shiftID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "shift not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.DeleteShift(shiftID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift deleted", nil)
}
