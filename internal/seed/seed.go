// Package seed fills a development database with plausible scheduling data:
// a fixed set of locations with their shift types, and random shifts,
// availability entries and shift requests spread over the current month.
package seed

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/repository"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/utils"
)

var locationFixtures = []domain.Location{
	{
		Title: "Front Desk",
		ShiftTypes: []domain.ShiftType{
			{Title: "Morning", StartTime: "08:00:00", EndTime: "14:00:00"},
			{Title: "Afternoon", StartTime: "14:00:00", EndTime: "20:00:00"},
		},
	},
	{
		Title: "Warehouse",
		ShiftTypes: []domain.ShiftType{
			{Title: "Early", StartTime: "06:00:00", EndTime: "12:00:00"},
			{Title: "Late", StartTime: "12:00:00", EndTime: "18:00:00"},
			{Title: "Night", StartTime: "18:00:00", EndTime: "23:30:00"},
		},
	},
	{
		Title: "Bar",
		ShiftTypes: []domain.ShiftType{
			{Title: "Opening", StartTime: "10:00:00", EndTime: "16:00:00"},
			{Title: "Closing", StartTime: "16:00:00", EndTime: "23:00:00"},
		},
	},
}

func Users(repo *repository.Repository, n int, password string, emailDomain string) {
	created := 0
	for i := 0; i < n; i++ {
		user, err := utils.GenerateRandomUser(password, emailDomain)
		if err != nil {
			slog.Error("failed to generate user", "error", err)
			continue
		}
		if err := repo.CreateUser(user); err != nil {
			// duplicate generated emails are expected now and then
			slog.Warn("failed to insert user", "email", user.Email, "error", err)
			continue
		}
		created++
	}
	slog.Info("users seeded", "requested", n, "created", created)
}

func Locations(repo *repository.Repository) {
	for i := range locationFixtures {
		location := locationFixtures[i]
		if err := repo.CreateLocation(&location); err != nil {
			slog.Warn("failed to insert location", "title", location.Title, "error", err)
			continue
		}
		slog.Info("location seeded", "title", location.Title, "shiftTypes", len(location.ShiftTypes))
	}
}

// monthDay picks a random calendar day of the current month.
func monthDay() time.Time {
	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, rand.Intn(daysInMonth))
}

// pool loads the employees and locations the random generators draw from.
func pool(repo *repository.Repository) ([]*domain.User, []*domain.Location, bool) {
	employees, err := repo.GetAllEmployees()
	if err != nil || len(employees) == 0 {
		slog.Error("no employees to seed against, run the user op first", "error", err)
		return nil, nil, false
	}

	locations, err := repo.GetAllLocations()
	if err != nil || len(locations) == 0 {
		slog.Error("no locations to seed against, run the location op first", "error", err)
		return nil, nil, false
	}
	for _, location := range locations {
		if len(location.ShiftTypes) == 0 {
			slog.Error("location has no shift types", "title", location.Title)
			return nil, nil, false
		}
	}

	return employees, locations, true
}

func Shifts(repo *repository.Repository, n int) {
	employees, locations, ok := pool(repo)
	if !ok {
		return
	}

	created := 0
	for i := 0; i < n; i++ {
		employee := employees[rand.Intn(len(employees))]
		location := locations[rand.Intn(len(locations))]
		shiftType := location.ShiftTypes[rand.Intn(len(location.ShiftTypes))]
		day := monthDay()

		count, err := repo.CountShiftsOnDay(employee.ID, day)
		if err != nil {
			slog.Error("failed to check existing shifts", "error", err)
			continue
		}
		if count > 0 {
			continue
		}

		shift := &domain.Shift{
			Employee:  employee,
			Date:      day,
			ShiftType: shiftType,
			Location:  domain.LocationRef{ID: location.ID, Title: location.Title},
		}
		if err := repo.CreateShift(shift); err != nil {
			slog.Warn("failed to insert shift", "error", err)
			continue
		}
		created++
	}
	slog.Info("shifts seeded", "requested", n, "created", created)
}

func Availability(repo *repository.Repository, n int) {
	employees, locations, ok := pool(repo)
	if !ok {
		return
	}

	created := 0
	for i := 0; i < n; i++ {
		employee := employees[rand.Intn(len(employees))]
		location := locations[rand.Intn(len(locations))]
		shiftType := location.ShiftTypes[rand.Intn(len(location.ShiftTypes))]

		entry := &domain.Availability{
			Employee:  *employee,
			Date:      monthDay(),
			Location:  domain.LocationRef{ID: location.ID, Title: location.Title},
			ShiftType: shiftType,
		}
		if err := repo.CreateAvailability(entry); err != nil {
			slog.Warn("failed to insert availability", "error", err)
			continue
		}
		created++
	}
	slog.Info("availability seeded", "requested", n, "created", created)
}

func ShiftRequests(repo *repository.Repository, n int) {
	employees, locations, ok := pool(repo)
	if !ok {
		return
	}

	created := 0
	for i := 0; i < n; i++ {
		employee := employees[rand.Intn(len(employees))]
		location := locations[rand.Intn(len(locations))]
		shiftType := location.ShiftTypes[rand.Intn(len(location.ShiftTypes))]

		request := &domain.ShiftRequest{
			Employee:   *employee,
			Date:       monthDay(),
			ShiftType:  shiftType,
			LocationID: location.ID,
			Status:     domain.ShiftRequestPending,
		}
		if err := repo.CreateShiftRequest(request); err != nil {
			slog.Warn("failed to insert shift request", "error", err)
			continue
		}
		created++
	}
	slog.Info("shift requests seeded", "requested", n, "created", created)
}
