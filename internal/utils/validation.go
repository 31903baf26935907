package utils

import (
	"fmt"
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
)

// ValidateShiftTypeTimes checks that every shift type of a location carries
// well-formed wall-clock times and ends after it starts. Shift types of one
// location may overlap each other; only the individual ranges are checked.
func ValidateShiftTypeTimes(location *domain.Location) error {
	for i, shiftType := range location.ShiftTypes {
		startTime, err := parseWallClock(shiftType.StartTime)
		if err != nil {
			return fmt.Errorf("shift type %d has a malformed start time", i+1)
		}
		endTime, err := parseWallClock(shiftType.EndTime)
		if err != nil {
			return fmt.Errorf("shift type %d has a malformed end time", i+1)
		}
		if !endTime.After(startTime) {
			return fmt.Errorf("shift type %d must end after it starts", i+1)
		}
	}
	return nil
}

// parseWallClock accepts both "HH:MM" and "HH:MM:SS".
func parseWallClock(value string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", value); err == nil {
		return t, nil
	}
	return time.Parse("15:04", value)
}
