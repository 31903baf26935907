package utils

import (
	"testing"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestValidateShiftTypeTimes(t *testing.T) {
	location := &domain.Location{
		Title: "Trattoria Centro",
		ShiftTypes: []domain.ShiftType{
			{Title: "Morning", StartTime: "08:00:00", EndTime: "14:00:00"},
			{Title: "Evening", StartTime: "17:00", EndTime: "23:30"},
		},
	}
	require.NoError(t, ValidateShiftTypeTimes(location))
}

func TestValidateShiftTypeTimesRejectsMalformed(t *testing.T) {
	location := &domain.Location{
		ShiftTypes: []domain.ShiftType{
			{Title: "Morning", StartTime: "8 o'clock", EndTime: "14:00:00"},
		},
	}
	require.Error(t, ValidateShiftTypeTimes(location))
}

func TestValidateShiftTypeTimesRejectsInvertedRange(t *testing.T) {
	location := &domain.Location{
		ShiftTypes: []domain.ShiftType{
			{Title: "Evening", StartTime: "22:00:00", EndTime: "06:00:00"},
		},
	}
	require.Error(t, ValidateShiftTypeTimes(location))
}
