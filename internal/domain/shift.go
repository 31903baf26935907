package domain

import "time"

// Shift is a concrete calendar-dated assignment of a shift type. Employee is
// nil for a placeholder assignment that nobody has been put on yet. Date is a
// calendar day, not an instant: the stored value may carry a time-of-day
// component, but two shifts on the same local day count as the same day.
type Shift struct {
	ID        int64       `json:"id"`
	Employee  *User       `json:"employee"`
	Date      time.Time   `json:"date"`
	ShiftType ShiftType   `json:"shiftType"`
	Location  LocationRef `json:"location"`
	CreatedAt time.Time   `json:"createdAt"`
	Version   int32       `json:"-"`
}

// Availability states that an employee is willing to work a given shift type
// at a given location on a given date. Multiple entries per employee per day
// are valid, e.g. for different locations.
type Availability struct {
	ID        int64       `json:"id"`
	Employee  User        `json:"employee"`
	Date      time.Time   `json:"date"`
	Location  LocationRef `json:"location"`
	ShiftType ShiftType   `json:"shiftType"`
	CreatedAt time.Time   `json:"createdAt"`
}
