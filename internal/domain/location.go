package domain

import "time"

// ShiftType is a named work-shift template owned by a location. Start and
// end times are wall-clock "HH:MM:SS" strings without a timezone.
type ShiftType struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	ManagerID  *int64 `json:"managerID"`
	LocationID int64  `json:"locationID"`
}

type Location struct {
	ID         int64       `json:"id"`
	Title      string      `json:"title"`
	ShiftTypes []ShiftType `json:"shiftTypes"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
	Version    int32       `json:"-"`
}

// LocationRef is the id+title projection embedded in records that point at
// a location without dragging the owned shift types along.
type LocationRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
