package domain

import "time"

type ShiftRequestStatus string

const (
	ShiftRequestPending  ShiftRequestStatus = "Pending"
	ShiftRequestAccepted ShiftRequestStatus = "Accepted"
	ShiftRequestRefused  ShiftRequestStatus = "Refused"
)

func (s ShiftRequestStatus) Valid() bool {
	switch s {
	case ShiftRequestPending, ShiftRequestAccepted, ShiftRequestRefused:
		return true
	}
	return false
}

// Decided reports whether the status is a terminal decision. Only decided
// statuses are valid transition targets.
func (s ShiftRequestStatus) Decided() bool {
	return s == ShiftRequestAccepted || s == ShiftRequestRefused
}

// ShiftRequest is a proposal for an assignment. It is created Pending and
// moved to Accepted or Refused exactly once. Deletion is allowed in any
// state.
type ShiftRequest struct {
	ID         int64              `json:"id"`
	Employee   User               `json:"employee"`
	Date       time.Time          `json:"date"`
	ShiftType  ShiftType          `json:"shiftType"`
	LocationID int64              `json:"location"`
	Status     ShiftRequestStatus `json:"status"`
	CreatedAt  time.Time          `json:"createdAt"`
	Version    int32              `json:"-"`
}
