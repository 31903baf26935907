package domain

import "time"

type CVStatus string

const (
	CVPending  CVStatus = "pending"
	CVApproved CVStatus = "approved"
	CVRejected CVStatus = "rejected"
)

func (s CVStatus) Valid() bool {
	switch s {
	case CVPending, CVApproved, CVRejected:
		return true
	}
	return false
}

type CV struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Designation    string    `json:"designation"`
	UserID         int64     `json:"user"`
	Location       string    `json:"location"`
	FileURL        string    `json:"cv"`
	ApprovalStatus CVStatus  `json:"approvalStatus"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Version        int32     `json:"-"`
}
