package domain

import "time"

type RatingCategory struct {
	Star    int32  `json:"star"`
	Comment string `json:"comment"`
}

type Rating struct {
	ID          int64          `json:"id"`
	UserID      int64          `json:"userID"`
	Competence  RatingCategory `json:"competence"`
	Punctuality RatingCategory `json:"punctuality"`
	Behavior    RatingCategory `json:"behavior"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Version     int32          `json:"-"`
}
