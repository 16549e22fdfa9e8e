package dto

import "time"

type CreateApplicationRequest struct {
	Company        string `json:"company" validate:"required"`
	Position       string `json:"position" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
	Status         string `json:"status" validate:"omitempty,oneof=applied interview offer rejected"`
}

// UpdateApplicationRequest carries a partial update: only non-nil fields
// are applied to the stored record.
type UpdateApplicationRequest struct {
	Company        *string    `json:"company" validate:"omitempty,min=1"`
	Position       *string    `json:"position" validate:"omitempty,min=1"`
	JobDescription *string    `json:"jobDescription" validate:"omitempty,min=1"`
	Status         *string    `json:"status" validate:"omitempty,oneof=applied interview offer rejected"`
	AppliedDate    *time.Time `json:"appliedDate"`
	Resume         *string    `json:"resume"`
	CoverLetter    *string    `json:"coverLetter"`
}
