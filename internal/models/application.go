package models

import "time"

type Application struct {
	BaseModel
	UserID         string            `gorm:"type:uuid;not null;index" json:"userId"`
	Company        string            `gorm:"not null" json:"company"`
	Position       string            `gorm:"not null" json:"position"`
	JobDescription string            `gorm:"type:text;not null" json:"jobDescription"`
	Status         ApplicationStatus `gorm:"type:varchar(20);default:'applied'" json:"status"`
	AppliedDate    time.Time         `gorm:"not null;index" json:"appliedDate"`
	Resume         *string           `gorm:"type:text" json:"resume"`
	CoverLetter    *string           `gorm:"type:text" json:"coverLetter"`
}
