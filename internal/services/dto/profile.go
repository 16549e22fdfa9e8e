package dto

import "careero_backend/internal/models"

type SaveProfileRequest struct {
	Name       string                   `json:"name" validate:"required"`
	Email      string                   `json:"email" validate:"required,email"`
	Phone      string                   `json:"phone"`
	Skills     []string                 `json:"skills"`
	Experience []models.ExperienceEntry `json:"experience"`
	Education  []models.EducationEntry  `json:"education"`
}
