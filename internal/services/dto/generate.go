package dto

type GenerateRequest struct {
	DocumentType  string `json:"documentType" validate:"required,oneof=resume cover_letter"`
	ApplicationID string `json:"applicationId" validate:"required"`
}
