package handlers

import (
	"careero_backend/internal/services"
	"careero_backend/internal/validator"
)

// AppHandlers groups every HTTP handler the router registers.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	ApplicationHandler *ApplicationHandler
	ProfileHandler     *ProfileHandler
	GenerateHandler    *GenerateHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, sc.AuthService),
		ApplicationHandler: NewApplicationHandler(base, sc.ApplicationService),
		ProfileHandler:     NewProfileHandler(base, sc.ProfileService),
		GenerateHandler:    NewGenerateHandler(base, sc.GenerationService),
	}
}
