package services

// ServiceContainer groups every service the handlers depend on.
type ServiceContainer struct {
	AuthService        AuthService
	ApplicationService ApplicationService
	ProfileService     ProfileService
	GenerationService  GenerationService
}
