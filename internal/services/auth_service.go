package services

import (
	"careero_backend/internal/auth"
	"careero_backend/internal/config"
	"careero_backend/internal/email"
	"careero_backend/internal/logger"
	"careero_backend/internal/models"
	"careero_backend/internal/repositories"
	"careero_backend/internal/services/dto"
	"careero_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	// Register creates the account and returns the user together with a
	// fresh session token.
	Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, string, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*models.User, string, error)
	// CurrentUser resolves a session's user id; a deleted user comes back
	// as an unauthorized error, not a 404.
	CurrentUser(db *gorm.DB, userID string) (*models.User, error)
}

type authServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider) AuthService {
	return &authServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

func (s *authServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, string, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, "", apperrors.NewConflictError("User already exists")
		}
		return nil, "", apperrors.InternalError(err)
	}

	token, err := auth.NewSessionToken(user.ID, config.GetConfig().Session.Secret)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	// Best effort; a mail failure must not fail the registration.
	go func(to, name string) {
		if err := s.emailProvider.SendWelcome(to, name); err != nil {
			logger.Warn("welcome email not sent", "email", to, "error", err.Error())
		}
	}(user.Email, user.Name)

	return user, token, nil
}

func (s *authServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, "", apperrors.NewNotFoundError("User not found")
		}
		return nil, "", apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", apperrors.NewUnauthorizedError("Invalid password")
	}

	token, err := auth.NewSessionToken(user.ID, config.GetConfig().Session.Secret)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}
	return user, token, nil
}

func (s *authServiceImpl) CurrentUser(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Unauthorized")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
