package services

import (
	"careero_backend/internal/models"
	"careero_backend/internal/repositories"
	"careero_backend/internal/services/dto"
	"careero_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	// Save upserts the user's single profile; the latest fields win.
	Save(db *gorm.DB, userID string, req *dto.SaveProfileRequest) (*models.Profile, error)
	// Get returns (nil, nil) when the user has no profile yet.
	Get(db *gorm.DB, userID string) (*models.Profile, error)
}

type profileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &profileServiceImpl{profileRepo: profileRepo}
}

func (s *profileServiceImpl) Save(db *gorm.DB, userID string, req *dto.SaveProfileRequest) (*models.Profile, error) {
	profile := &models.Profile{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
	}
	profile.SetSkills(req.Skills)
	profile.SetExperience(req.Experience)
	profile.SetEducation(req.Education)

	saved, err := s.profileRepo.Upsert(db, profile)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return saved, nil
}

func (s *profileServiceImpl) Get(db *gorm.DB, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUser(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
