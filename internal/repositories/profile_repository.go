package repositories

import (
	"errors"

	"careero_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	// Upsert replaces the user's profile if one exists, else inserts it.
	// The unique index on user_id guarantees at most one row per user.
	Upsert(db *gorm.DB, profile *models.Profile) (*models.Profile, error)
	FindByUser(db *gorm.DB, userID string) (*models.Profile, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) Upsert(db *gorm.DB, profile *models.Profile) (*models.Profile, error) {
	var existing models.Profile
	err := db.First(&existing, "user_id = ?", profile.UserID).Error
	switch {
	case err == nil:
		// Replace every profile field, keep the row identity.
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		if err := db.Save(profile).Error; err != nil {
			return nil, err
		}
		return profile, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := db.Create(profile).Error; err != nil {
			return nil, err
		}
		return profile, nil
	default:
		return nil, err
	}
}

func (r *ProfileRepositoryImpl) FindByUser(db *gorm.DB, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}
