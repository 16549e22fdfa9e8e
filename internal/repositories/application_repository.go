package repositories

import (
	"errors"

	"careero_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

// ApplicationRepository is the owner-scoped store for job applications.
// Every read and write filters on user_id; a record belonging to another
// user is indistinguishable from a missing one.
type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.Application) error
	FindAllByUser(db *gorm.DB, userID string) ([]models.Application, error)
	FindByIDForUser(db *gorm.DB, id, userID string) (*models.Application, error)
	Update(db *gorm.DB, app *models.Application) error
	DeleteByIDForUser(db *gorm.DB, id, userID string) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.Application) error {
	return db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindAllByUser(db *gorm.DB, userID string) ([]models.Application, error) {
	// Non-nil so an empty result serializes as [] rather than null.
	apps := make([]models.Application, 0)
	err := db.Where("user_id = ?", userID).
		Order("applied_date DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepositoryImpl) FindByIDForUser(db *gorm.DB, id, userID string) (*models.Application, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrApplicationNotFound
	}
	var app models.Application
	err := db.First(&app, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) Update(db *gorm.DB, app *models.Application) error {
	// Save writes all columns, so cleared optional fields persist too.
	return db.Save(app).Error
}

func (r *ApplicationRepositoryImpl) DeleteByIDForUser(db *gorm.DB, id, userID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrApplicationNotFound
	}
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Application{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
