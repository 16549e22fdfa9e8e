package services

import (
	"time"

	"careero_backend/internal/models"
	"careero_backend/internal/repositories"
	"careero_backend/internal/services/dto"
	"careero_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateApplicationRequest) (*models.Application, error)
	List(db *gorm.DB, userID string) ([]models.Application, error)
	Get(db *gorm.DB, userID, id string) (*models.Application, error)
	Update(db *gorm.DB, userID, id string, req *dto.UpdateApplicationRequest) (*models.Application, error)
	Delete(db *gorm.DB, userID, id string) error
}

type applicationServiceImpl struct {
	appRepo repositories.ApplicationRepository
}

func NewApplicationService(appRepo repositories.ApplicationRepository) ApplicationService {
	return &applicationServiceImpl{appRepo: appRepo}
}

func (s *applicationServiceImpl) Create(db *gorm.DB, userID string, req *dto.CreateApplicationRequest) (*models.Application, error) {
	status := models.ApplicationStatus(req.Status)
	if status == "" {
		status = models.ApplicationStatusApplied
	}

	app := &models.Application{
		UserID:         userID,
		Company:        req.Company,
		Position:       req.Position,
		JobDescription: req.JobDescription,
		Status:         status,
		AppliedDate:    time.Now(),
	}
	if err := s.appRepo.Create(db, app); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

func (s *applicationServiceImpl) List(db *gorm.DB, userID string) ([]models.Application, error) {
	apps, err := s.appRepo.FindAllByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

func (s *applicationServiceImpl) Get(db *gorm.DB, userID, id string) (*models.Application, error) {
	app, err := s.appRepo.FindByIDForUser(db, id, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NewNotFoundError("Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

func (s *applicationServiceImpl) Update(db *gorm.DB, userID, id string, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	app, err := s.Get(db, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Company != nil {
		app.Company = *req.Company
	}
	if req.Position != nil {
		app.Position = *req.Position
	}
	if req.JobDescription != nil {
		app.JobDescription = *req.JobDescription
	}
	if req.Status != nil {
		app.Status = models.ApplicationStatus(*req.Status)
	}
	if req.AppliedDate != nil {
		app.AppliedDate = *req.AppliedDate
	}
	if req.Resume != nil {
		app.Resume = req.Resume
	}
	if req.CoverLetter != nil {
		app.CoverLetter = req.CoverLetter
	}

	if err := s.appRepo.Update(db, app); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

func (s *applicationServiceImpl) Delete(db *gorm.DB, userID, id string) error {
	if err := s.appRepo.DeleteByIDForUser(db, id, userID); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.NewNotFoundError("Application not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
