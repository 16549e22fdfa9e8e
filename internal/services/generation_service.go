package services

import (
	"context"
	"strings"

	"careero_backend/internal/ai"
	"careero_backend/internal/logger"
	"careero_backend/internal/models"
	"careero_backend/internal/repositories"
	"careero_backend/internal/services/dto"
	"careero_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type GenerationService interface {
	// Generate streams a resume or cover letter for the given application
	// into sink chunk by chunk. On successful completion the accumulated
	// document is persisted onto the application record. Cancelling ctx
	// (e.g. the client disconnecting) aborts the upstream call; nothing is
	// persisted in that case.
	Generate(ctx context.Context, db *gorm.DB, userID string, req *dto.GenerateRequest, sink ai.ChunkFunc) error
}

type generationServiceImpl struct {
	appRepo     repositories.ApplicationRepository
	profileRepo repositories.ProfileRepository
	aiClient    ai.Client
}

func NewGenerationService(appRepo repositories.ApplicationRepository, profileRepo repositories.ProfileRepository, aiClient ai.Client) GenerationService {
	return &generationServiceImpl{
		appRepo:     appRepo,
		profileRepo: profileRepo,
		aiClient:    aiClient,
	}
}

func (s *generationServiceImpl) Generate(ctx context.Context, db *gorm.DB, userID string, req *dto.GenerateRequest, sink ai.ChunkFunc) error {
	app, err := s.appRepo.FindByIDForUser(db, req.ApplicationID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.NewNotFoundError("Application not found")
		}
		return apperrors.InternalError(err)
	}

	profile, err := s.profileRepo.FindByUser(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.NewNotFoundError("Profile not found. Please complete your profile first.")
		}
		return apperrors.InternalError(err)
	}

	docType := models.DocumentType(req.DocumentType)
	var prompt string
	if docType == models.DocumentTypeResume {
		prompt = buildResumePrompt(app, profile)
	} else {
		prompt = buildCoverLetterPrompt(app, profile)
	}

	// Forward each chunk downstream immediately and accumulate a copy for
	// the save-after-stream step.
	var full strings.Builder
	err = s.aiClient.StreamCompletion(ctx, generationSystemPrompt, prompt, func(chunk string) error {
		full.WriteString(chunk)
		return sink(chunk)
	})
	if err != nil {
		return apperrors.NewExternalServiceError(err, "Document generation failed")
	}

	text := full.String()
	if docType == models.DocumentTypeResume {
		app.Resume = &text
	} else {
		app.CoverLetter = &text
	}
	if err := s.appRepo.Update(db, app); err != nil {
		// The client already has the document; losing the copy is a
		// server-side inconsistency worth surfacing in logs, not a reason
		// to fail the finished stream.
		logger.CtxWithError(ctx, "failed to persist generated document", err,
			"application_id", app.ID, "document_type", req.DocumentType)
	}
	return nil
}
