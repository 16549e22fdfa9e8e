package handlers

import (
	"careero_backend/internal/logger"
	"careero_backend/internal/services"
	"careero_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type GenerateHandler struct {
	*BaseHandler
	generationService services.GenerationService
}

func NewGenerateHandler(base *BaseHandler, generationService services.GenerationService) *GenerateHandler {
	return &GenerateHandler{
		BaseHandler:       base,
		generationService: generationService,
	}
}

func (h *GenerateHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/generate", authMW, h.Generate)
}

// Generate godoc
// @Summary  Stream an AI-generated resume or cover letter
// @Tags     generate
// @Accept   json
// @Produce  plain
// @Param    body body dto.GenerateRequest true "documentType and applicationId"
// @Success  200 {string} string "generated document, streamed"
// @Router   /generate [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.GenerateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	ctx := c.Request.Context()

	// Errors found before the first chunk (missing application or profile,
	// upstream refusing the call) still produce a normal JSON error
	// response. Once streaming has begun the status line is gone, so a
	// mid-stream failure can only be logged and the connection closed.
	streaming := false
	err := h.generationService.Generate(ctx, db, userID, &req, func(chunk string) error {
		if !streaming {
			c.Header("Content-Type", "text/plain; charset=utf-8")
			c.Header("Cache-Control", "no-cache")
			streaming = true
		}
		if _, err := c.Writer.WriteString(chunk); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		if streaming {
			logger.CtxWithError(ctx, "generation stream aborted", err, "application_id", req.ApplicationID)
			c.Abort()
			return
		}
		h.HandleServiceError(c, err)
	}
}
