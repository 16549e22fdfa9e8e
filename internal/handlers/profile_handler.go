package handlers

import (
	"net/http"

	"careero_backend/internal/services"
	"careero_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	profile := rg.Group("/profile")
	profile.Use(authMW)
	{
		profile.POST("", h.Save)
		profile.GET("", h.Get)
	}
}

// Save godoc
// @Summary  Create or replace the user's profile
// @Tags     profile
// @Accept   json
// @Produce  json
// @Param    body body dto.SaveProfileRequest true "profile fields"
// @Success  200 {object} map[string]interface{}
// @Router   /profile [post]
func (h *ProfileHandler) Save(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SaveProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.Save(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Get godoc
// @Summary  Fetch the user's profile (null when not yet created)
// @Tags     profile
// @Produce  json
// @Success  200 {object} map[string]interface{}
// @Router   /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.Get(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// profile may be nil here; the body is then {"profile": null}.
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
