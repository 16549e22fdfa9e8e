package handlers

import (
	"net/http"

	"careero_backend/internal/services"
	"careero_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	apps := rg.Group("/applications")
	apps.Use(authMW)
	{
		apps.POST("", h.Create)
		apps.GET("", h.List)
		apps.GET("/:id", h.Get)
		apps.PUT("/:id", h.Update)
		apps.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary  Record a job application
// @Tags     applications
// @Accept   json
// @Produce  json
// @Param    body body dto.CreateApplicationRequest true "application fields"
// @Success  201 {object} map[string]interface{}
// @Router   /applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	app, err := h.applicationService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"application": app})
}

// List godoc
// @Summary  List the user's applications, most recent first
// @Tags     applications
// @Produce  json
// @Success  200 {object} map[string]interface{}
// @Router   /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	apps, err := h.applicationService.List(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// Get godoc
// @Summary  Fetch one application by id
// @Tags     applications
// @Produce  json
// @Param    id path string true "application id"
// @Success  200 {object} map[string]interface{}
// @Router   /applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	app, err := h.applicationService.Get(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": app})
}

// Update godoc
// @Summary  Partially update an application
// @Tags     applications
// @Accept   json
// @Produce  json
// @Param    id path string true "application id"
// @Param    body body dto.UpdateApplicationRequest true "fields to change"
// @Success  200 {object} map[string]interface{}
// @Router   /applications/{id} [put]
func (h *ApplicationHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	app, err := h.applicationService.Update(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": app})
}

// Delete godoc
// @Summary  Delete an application
// @Tags     applications
// @Produce  json
// @Param    id path string true "application id"
// @Success  200 {object} map[string]bool
// @Router   /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.applicationService.Delete(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
