package handlers

import (
	"net/http"

	"careero_backend/internal/auth"
	"careero_backend/internal/config"
	"careero_backend/internal/services"
	"careero_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes registers the auth endpoints. Logout and me sit behind the
// session middleware; register and login are public.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", authMW, h.Logout)
		authGroup.GET("/me", authMW, h.Me)
	}
}

// Register godoc
// @Summary  Create an account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body dto.RegisterRequest true "registration fields"
// @Success  201 {object} dto.UserResponse
// @Router   /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, token, err := h.authService.Register(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	cfg := config.GetConfig()
	auth.SetSessionCookie(c, token, cfg.Session.TTL, cfg.IsProduction())
	c.JSON(http.StatusCreated, dto.UserResponse{User: user})
}

// Login godoc
// @Summary  Log in with email and password
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body dto.LoginRequest true "credentials"
// @Success  200 {object} dto.UserResponse
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, token, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	cfg := config.GetConfig()
	auth.SetSessionCookie(c, token, cfg.Session.TTL, cfg.IsProduction())
	c.JSON(http.StatusOK, dto.UserResponse{User: user})
}

// Logout godoc
// @Summary  Clear the session cookie
// @Tags     auth
// @Produce  json
// @Success  200 {object} map[string]bool
// @Router   /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c, config.GetConfig().IsProduction())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me godoc
// @Summary  Return the authenticated user
// @Tags     auth
// @Produce  json
// @Success  200 {object} dto.UserResponse
// @Router   /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.CurrentUser(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{User: user})
}
