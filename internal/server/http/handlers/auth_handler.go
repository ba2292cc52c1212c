package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amarhadpad/artistgrade/internal/server/http/dto"
	"github.com/Amarhadpad/artistgrade/internal/server/http/middleware"
	"github.com/Amarhadpad/artistgrade/internal/usecase"
)

// AuthHandler processes registration, login, and session introspection.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.facade.Register(c.Request.Context(), usecase.RegisterParams{
		FullName:        req.FullName,
		Username:        req.Username,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Gender:          req.Gender,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetSessionCookie(c, token)
	c.JSON(http.StatusOK, toUserResponse(user))
}

// Logout handles POST /api/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// CurrentUser handles GET /api/current_user.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, err := h.facade.User(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}
