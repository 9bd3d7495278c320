package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itsfarrukhali/bathfitter-backend/internal/models"
	"github.com/itsfarrukhali/bathfitter-backend/internal/responses"
	"github.com/itsfarrukhali/bathfitter-backend/internal/services"
)

// Cookie configuration
const (
	RefreshTokenCookieName = "refresh_token"
	RefreshTokenMaxAge     = 30 * 24 * 3600 // 30 days in seconds
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide your email and password correctly")
		return
	}

	user := &models.User{
		Email:    req.Email,
		Password: req.Password,
	}
	tokens, err := h.authService.Register(c.Request.Context(), user)
	if err != nil {
		responses.FailFromError(c, err, "Could not register user")
		return
	}

	c.SetCookie(RefreshTokenCookieName, tokens.RefreshToken, RefreshTokenMaxAge, "/", "", true, true)

	// Only the access token travels in the response body
	res := gin.H{
		"access_token": tokens.AccessToken,
	}

	responses.Success(c, http.StatusCreated, res, "New user registered successfully!")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Failed to login")
		return
	}

	c.SetCookie(RefreshTokenCookieName, tokens.RefreshToken, RefreshTokenMaxAge, "/", "", true, true)

	res := gin.H{
		"access_token": tokens.AccessToken,
	}

	responses.Success(c, http.StatusOK, res, "User Login Successfully!")
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshTokenCookieName)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Missing refresh token")
		return
	}

	// Rotation: the old refresh token is blacklisted, a new one is issued
	tokens, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		c.SetCookie(RefreshTokenCookieName, "", -1, "/", "", true, true)
		responses.Fail(c, http.StatusUnauthorized, err, "Invalid refresh token")
		return
	}

	c.SetCookie(RefreshTokenCookieName, tokens.RefreshToken, RefreshTokenMaxAge, "/", "", true, true)

	res := gin.H{
		"access_token": tokens.AccessToken,
	}

	responses.Success(c, http.StatusOK, res, "Token refreshed successfully")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshTokenCookieName)
	if err == nil && refreshToken != "" {
		if err := h.authService.Logout(c.Request.Context(), refreshToken); err != nil {
			responses.Fail(c, http.StatusUnauthorized, err, "Could not revoke token")
			return
		}
	}

	c.SetCookie(RefreshTokenCookieName, "", -1, "/", "", true, true)

	responses.Success(c, http.StatusOK, nil, "Logged out successfully")
}
