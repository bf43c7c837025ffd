package handler

import (
	"errors"
	"net/http"

	"toystore-be/internal/admin"
	"toystore-be/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const accessTokenMaxAge = 24 * 60 * 60

type AuthHandler struct {
	adminSvc admin.Service
}

func NewAuthHandler(adminSvc admin.Service) *AuthHandler {
	return &AuthHandler{adminSvc: adminSvc}
}

type loginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// AdminLogin verifies credentials and sets the access_token cookie.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	token, a, err := h.adminSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, err.Error())
			return
		}
		logger.FromCtx(c.Request.Context()).Error("admin login failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "login failed")
		return
	}

	c.SetCookie(admin.AccessTokenCookie, token, accessTokenMaxAge, "/", "", false, true)

	respondOK(c, http.StatusOK, gin.H{
		"username": a.Username,
		"email":    a.Email,
	})
}

// AdminLogout clears the access_token cookie. The JWT itself stays valid
// until expiry; logout is purely client-side.
func (h *AuthHandler) AdminLogout(c *gin.Context) {
	c.SetCookie(admin.AccessTokenCookie, "", -1, "/", "", false, true)
	respondMessage(c, http.StatusOK, "logged out")
}

type registerRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// AdminRegister creates another back-office account. Only reachable behind
// the admin guard, so the seeded account bootstraps the first login.
func (h *AuthHandler) AdminRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "username, email and password are required")
		return
	}

	id, err := h.adminSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrUsernameExists) {
			respondError(c, http.StatusConflict, err.Error())
			return
		}
		logger.FromCtx(c.Request.Context()).Error("admin register failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "register failed")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"id": id})
}
