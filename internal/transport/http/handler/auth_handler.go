package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"donation-api/internal/service"
	resp "donation-api/internal/transport/http/response"
)

type AuthHandler struct {
	auth *service.AuthService
	log  *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

type loginIn struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.auth.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			resp.Error(c, http.StatusUnauthorized, resp.MsgInvalidCredentials)
			return
		}
		h.log.Error("login", zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, resp.MsgServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

type changePasswordIn struct {
	Username        string `json:"username" binding:"required"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// ChangePassword enforces the 6-character minimum at the binding; the
// service layer does not re-check it.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var in changePasswordIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	err := h.auth.ChangePassword(c.Request.Context(), in.Username, in.CurrentPassword, in.NewPassword)
	switch {
	case errors.Is(err, service.ErrAdminNotFound):
		resp.Error(c, http.StatusNotFound, resp.MsgAdminNotFound)
	case errors.Is(err, service.ErrInvalidCredentials):
		resp.Error(c, http.StatusUnauthorized, resp.MsgWrongPassword)
	case err != nil:
		h.log.Error("change password", zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, resp.MsgServerError)
	default:
		resp.Message(c, http.StatusOK, resp.MsgPasswordChanged)
	}
}
