package handler

import (
	"net/http"

	"contact_book/internal/model"
	"contact_book/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.WebResponse{Errors: "Invalid request body"})
		return
	}

	tokenResponse, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse{Data: tokenResponse})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.WebResponse{Errors: "Unauthorized"})
		return
	}

	if err := h.service.Logout(c.Request.Context(), user); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse{Data: "OK"})
}

// RegisterAuthRoutes registers the auth routes; only logout is protected.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/users/login", h.Login)
	rg.DELETE("/users/logout", authMW, h.Logout)
}
