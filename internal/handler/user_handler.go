package handler

import (
	"net/http"

	"contact_book/internal/model"
	"contact_book/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles registration and account requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.WebResponse{Errors: "Invalid request body"})
		return
	}

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse{Data: "OK"})
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.WebResponse{Errors: "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, model.WebResponse{Data: h.service.Get(user)})
}

func (h *UserHandler) Update(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.WebResponse{Errors: "Unauthorized"})
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.WebResponse{Errors: "Invalid request body"})
		return
	}

	userResponse, err := h.service.Update(c.Request.Context(), user, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse{Data: userResponse})
}

// RegisterUserRoutes registers the user routes; registration is open.
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/users/register", h.Register)
	rg.GET("/users", authMW, h.Get)
	rg.PATCH("/users/update", authMW, h.Update)
}
