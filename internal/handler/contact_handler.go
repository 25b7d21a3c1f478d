package handler

import (
	"net/http"
	"strconv"

	"contact_book/internal/model"
	"contact_book/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact related requests
type ContactHandler struct {
	service service.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(s service.ContactService) *ContactHandler {
	return &ContactHandler{service: s}
}

func (h *ContactHandler) Create(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.WebResponse{Errors: "Unauthorized"})
		return
	}

	var req model.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.WebResponse{Errors: "Invalid request body"})
		return
	}

	contactResponse, err := h.service.Create(c.Request.Context(), user, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse{Data: contactResponse})
}

func (h *ContactHandler) Get(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.WebResponse{Errors: "Unauthorized"})
		return
	}

	contactResponse, err := h.service.Get(c.Request.Context(), user, c.Param("contactId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse{Data: contactResponse})
}

func (h *ContactHandler) Update(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.WebResponse{Errors: "Unauthorized"})
		return
	}

	var req model.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.WebResponse{Errors: "Invalid request body"})
		return
	}

	contactResponse, err := h.service.Update(c.Request.Context(), user, c.Param("contactId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse{Data: contactResponse})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.WebResponse{Errors: "Unauthorized"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), user, c.Param("contactId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse{Data: "OK"})
}

func (h *ContactHandler) Search(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.WebResponse{Errors: "Unauthorized"})
		return
	}

	req := model.SearchContactRequest{Page: 0, Size: 10}
	if name := c.Query("name"); name != "" {
		req.Name = &name
	}
	if email := c.Query("email"); email != "" {
		req.Email = &email
	}
	if phone := c.Query("phone"); phone != "" {
		req.Phone = &phone
	}
	if pageParam := c.Query("page"); pageParam != "" {
		page, err := strconv.Atoi(pageParam)
		if err != nil || page < 0 {
			c.JSON(http.StatusBadRequest, model.WebResponse{Errors: "Invalid page parameter"})
			return
		}
		req.Page = page
	}
	if sizeParam := c.Query("size"); sizeParam != "" {
		size, err := strconv.Atoi(sizeParam)
		if err != nil || size < 1 {
			c.JSON(http.StatusBadRequest, model.WebResponse{Errors: "Invalid size parameter"})
			return
		}
		req.Size = size
	}

	contactResponses, paging, err := h.service.Search(c.Request.Context(), user, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse{Data: contactResponses, Paging: paging})
}

// RegisterContactRoutes registers contact routes; all require authentication.
func (h *ContactHandler) RegisterContactRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	contacts := rg.Group("/contacts")
	contacts.Use(authMW)
	{
		contacts.POST("", h.Create)
		contacts.GET("", h.Search)
		contacts.GET("/:contactId", h.Get)
		contacts.PUT("/:contactId", h.Update)
		contacts.DELETE("/:contactId", h.Delete)
	}
}
