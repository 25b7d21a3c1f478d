package handler

import (
	"net/http"

	"contact_book/internal/model"
	"contact_book/internal/service"

	"github.com/gin-gonic/gin"
)

// AddressHandler handles address requests nested under a contact
type AddressHandler struct {
	service service.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(s service.AddressService) *AddressHandler {
	return &AddressHandler{service: s}
}

func (h *AddressHandler) Create(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.WebResponse{Errors: "Unauthorized"})
		return
	}

	var req model.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.WebResponse{Errors: "Invalid request body"})
		return
	}

	addressResponse, err := h.service.Create(c.Request.Context(), user, c.Param("contactId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse{Data: addressResponse})
}

func (h *AddressHandler) Get(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.WebResponse{Errors: "Unauthorized"})
		return
	}

	addressResponse, err := h.service.Get(c.Request.Context(), user, c.Param("contactId"), c.Param("addressId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse{Data: addressResponse})
}

func (h *AddressHandler) Update(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.WebResponse{Errors: "Unauthorized"})
		return
	}

	var req model.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.WebResponse{Errors: "Invalid request body"})
		return
	}

	addressResponse, err := h.service.Update(c.Request.Context(), user, c.Param("contactId"), c.Param("addressId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse{Data: addressResponse})
}

func (h *AddressHandler) Delete(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.WebResponse{Errors: "Unauthorized"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), user, c.Param("contactId"), c.Param("addressId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse{Data: "OK"})
}

func (h *AddressHandler) GetByContact(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.WebResponse{Errors: "Unauthorized"})
		return
	}

	addressResponses, err := h.service.GetByContact(c.Request.Context(), user, c.Param("contactId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse{Data: addressResponses})
}

// RegisterAddressRoutes registers address routes; all require authentication.
func (h *AddressHandler) RegisterAddressRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	addresses := rg.Group("/contacts/:contactId/addresses")
	addresses.Use(authMW)
	{
		addresses.POST("", h.Create)
		addresses.GET("", h.GetByContact)
		addresses.GET("/:addressId", h.Get)
		addresses.PUT("/:addressId", h.Update)
		addresses.DELETE("/:addressId", h.Delete)
	}
}
