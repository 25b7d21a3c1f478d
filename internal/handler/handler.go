package handler

import (
	"errors"
	"net/http"

	"contact_book/internal/middleware"
	"contact_book/internal/model"
	"contact_book/internal/service"
	"contact_book/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// currentUser reads the principal the token middleware stored in the context.
func currentUser(c *gin.Context) (*model.User, error) {
	userVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return nil, errors.New("user not found in context")
	}
	user, ok := userVal.(*model.User)
	if !ok {
		return nil, errors.New("invalid user type in context")
	}
	return user, nil
}

// writeError maps a service error onto the response envelope with the
// designated status code. Unclassified errors become a 500 with the detail
// kept out of the response body.
func writeError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, model.WebResponse{Errors: verr.Error()})
	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, model.WebResponse{Errors: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, model.WebResponse{Errors: err.Error()})
	case errors.Is(err, service.ErrContactNotFound), errors.Is(err, service.ErrAddressNotFound):
		c.JSON(http.StatusNotFound, model.WebResponse{Errors: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, model.WebResponse{Errors: "Internal Server Error"})
	}
}
