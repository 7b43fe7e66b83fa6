package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/gym-network-toolkit/portal/internal/entity/dto/v1"
	"github.com/gym-network-toolkit/portal/internal/usecase/sqldb"
)

type response struct {
	Error   string `json:"error,omitempty" example:"message"`
	Message string `json:"message,omitempty" example:"message"`
}

// ErrorResponse translates layered errors into HTTP once, here. Handlers
// never map status codes themselves.
func ErrorResponse(c *gin.Context, err error) {
	var (
		validatorErr validator.ValidationErrors
		notValidErr  dto.NotValidError
		nfErr        sqldb.NotFoundError
		dbErr        sqldb.DatabaseError
	)

	switch {
	case errors.As(err, &notValidErr):
		msg := notValidErr.Portal.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: msg, Message: msg})
	case errors.As(err, &validatorErr):
		msg := validatorErr.Error()
		c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: msg, Message: msg})
	case errors.As(err, &nfErr):
		message := "Error not found"
		if nfErr.Portal.FriendlyMessage() != "" {
			message = nfErr.Portal.FriendlyMessage()
		}

		c.AbortWithStatusJSON(http.StatusNotFound, response{Error: message, Message: message})
	case errors.As(err, &dbErr):
		msg := dbErr.Portal.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: msg, Message: msg})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, response{Error: "general error", Message: "general error"})
	}
}
