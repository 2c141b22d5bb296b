package resp

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"restaurant/entity"
	"restaurant/repository"
	"restaurant/services"
	"restaurant/utils"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"ok": false, "error": msg})
}

// ServerError logs the cause and answers with a generic message.
func ServerError(c *gin.Context, err error) {
	_ = c.Error(err)
	log.Error().Err(err).Str("request_id", utils.RequestID(c)).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
}

// Error maps domain errors onto status codes. notFoundMsg names the missing thing.
func Error(c *gin.Context, err error, notFoundMsg string) {
	var verr *services.ValidationError
	var terr *entity.TransitionError
	switch {
	case errors.As(err, &verr):
		BadRequest(c, verr.Message)
	case errors.Is(err, entity.ErrInvalidStatus):
		BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, notFoundMsg)
	case errors.As(err, &terr):
		Conflict(c, terr.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		Conflict(c, err.Error())
	default:
		ServerError(c, err)
	}
}
