package endpoints

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/feed"
)

// abortWithError maps the service error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is a 500 and gets logged; taxonomy errors
// carry their own annotation as the response message.
func abortWithError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, feed.ErrInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, feed.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, feed.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, feed.ErrConflict):
		status = http.StatusConflict
	default:
		logrus.Error(err)
	}
	ctx.AbortWithStatusJSON(status, gin.H{"success": false, "message": err.Error()})
}
