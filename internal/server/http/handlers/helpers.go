package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sellerdesk/merchanthub/internal/domain/errors"
	"github.com/sellerdesk/merchanthub/internal/server/http/dto"
	"github.com/sellerdesk/merchanthub/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.OK(data))
}

func respondError(c *gin.Context, status int, message, details string) {
	c.JSON(status, dto.Err(message, details))
}

// respondFailure maps an error to the envelope: validation failures and
// known sentinels become client errors with the aggregated message,
// everything else a server error carrying message plus diagnostic detail.
func respondFailure(c *gin.Context, err error) {
	if ve, ok := domainErrors.AsValidation(err); ok {
		respondError(c, http.StatusBadRequest, ve.Error(), "")
		return
	}
	switch err {
	case domainErrors.ErrAlreadyExists:
		respondError(c, http.StatusConflict, "email already registered", "")
	case domainErrors.ErrInvalidCredentials:
		respondError(c, http.StatusUnauthorized, "invalid email or password", "")
	case domainErrors.ErrAccountNotLinked:
		respondError(c, http.StatusConflict, "no connected account linked to user", "")
	case domainErrors.ErrDemoDisabled:
		respondError(c, http.StatusNotFound, "demo mode disabled", "")
	default:
		respondError(c, http.StatusInternalServerError, err.Error(), fmt.Sprintf("%+v", err))
	}
}
