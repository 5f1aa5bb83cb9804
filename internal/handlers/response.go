package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"sigma/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errInvalidBodyPref    = "invalid body: "
	errInvalidCredentials = "invalid credentials"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		if httpCode >= http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Infow(logKey, fields...)
		}
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondServiceError picks the status for a service error. Caller input problems
// are echoed back; anything else is logged and hidden behind userMsg.
func (h *Handler) respondServiceError(c *gin.Context, userMsg, logKey string, err error, kv ...interface{}) {
	switch {
	case service.IsValidation(err):
		h.logAndJSONError(c, http.StatusBadRequest, err.Error(), logKey, err, kv...)
	case errors.Is(err, service.ErrForbidden):
		h.logAndJSONError(c, http.StatusForbidden, err.Error(), logKey, err, kv...)
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidPassword):
		h.logAndJSONError(c, http.StatusUnauthorized, errInvalidCredentials, logKey, err, kv...)
	case errors.Is(err, service.ErrUserNotApproved), errors.Is(err, service.ErrInvalidToken):
		h.logAndJSONError(c, http.StatusUnauthorized, err.Error(), logKey, err, kv...)
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, userMsg, logKey, err, kv...)
	}
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}

// intParam parses a required integer from the path or query; it writes the 400 itself.
func intParam(c *gin.Context, name, raw string) (int, bool) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid '" + name + "': must be an integer"})
		return 0, false
	}
	return v, true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
