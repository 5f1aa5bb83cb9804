package handlers

import (
	"net/http"
	"strings"

	"sigma/internal/models"
	"sigma/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "userId"
	ctxRole   = "role"
)

// userIdentity resolves the bearer token into the caller's id and role.
func (h *Handler) userIdentity(c *gin.Context) {
	h.identify(c, c.GetHeader("Authorization"))
}

// streamIdentity is userIdentity for WebSocket upgrades. Browsers cannot set
// headers on the handshake, so ?access_token= is accepted when the header is
// absent.
func (h *Handler) streamIdentity(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if token := c.Query("access_token"); token != "" {
			header = "Bearer " + token
		}
	}
	h.identify(c, header)
}

func (h *Handler) identify(c *gin.Context, header string) {
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	session, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(ctxUserID, session.UserID)
	c.Set(ctxRole, session.Role)
	c.Next()
}

// adminOnly must run after userIdentity.
func (h *Handler) adminOnly(c *gin.Context) {
	role, _ := c.Get(ctxRole)
	if r, ok := role.(models.UserRole); !ok || r != models.RoleAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": service.ErrForbidden.Error(),
		})
		return
	}
	c.Next()
}
