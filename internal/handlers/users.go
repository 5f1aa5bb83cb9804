package handlers

import (
	"net/http"
	"strings"

	"sigma/internal/models"

	"github.com/gin-gonic/gin"
)

type approveRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

type roleRequest struct {
	Role string `json:"role" binding:"required" example:"ADMIN"`
}

// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.PublicUser
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/users [get]
// @Security     BearerAuth
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "failed to load users", "users_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      List registrations pending approval
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.PublicUser
// @Router       /api/v1/users/pending [get]
// @Security     BearerAuth
func (h *Handler) pendingUsers(c *gin.Context) {
	users, err := h.services.Pending(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "failed to load users", "users_pending_failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      Approve or reject a registration
// @Tags         users
// @Accept       json
// @Param        id    path  string          true  "User id"
// @Param        body  body  approveRequest  true  "Decision"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/users/{id}/approve [post]
// @Security     BearerAuth
func (h *Handler) approveUser(c *gin.Context) {
	var req approveRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	id := c.Param("id")
	if err := h.services.Approve(c.Request.Context(), id, *req.Approve); err != nil {
		h.respondServiceError(c, "failed to update user", "users_approve_failed", err, "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Change a user's role
// @Tags         users
// @Accept       json
// @Param        id    path  string       true  "User id"
// @Param        body  body  roleRequest  true  "Role"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/users/{id}/role [patch]
// @Security     BearerAuth
func (h *Handler) updateUserRole(c *gin.Context) {
	var req roleRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	id := c.Param("id")
	role := models.UserRole(strings.ToUpper(strings.TrimSpace(req.Role)))
	if err := h.services.UpdateRole(c.Request.Context(), id, role); err != nil {
		h.respondServiceError(c, "failed to update user", "users_update_role_failed", err, "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Delete a user
// @Tags         users
// @Param        id  path  string  true  "User id"
// @Success      204
// @Router       /api/v1/users/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	id := c.Param("id")
	if err := h.services.Users.Delete(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, "failed to delete user", "users_delete_failed", err, "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
