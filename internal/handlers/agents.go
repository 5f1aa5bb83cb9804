package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type agentRequest struct {
	Name string `json:"name" binding:"required" example:"juan perez"`
}

type sectorRequest struct {
	// SectorID null unassigns the agent.
	SectorID *string `json:"sectorId" example:"sector-sur"`
}

// @Summary      List agents
// @Tags         agents
// @Produce      json
// @Success      200  {array}  models.Agent
// @Router       /api/v1/agents [get]
// @Security     BearerAuth
func (h *Handler) listAgents(c *gin.Context) {
	agents, err := h.services.Agents.List(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "failed to load agents", "agents_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, agents)
}

// @Summary      Create agent
// @Description  The name is stored upper-cased
// @Tags         agents
// @Accept       json
// @Produce      json
// @Param        body  body      agentRequest  true  "Agent"
// @Success      201   {object}  models.Agent
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/agents [post]
// @Security     BearerAuth
func (h *Handler) createAgent(c *gin.Context) {
	var req agentRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	agent, err := h.services.Agents.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.respondServiceError(c, "failed to create agent", "agents_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, agent)
}

// @Summary      Assign agent to a sector
// @Tags         agents
// @Accept       json
// @Param        id    path  string         true  "Agent id"
// @Param        body  body  sectorRequest  true  "Sector"
// @Success      204
// @Router       /api/v1/agents/{id}/sector [patch]
// @Security     BearerAuth
func (h *Handler) assignSector(c *gin.Context) {
	var req sectorRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	id := c.Param("id")
	if err := h.services.AssignSector(c.Request.Context(), id, req.SectorID); err != nil {
		h.respondServiceError(c, "failed to assign sector", "agents_assign_sector_failed", err, "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
