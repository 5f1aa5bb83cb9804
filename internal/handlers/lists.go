package handlers

import (
	"net/http"

	"sigma/internal/models"
	"sigma/internal/service"

	"github.com/gin-gonic/gin"
)

const errListNotFound = "no list for that period"

type draftRequest struct {
	Month       int                       `json:"month" binding:"required" example:"3"`
	Year        int                       `json:"year" binding:"required" example:"2024"`
	StationID   string                    `json:"stationId,omitempty" example:"dos-hermanas"`
	Types       []models.InstallationType `json:"types,omitempty"`
	PendingOnly bool                      `json:"pendingOnly,omitempty"`
}

// @Summary      Save a monthly worklist
// @Description  Replaces any list stored for the same month and year
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        body  body      models.MonthlyList  true  "Worklist"
// @Success      200   {object}  models.MonthlyList
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/lists [put]
// @Security     BearerAuth
func (h *Handler) saveList(c *gin.Context) {
	var list models.MonthlyList
	if ok := h.bindJSONOrBadRequest(c, &list); !ok {
		return
	}
	saved, err := h.services.Save(c.Request.Context(), list)
	if err != nil {
		h.respondServiceError(c, "failed to save list", "lists_save_failed", err, "month", list.Month, "year", list.Year)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// @Summary      Get a monthly worklist
// @Description  Item completion reflects the elements' current state
// @Tags         lists
// @Produce      json
// @Param        year   path  int  true  "Year"
// @Param        month  path  int  true  "Month 1-12"
// @Success      200  {object}  models.MonthlyList
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/lists/{year}/{month} [get]
// @Security     BearerAuth
func (h *Handler) getList(c *gin.Context) {
	year, ok := intParam(c, "year", c.Param("year"))
	if !ok {
		return
	}
	month, ok := intParam(c, "month", c.Param("month"))
	if !ok {
		return
	}
	list, err := h.services.Worklist.Get(c.Request.Context(), month, year)
	if err != nil {
		h.respondServiceError(c, "failed to load list", "lists_get_failed", err, "month", month, "year", year)
		return
	}
	if list == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errListNotFound})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Draft a monthly worklist from the registry
// @Description  Not stored; review and PUT it to /lists
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        body  body      draftRequest  true  "Selection"
// @Success      200   {object}  models.MonthlyList
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/lists/draft [post]
// @Security     BearerAuth
func (h *Handler) draftList(c *gin.Context) {
	var req draftRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	list, err := h.services.Draft(c.Request.Context(), service.DraftParams{
		Month:       req.Month,
		Year:        req.Year,
		StationID:   req.StationID,
		Types:       req.Types,
		PendingOnly: req.PendingOnly,
	})
	if err != nil {
		h.respondServiceError(c, "failed to draft list", "lists_draft_failed", err)
		return
	}
	c.JSON(http.StatusOK, list)
}
