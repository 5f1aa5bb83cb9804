package handlers

import (
	"net/http"
	"strings"

	"sigma/internal/models"

	"github.com/gin-gonic/gin"
)

const errElementNotFound = "element not found"

func installationTypeQuery(c *gin.Context) (models.InstallationType, bool) {
	typ := models.InstallationType(strings.ToUpper(strings.TrimSpace(c.Query("type"))))
	if !typ.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'type': use CIRCUITOS or MOTORES"})
		return "", false
	}
	return typ, true
}

// @Summary      List a station's elements of one installation type
// @Tags         elements
// @Produce      json
// @Param        station  path   string  true  "Station id"
// @Param        type     query  string  true  "Installation type"  Enums(CIRCUITOS,MOTORES)
// @Success      200  {array}   models.Element
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/stations/{station}/elements [get]
// @Security     BearerAuth
func (h *Handler) stationElements(c *gin.Context) {
	typ, ok := installationTypeQuery(c)
	if !ok {
		return
	}
	station := c.Param("station")
	elements, err := h.services.ByStationAndType(c.Request.Context(), station, typ)
	if err != nil {
		h.respondServiceError(c, "failed to load elements", "elements_list_failed", err, "station", station)
		return
	}
	c.JSON(http.StatusOK, elements)
}

// @Summary      Count a station's elements per installation type
// @Tags         elements
// @Produce      json
// @Param        station  path  string  true  "Station id"
// @Success      200  {object}  map[string]int
// @Router       /api/v1/stations/{station}/counts [get]
// @Security     BearerAuth
func (h *Handler) stationCounts(c *gin.Context) {
	station := c.Param("station")
	counts, err := h.services.CountsByStation(c.Request.Context(), station)
	if err != nil {
		h.respondServiceError(c, "failed to count elements", "elements_count_failed", err, "station", station)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// @Summary      Create element
// @Tags         elements
// @Accept       json
// @Produce      json
// @Param        body  body      models.Element  true  "Element"
// @Success      201   {object}  models.Element
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/elements [post]
// @Security     BearerAuth
func (h *Handler) createElement(c *gin.Context) {
	var e models.Element
	if ok := h.bindJSONOrBadRequest(c, &e); !ok {
		return
	}
	created, err := h.services.Elements.Create(c.Request.Context(), e)
	if err != nil {
		h.respondServiceError(c, "failed to create element", "elements_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary      Get element
// @Tags         elements
// @Produce      json
// @Param        id  path  string  true  "Element id"
// @Success      200  {object}  models.Element
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/elements/{id} [get]
// @Security     BearerAuth
func (h *Handler) getElement(c *gin.Context) {
	id := c.Param("id")
	e, err := h.services.Elements.Get(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "failed to load element", "elements_get_failed", err, "id", id)
		return
	}
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errElementNotFound})
		return
	}
	c.JSON(http.StatusOK, e)
}

// @Summary      Replace element
// @Description  Full replace; the last writer wins. Unknown ids are ignored.
// @Tags         elements
// @Accept       json
// @Param        id    path  string          true  "Element id"
// @Param        body  body  models.Element  true  "Element"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/elements/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateElement(c *gin.Context) {
	var e models.Element
	if ok := h.bindJSONOrBadRequest(c, &e); !ok {
		return
	}
	e.ID = c.Param("id")
	if err := h.services.Update(c.Request.Context(), e); err != nil {
		h.respondServiceError(c, "failed to update element", "elements_update_failed", err, "id", e.ID)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Delete element
// @Tags         elements
// @Param        id  path  string  true  "Element id"
// @Success      204
// @Router       /api/v1/elements/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteElement(c *gin.Context) {
	id := c.Param("id")
	if err := h.services.Elements.Delete(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, "failed to delete element", "elements_delete_failed", err, "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
