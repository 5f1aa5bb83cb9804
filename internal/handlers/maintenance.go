package handlers

import (
	"net/http"
	"time"

	"sigma/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      Record maintenance
// @Description  Appends the record and stamps the element's lastMaintenanceDate. Whether the element also becomes completed depends on maintenance.marks_completed.
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        body  body      models.MaintenanceRecord  true  "Record"
// @Success      201   {object}  models.MaintenanceRecord
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/maintenance [post]
// @Security     BearerAuth
func (h *Handler) addMaintenance(c *gin.Context) {
	var rec models.MaintenanceRecord
	if ok := h.bindJSONOrBadRequest(c, &rec); !ok {
		return
	}
	saved, err := h.services.AddMaintenance(c.Request.Context(), rec)
	if err != nil {
		h.respondServiceError(c, "failed to record maintenance", "maintenance_add_failed", err, "element_id", rec.ElementID)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// @Summary      Maintenance history of an element
// @Description  Newest first
// @Tags         maintenance
// @Produce      json
// @Param        id  path  string  true  "Element id"
// @Success      200  {array}  models.MaintenanceRecord
// @Router       /api/v1/elements/{id}/maintenance [get]
// @Security     BearerAuth
func (h *Handler) maintenanceHistory(c *gin.Context) {
	id := c.Param("id")
	records, err := h.services.MaintenanceHistory(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "failed to load maintenance", "maintenance_history_failed", err, "element_id", id)
		return
	}
	c.JSON(http.StatusOK, records)
}

// @Summary      Maintenance done on a day
// @Tags         maintenance
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD, defaults to today"  example(2024-03-15)
// @Success      200  {array}   models.MaintenanceEntry
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/maintenance/daily [get]
// @Security     BearerAuth
func (h *Handler) dailyMaintenance(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = h.now().Format(time.DateOnly)
	}
	entries, err := h.services.Daily(c.Request.Context(), date)
	if err != nil {
		h.respondServiceError(c, "failed to load maintenance", "maintenance_daily_failed", err, "date", date)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"entries": entries,
	})
}

// @Summary      Maintenance done in a month
// @Tags         maintenance
// @Produce      json
// @Param        month  query  int  false  "1-12, defaults to the current month"
// @Param        year   query  int  false  "Defaults to the current year"
// @Success      200  {object}  map[string]interface{}  "count, entries"
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/maintenance/monthly [get]
// @Security     BearerAuth
func (h *Handler) monthlyMaintenance(c *gin.Context) {
	now := h.now()
	month, year := int(now.Month()), now.Year()
	var ok bool
	if q := c.Query("month"); q != "" {
		if month, ok = intParam(c, "month", q); !ok {
			return
		}
	}
	if q := c.Query("year"); q != "" {
		if year, ok = intParam(c, "year", q); !ok {
			return
		}
	}
	entries, err := h.services.Monthly(c.Request.Context(), month, year)
	if err != nil {
		h.respondServiceError(c, "failed to load maintenance", "maintenance_monthly_failed", err, "month", month, "year", year)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"entries": entries,
	})
}

// @Summary      Record a fault
// @Tags         faults
// @Accept       json
// @Produce      json
// @Param        body  body      models.FaultRecord  true  "Record"
// @Success      201   {object}  models.FaultRecord
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/faults [post]
// @Security     BearerAuth
func (h *Handler) addFault(c *gin.Context) {
	var rec models.FaultRecord
	if ok := h.bindJSONOrBadRequest(c, &rec); !ok {
		return
	}
	saved, err := h.services.AddFault(c.Request.Context(), rec)
	if err != nil {
		h.respondServiceError(c, "failed to record fault", "faults_add_failed", err, "element_id", rec.ElementID)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// @Summary      Fault history of an element
// @Tags         faults
// @Produce      json
// @Param        id  path  string  true  "Element id"
// @Success      200  {array}  models.FaultRecord
// @Router       /api/v1/elements/{id}/faults [get]
// @Security     BearerAuth
func (h *Handler) faultHistory(c *gin.Context) {
	id := c.Param("id")
	records, err := h.services.FaultHistory(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "failed to load faults", "faults_history_failed", err, "element_id", id)
		return
	}
	c.JSON(http.StatusOK, records)
}
