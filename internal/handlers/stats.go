package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"sigma/internal/cycle"
	"sigma/internal/export"
	"sigma/internal/metrics"

	"github.com/gin-gonic/gin"
)

// semesterQuery reads ?semester=&year=, defaulting to the semester containing now.
func (h *Handler) semesterQuery(c *gin.Context) (cycle.Semester, int, bool) {
	now := h.now()
	semester, year := cycle.Of(now.Month()), now.Year()
	if q := c.Query("semester"); q != "" {
		v, ok := intParam(c, "semester", q)
		if !ok {
			return 0, 0, false
		}
		semester = cycle.Semester(v)
	}
	if q := c.Query("year"); q != "" {
		v, ok := intParam(c, "year", q)
		if !ok {
			return 0, 0, false
		}
		year = v
	}
	return semester, year, true
}

// @Summary      Semester compliance
// @Description  Worklist items of the semester's months grouped by installation type, counted against live completion
// @Tags         stats
// @Produce      json
// @Param        semester  query  int  false  "1 (Jan-Jun) or 2 (Jul-Dec)"  Enums(1,2)
// @Param        year      query  int  false  "Year"
// @Success      200  {object}  models.SemesterStats
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/stats/semester [get]
// @Security     BearerAuth
func (h *Handler) semesterStats(c *gin.Context) {
	semester, year, ok := h.semesterQuery(c)
	if !ok {
		return
	}
	stats, err := h.services.SemesterStats(c.Request.Context(), semester, year)
	if err != nil {
		h.respondServiceError(c, "failed to compute stats", "stats_semester_failed", err, "semester", semester, "year", year)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary      Export semester compliance
// @Tags         stats
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Param        semester  query  int     false  "1 or 2"
// @Param        year      query  int     false  "Year"
// @Param        format    query  string  false  "xlsx (default) or pdf"  Enums(xlsx,pdf)
// @Success      200
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/stats/semester/export [get]
// @Security     BearerAuth
func (h *Handler) exportSemesterStats(c *gin.Context) {
	semester, year, ok := h.semesterQuery(c)
	if !ok {
		return
	}
	format := strings.ToLower(strings.TrimSpace(c.Query("format")))
	if format == "" {
		format = export.FormatXLSX
	}

	stats, err := h.services.SemesterStats(c.Request.Context(), semester, year)
	if err != nil {
		metrics.IncStatsExport(format, metrics.ResultError)
		h.respondServiceError(c, "failed to compute stats", "stats_export_failed", err, "semester", semester, "year", year)
		return
	}

	body, contentType, err := export.Build(format, export.StatsReport{
		Semester:    semester,
		Year:        year,
		Stats:       stats,
		GeneratedAt: h.now(),
	})
	if err != nil {
		metrics.IncStatsExport(format, metrics.ResultError)
		if errors.Is(err, export.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to render export", "stats_export_render_failed", err, "format", format)
		return
	}
	metrics.IncStatsExport(format, metrics.ResultSuccess)

	filename := fmt.Sprintf("semester-%d-%d.%s", year, semester, format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}

// @Summary      Run the semester reset check now
// @Description  Clears every element's completion when a new semester started since the last reset
// @Tags         cycle
// @Produce      json
// @Success      200  {object}  map[string]bool  "reset"
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/cycle/check [post]
// @Security     BearerAuth
func (h *Handler) checkCycle(c *gin.Context) {
	reset, err := h.services.CheckAndReset(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "failed to check semester", "cycle_check_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reset": reset})
}
