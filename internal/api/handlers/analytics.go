package handlers

import (
	"net/http"

	"myjobs/internal/auth"
	"myjobs/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the click dashboards of the caller's company
type AnalyticsHandler struct {
	analyticsService service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func bindAnalyticsQuery(c *gin.Context) (*service.AnalyticsQuery, bool) {
	var q service.AnalyticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err.Error())
		return nil, false
	}
	return &q, true
}

// ClicksOverTime handles GET /analytics/clicks?start=2026-01-01&end=2026-02-01&interval=week
// @Summary Clicks per day, week or month
// @Tags analytics
// @Produce json
// @Param start query string false "First day (YYYY-MM-DD), defaults to 30 days ago"
// @Param end query string false "Last day (YYYY-MM-DD), defaults to today"
// @Param interval query string false "day, week or month" default(day)
// @Success 200 {array} analytics.TimeBucket
// @Failure 503 {object} ErrorResponse "Analytics not configured"
// @Security BearerAuth
// @Router /analytics/clicks [get]
func (h *AnalyticsHandler) ClicksOverTime(c *gin.Context) {
	q, ok := bindAnalyticsQuery(c)
	if !ok {
		return
	}
	buckets, err := h.analyticsService.ClicksOverTime(c.Request.Context(), auth.CallerFromContext(c).CompanyID, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

// ClicksByViewSource handles GET /analytics/view-sources
func (h *AnalyticsHandler) ClicksByViewSource(c *gin.Context) {
	q, ok := bindAnalyticsQuery(c)
	if !ok {
		return
	}
	counts, err := h.analyticsService.ClicksByViewSource(c.Request.Context(), auth.CallerFromContext(c).CompanyID, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// TopJobs handles GET /analytics/top-jobs
func (h *AnalyticsHandler) TopJobs(c *gin.Context) {
	q, ok := bindAnalyticsQuery(c)
	if !ok {
		return
	}
	jobs, err := h.analyticsService.TopJobs(c.Request.Context(), auth.CallerFromContext(c).CompanyID, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}
