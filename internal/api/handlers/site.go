package handlers

import (
	"net/http"

	"myjobs/internal/auth"
	"myjobs/internal/service"

	"github.com/gin-gonic/gin"
)

// SiteHandler handles microsites and their public job search
type SiteHandler struct {
	siteService service.SiteServiceInterface
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(siteService service.SiteServiceInterface) *SiteHandler {
	return &SiteHandler{siteService: siteService}
}

// CreateSite handles POST /sites
// @Summary Create a microsite
// @Tags sites
// @Accept json
// @Produce json
// @Param site body service.SiteRequest true "Site data"
// @Success 201 {object} models.SeoSite
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Domain taken"
// @Security BearerAuth
// @Router /sites [post]
func (h *SiteHandler) CreateSite(c *gin.Context) {
	var req service.SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	site, err := h.siteService.CreateSite(c.Request.Context(), auth.CallerFromContext(c).CompanyID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, site)
}

// ListSites handles GET /sites
func (h *SiteHandler) ListSites(c *gin.Context) {
	sites, err := h.siteService.ListSites(auth.CallerFromContext(c).CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sites)
}

// GetSite handles GET /sites/:id
func (h *SiteHandler) GetSite(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	site, err := h.siteService.GetSite(auth.CallerFromContext(c).CompanyID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, site)
}

// UpdateSite handles PUT /sites/:id
func (h *SiteHandler) UpdateSite(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	site, err := h.siteService.UpdateSite(c.Request.Context(), auth.CallerFromContext(c).CompanyID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, site)
}

// DeleteSite handles DELETE /sites/:id
func (h *SiteHandler) DeleteSite(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.siteService.DeleteSite(c.Request.Context(), auth.CallerFromContext(c).CompanyID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchJobs handles GET /public/jobs, searching the jobs of the site serving the request host
// @Summary Search a microsite's jobs
// @Tags public
// @Produce json
// @Param q query string false "Keywords"
// @Param location query string false "Location"
// @Param sort query string false "relevance or date"
// @Param page query int false "Page number"
// @Param per_page query int false "Results per page"
// @Success 200 {object} search.Results
// @Failure 404 {object} ErrorResponse "No site for this host"
// @Router /public/jobs [get]
func (h *SiteHandler) SearchJobs(c *gin.Context) {
	var req service.JobSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	results, err := h.siteService.SearchJobs(c.Request.Context(), c.Request.Host, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetJob handles GET /public/jobs/:guid
func (h *SiteHandler) GetJob(c *gin.Context) {
	job, err := h.siteService.GetJob(c.Request.Context(), c.Request.Host, c.Param("guid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
