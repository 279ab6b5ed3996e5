package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "myjobs/internal/errors"
	"myjobs/internal/service"

	"github.com/gin-gonic/gin"
)

// RedirectHandler serves job redirects and their staff-managed rewrite rules
type RedirectHandler struct {
	redirectService service.RedirectServiceInterface
}

// NewRedirectHandler creates a new redirect handler
func NewRedirectHandler(redirectService service.RedirectServiceInterface) *RedirectHandler {
	return &RedirectHandler{redirectService: redirectService}
}

// Redirect handles GET /:guid
// @Summary Redirect to a job's destination
// @Description The path is a 32 character hex GUID (or 36 with hyphens), optionally followed by a numeric
// @Description view source and a trailing + for a JSON explanation instead of a redirect.
// @Tags redirect
// @Produce json
// @Param guid path string true "GUID with optional view source and debug marker"
// @Param vs query int false "View source override"
// @Success 302 "Redirect to the rewritten destination"
// @Success 200 {object} service.Resolution "Debug explanation"
// @Failure 404 {object} ErrorResponse "Unknown job"
// @Failure 410 {object} service.ExpiredJob "Expired job"
// @Router /{guid} [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	res, expired, err := h.redirectService.Resolve(c.Request.Context(), service.ResolveRequest{
		Path:      c.Param("guid"),
		VS:        c.Query("vs"),
		Referrer:  c.Request.Referer(),
		UserAgent: c.Request.UserAgent(),
		IP:        c.ClientIP(),
	})
	c.Header("X-Robots-Tag", "noindex")
	switch {
	case expired != nil:
		c.JSON(http.StatusGone, expired)
		return
	case errors.Is(err, apperrors.ErrInvalidGUID):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: apperrors.ErrRedirectNotFound.Error()})
		return
	case err != nil:
		respondError(c, err)
		return
	}

	if res.Debug {
		c.JSON(http.StatusOK, res)
		return
	}
	c.Redirect(http.StatusFound, res.Destination)
}

// CreateManipulation handles POST /redirect/manipulations
func (h *RedirectHandler) CreateManipulation(c *gin.Context) {
	var req service.ManipulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	m, err := h.redirectService.CreateManipulation(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// ListManipulations handles GET /redirect/manipulations?buid=
func (h *RedirectHandler) ListManipulations(c *gin.Context) {
	buid, err := strconv.Atoi(c.Query("buid"))
	if err != nil || buid < 1 {
		badRequest(c, "buid is required")
		return
	}
	page, pageSize := pagination(c)
	resp, err := h.redirectService.ListManipulations(buid, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func manipulationID(c *gin.Context) (uint, bool) {
	id, ok := intParam(c, "id")
	return uint(id), ok
}

// GetManipulation handles GET /redirect/manipulations/:id
func (h *RedirectHandler) GetManipulation(c *gin.Context) {
	id, ok := manipulationID(c)
	if !ok {
		return
	}
	m, err := h.redirectService.GetManipulation(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// UpdateManipulation handles PUT /redirect/manipulations/:id
func (h *RedirectHandler) UpdateManipulation(c *gin.Context) {
	id, ok := manipulationID(c)
	if !ok {
		return
	}
	var req service.ManipulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	m, err := h.redirectService.UpdateManipulation(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// DeleteManipulation handles DELETE /redirect/manipulations/:id
func (h *RedirectHandler) DeleteManipulation(c *gin.Context) {
	id, ok := manipulationID(c)
	if !ok {
		return
	}
	if err := h.redirectService.DeleteManipulation(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListActions handles GET /redirect/actions
func (h *RedirectHandler) ListActions(c *gin.Context) {
	c.JSON(http.StatusOK, h.redirectService.KnownActions())
}

// ListViewSources handles GET /redirect/view-sources
func (h *RedirectHandler) ListViewSources(c *gin.Context) {
	sources, err := h.redirectService.ListViewSources()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sources)
}

// CreateViewSource handles POST /redirect/view-sources
func (h *RedirectHandler) CreateViewSource(c *gin.Context) {
	var req service.ViewSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	vs, err := h.redirectService.CreateViewSource(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vs)
}
