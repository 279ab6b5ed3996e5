package handlers

import (
	"net/http"
	"strconv"

	"myjobs/internal/auth"
	"myjobs/internal/service"

	"github.com/gin-gonic/gin"
)

// SavedSearchHandler handles the caller's saved searches and partner saved searches
type SavedSearchHandler struct {
	savedSearchService service.SavedSearchServiceInterface
}

// NewSavedSearchHandler creates a new saved search handler
func NewSavedSearchHandler(savedSearchService service.SavedSearchServiceInterface) *SavedSearchHandler {
	return &SavedSearchHandler{savedSearchService: savedSearchService}
}

// CreateSearch handles POST /saved-searches
// @Summary Save a job search and subscribe to its digest
// @Tags saved-searches
// @Accept json
// @Produce json
// @Param search body service.SavedSearchRequest true "Saved search"
// @Success 201 {object} models.SavedSearch
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /saved-searches [post]
func (h *SavedSearchHandler) CreateSearch(c *gin.Context) {
	var req service.SavedSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	caller := auth.CallerFromContext(c)
	ss, err := h.savedSearchService.CreateSearch(caller.UserID, caller.Email, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ss)
}

// ListSearches handles GET /saved-searches
func (h *SavedSearchHandler) ListSearches(c *gin.Context) {
	searches, err := h.savedSearchService.ListSearches(auth.CallerFromContext(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, searches)
}

// GetSearch handles GET /saved-searches/:id
func (h *SavedSearchHandler) GetSearch(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	ss, err := h.savedSearchService.GetSearch(auth.CallerFromContext(c).UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ss)
}

// UpdateSearch handles PUT /saved-searches/:id
func (h *SavedSearchHandler) UpdateSearch(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.SavedSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ss, err := h.savedSearchService.UpdateSearch(auth.CallerFromContext(c).UserID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ss)
}

// DeleteSearch handles DELETE /saved-searches/:id
func (h *SavedSearchHandler) DeleteSearch(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.savedSearchService.DeleteSearch(auth.CallerFromContext(c).UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Preview handles GET /saved-searches/:id/preview
func (h *SavedSearchHandler) Preview(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	results, err := h.savedSearchService.Preview(c.Request.Context(), auth.CallerFromContext(c).UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// ListLogs handles GET /saved-searches/:id/logs
func (h *SavedSearchHandler) ListLogs(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	logs, err := h.savedSearchService.ListLogs(auth.CallerFromContext(c).UserID, id, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// Unsubscribe handles GET /saved-searches/unsubscribe?token=, the link carried by every digest
func (h *SavedSearchHandler) Unsubscribe(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		badRequest(c, "token is required")
		return
	}
	ss, err := h.savedSearchService.Unsubscribe(token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unsubscribed": true, "label": ss.Label})
}

// CreatePartnerSearch handles POST /prm/partners/:id/searches
func (h *SavedSearchHandler) CreatePartnerSearch(c *gin.Context) {
	partnerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.PartnerSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ss, err := h.savedSearchService.CreatePartnerSearch(auth.CallerFromContext(c), partnerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ss)
}

// ListPartnerSearches handles GET /prm/partners/:id/searches
func (h *SavedSearchHandler) ListPartnerSearches(c *gin.Context) {
	partnerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	searches, err := h.savedSearchService.ListPartnerSearches(auth.CallerFromContext(c).CompanyID, partnerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, searches)
}

// DeletePartnerSearch handles DELETE /prm/partners/:id/searches/:searchId
func (h *SavedSearchHandler) DeletePartnerSearch(c *gin.Context) {
	partnerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "searchId")
	if !ok {
		return
	}
	if err := h.savedSearchService.DeletePartnerSearch(auth.CallerFromContext(c).CompanyID, partnerID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
