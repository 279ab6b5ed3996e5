package handlers

import (
	"net/http"

	"myjobs/internal/auth"
	"myjobs/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmailHandler handles email templates and the send log
type EmailHandler struct {
	emailService service.EmailServiceInterface
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(emailService service.EmailServiceInterface) *EmailHandler {
	return &EmailHandler{emailService: emailService}
}

func companyScope(c *gin.Context) *uuid.UUID {
	id := auth.CallerFromContext(c).CompanyID
	return &id
}

// CreateTemplate handles POST /emails/templates
func (h *EmailHandler) CreateTemplate(c *gin.Context) {
	h.create(c, companyScope(c))
}

// CreateGlobalTemplate handles POST /emails/global-templates
func (h *EmailHandler) CreateGlobalTemplate(c *gin.Context) {
	h.create(c, nil)
}

func (h *EmailHandler) create(c *gin.Context, companyID *uuid.UUID) {
	var req service.EmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	tmpl, err := h.emailService.CreateTemplate(companyID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tmpl)
}

// ListTemplates handles GET /emails/templates
func (h *EmailHandler) ListTemplates(c *gin.Context) {
	templates, err := h.emailService.ListTemplates(auth.CallerFromContext(c).CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// GetTemplate handles GET /emails/templates/:id
func (h *EmailHandler) GetTemplate(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	tmpl, err := h.emailService.GetTemplate(auth.CallerFromContext(c).CompanyID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

// UpdateTemplate handles PUT /emails/templates/:id
func (h *EmailHandler) UpdateTemplate(c *gin.Context) {
	h.update(c, companyScope(c))
}

// UpdateGlobalTemplate handles PUT /emails/global-templates/:id
func (h *EmailHandler) UpdateGlobalTemplate(c *gin.Context) {
	h.update(c, nil)
}

func (h *EmailHandler) update(c *gin.Context, companyID *uuid.UUID) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.EmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	tmpl, err := h.emailService.UpdateTemplate(companyID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

// DeleteTemplate handles DELETE /emails/templates/:id
func (h *EmailHandler) DeleteTemplate(c *gin.Context) {
	h.delete(c, companyScope(c))
}

// DeleteGlobalTemplate handles DELETE /emails/global-templates/:id
func (h *EmailHandler) DeleteGlobalTemplate(c *gin.Context) {
	h.delete(c, nil)
}

func (h *EmailHandler) delete(c *gin.Context, companyID *uuid.UUID) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.emailService.DeleteTemplate(companyID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListEmailLogs handles GET /emails/logs
func (h *EmailHandler) ListEmailLogs(c *gin.Context) {
	page, pageSize := pagination(c)
	resp, err := h.emailService.ListEmailLogs(c.Query("to"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
