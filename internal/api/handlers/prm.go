package handlers

import (
	"net/http"
	"strconv"

	"myjobs/internal/auth"
	"myjobs/internal/database/models"
	"myjobs/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PRMHandler handles partners, contacts, communication records and the activity log
type PRMHandler struct {
	prmService service.PRMServiceInterface
}

// NewPRMHandler creates a new PRM handler
func NewPRMHandler(prmService service.PRMServiceInterface) *PRMHandler {
	return &PRMHandler{prmService: prmService}
}

// ApprovalRequest moderates a partner
type ApprovalRequest struct {
	Status models.ApprovalStatus `json:"status" binding:"required,oneof=pending approved denied"`
}

// ListTags handles GET /prm/tags
func (h *PRMHandler) ListTags(c *gin.Context) {
	tags, err := h.prmService.ListTags(auth.CallerFromContext(c).CompanyID, c.Query("prefix"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreatePartner handles POST /prm/partners
// @Summary Create a partner
// @Description Partners created by non-admin members wait for approval
// @Tags prm
// @Accept json
// @Produce json
// @Param partner body service.PartnerRequest true "Partner data"
// @Success 201 {object} models.Partner
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Partner name taken"
// @Security BearerAuth
// @Router /prm/partners [post]
func (h *PRMHandler) CreatePartner(c *gin.Context) {
	var req service.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	partner, err := h.prmService.CreatePartner(auth.CallerFromContext(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, partner)
}

// ListPartners handles GET /prm/partners
// @Summary List partners
// @Tags prm
// @Produce json
// @Param q query string false "Name contains"
// @Param tag query []string false "Required tags" collectionFormat(multi)
// @Param archived query bool false "List archived partners"
// @Param sort query string false "name or -created_at"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.PartnerListResponse
// @Security BearerAuth
// @Router /prm/partners [get]
func (h *PRMHandler) ListPartners(c *gin.Context) {
	var q service.PartnerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.prmService.ListPartners(auth.CallerFromContext(c).CompanyID, &q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPartner handles GET /prm/partners/:id
func (h *PRMHandler) GetPartner(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	partner, err := h.prmService.GetPartner(auth.CallerFromContext(c).CompanyID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, partner)
}

// UpdatePartner handles PUT /prm/partners/:id
func (h *PRMHandler) UpdatePartner(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	partner, err := h.prmService.UpdatePartner(auth.CallerFromContext(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, partner)
}

// SetPartnerApproval handles PUT /prm/partners/:id/approval
func (h *PRMHandler) SetPartnerApproval(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	partner, err := h.prmService.SetPartnerApproval(auth.CallerFromContext(c), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, partner)
}

// ArchivePartner handles DELETE /prm/partners/:id
func (h *PRMHandler) ArchivePartner(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.prmService.ArchivePartner(auth.CallerFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestorePartner handles POST /prm/partners/:id/restore
func (h *PRMHandler) RestorePartner(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.prmService.RestorePartner(auth.CallerFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateContact handles POST /prm/partners/:id/contacts
func (h *PRMHandler) CreateContact(c *gin.Context) {
	partnerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	contact, err := h.prmService.CreateContact(auth.CallerFromContext(c), partnerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// ListContacts handles GET /prm/partners/:id/contacts
func (h *PRMHandler) ListContacts(c *gin.Context) {
	partnerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	archived, _ := strconv.ParseBool(c.DefaultQuery("archived", "false"))
	contacts, err := h.prmService.ListContacts(auth.CallerFromContext(c).CompanyID, partnerID, archived)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// GetContact handles GET /prm/partners/:id/contacts/:contactId
func (h *PRMHandler) GetContact(c *gin.Context) {
	partnerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "contactId")
	if !ok {
		return
	}
	contact, err := h.prmService.GetContact(auth.CallerFromContext(c).CompanyID, partnerID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// UpdateContact handles PUT /prm/partners/:id/contacts/:contactId
func (h *PRMHandler) UpdateContact(c *gin.Context) {
	partnerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "contactId")
	if !ok {
		return
	}
	var req service.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	contact, err := h.prmService.UpdateContact(auth.CallerFromContext(c), partnerID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// ArchiveContact handles DELETE /prm/partners/:id/contacts/:contactId
func (h *PRMHandler) ArchiveContact(c *gin.Context) {
	partnerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "contactId")
	if !ok {
		return
	}
	if err := h.prmService.ArchiveContact(auth.CallerFromContext(c), partnerID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreContact handles POST /prm/partners/:id/contacts/:contactId/restore
func (h *PRMHandler) RestoreContact(c *gin.Context) {
	partnerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "contactId")
	if !ok {
		return
	}
	if err := h.prmService.RestoreContact(auth.CallerFromContext(c), partnerID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateRecord handles POST /prm/partners/:id/records
// @Summary Log a communication with a partner
// @Tags prm
// @Accept json
// @Produce json
// @Param id path string true "Partner ID (UUID)"
// @Param record body service.ContactRecordRequest true "Record data"
// @Success 201 {object} models.ContactRecord
// @Failure 400 {object} ErrorResponse "Contact not in partner or missing email"
// @Security BearerAuth
// @Router /prm/partners/{id}/records [post]
func (h *PRMHandler) CreateRecord(c *gin.Context) {
	partnerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.ContactRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	record, err := h.prmService.CreateRecord(auth.CallerFromContext(c), partnerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// ListRecords handles GET /prm/partners/:id/records
func (h *PRMHandler) ListRecords(c *gin.Context) {
	partnerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var q service.ContactRecordQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err.Error())
		return
	}
	if raw := c.Query("contact_id"); raw != "" {
		contactID, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, "invalid contact_id")
			return
		}
		q.ContactID = &contactID
	}

	resp, err := h.prmService.ListRecords(auth.CallerFromContext(c).CompanyID, partnerID, &q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetRecord handles GET /prm/partners/:id/records/:recordId
func (h *PRMHandler) GetRecord(c *gin.Context) {
	partnerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "recordId")
	if !ok {
		return
	}
	record, err := h.prmService.GetRecord(auth.CallerFromContext(c).CompanyID, partnerID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateRecord handles PUT /prm/partners/:id/records/:recordId
func (h *PRMHandler) UpdateRecord(c *gin.Context) {
	partnerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "recordId")
	if !ok {
		return
	}
	var req service.ContactRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	record, err := h.prmService.UpdateRecord(auth.CallerFromContext(c), partnerID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// ArchiveRecord handles DELETE /prm/partners/:id/records/:recordId
func (h *PRMHandler) ArchiveRecord(c *gin.Context) {
	partnerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "recordId")
	if !ok {
		return
	}
	if err := h.prmService.ArchiveRecord(auth.CallerFromContext(c), partnerID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListLog handles GET /prm/partners/:id/log
func (h *PRMHandler) ListLog(c *gin.Context) {
	partnerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)
	resp, err := h.prmService.ListLog(auth.CallerFromContext(c).CompanyID, partnerID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
