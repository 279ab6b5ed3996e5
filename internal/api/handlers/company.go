package handlers

import (
	"net/http"

	"myjobs/internal/auth"
	"myjobs/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CompanyHandler handles companies, their users and business units
type CompanyHandler struct {
	companyService service.CompanyServiceInterface
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService service.CompanyServiceInterface) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// AssignBusinessUnitRequest attaches a business unit to a company, or detaches it when CompanyID is null
type AssignBusinessUnitRequest struct {
	CompanyID *uuid.UUID `json:"company_id"`
}

// CreateCompany handles POST /companies
// @Summary Create a company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body service.CreateCompanyRequest true "Company data"
// @Success 201 {object} models.Company
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slug taken"
// @Security BearerAuth
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req service.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	company, err := h.companyService.CreateCompany(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

// ListCompanies handles GET /companies
// @Summary List companies
// @Tags companies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.CompanyListResponse
// @Security BearerAuth
// @Router /companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	page, pageSize := pagination(c)
	resp, err := h.companyService.ListCompanies(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCompany handles GET /companies/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	company, err := h.companyService.GetCompany(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// UpdateCompany handles PUT /companies/:id
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	company, err := h.companyService.UpdateCompany(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// DeleteCompany handles DELETE /companies/:id
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.companyService.DeleteCompany(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCompanyUsers handles GET /company/users
func (h *CompanyHandler) ListCompanyUsers(c *gin.Context) {
	users, err := h.companyService.ListCompanyUsers(auth.CallerFromContext(c).CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// AddCompanyUser handles POST /company/users
func (h *CompanyHandler) AddCompanyUser(c *gin.Context) {
	var req service.AddCompanyUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	user, err := h.companyService.AddCompanyUser(auth.CallerFromContext(c).CompanyID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// RemoveCompanyUser handles DELETE /company/users/:userId
func (h *CompanyHandler) RemoveCompanyUser(c *gin.Context) {
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}
	if err := h.companyService.RemoveCompanyUser(auth.CallerFromContext(c).CompanyID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CompanyBusinessUnits handles GET /company/business-units
func (h *CompanyHandler) CompanyBusinessUnits(c *gin.Context) {
	units, err := h.companyService.CompanyBusinessUnits(auth.CallerFromContext(c).CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, units)
}

// CreateBusinessUnit handles POST /business-units
func (h *CompanyHandler) CreateBusinessUnit(c *gin.Context) {
	var req service.CreateBusinessUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	unit, err := h.companyService.CreateBusinessUnit(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, unit)
}

// ListBusinessUnits handles GET /business-units
func (h *CompanyHandler) ListBusinessUnits(c *gin.Context) {
	page, pageSize := pagination(c)
	resp, err := h.companyService.ListBusinessUnits(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AssignBusinessUnit handles PUT /business-units/:buid/company
func (h *CompanyHandler) AssignBusinessUnit(c *gin.Context) {
	buid, ok := intParam(c, "buid")
	if !ok {
		return
	}
	var req AssignBusinessUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := h.companyService.AssignBusinessUnit(buid, req.CompanyID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
