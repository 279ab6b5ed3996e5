package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"myjobs/internal/auth"
	"myjobs/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles dynamic reports
type ReportHandler struct {
	reportService service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ListReportTypes handles GET /reports/types
func (h *ReportHandler) ListReportTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportService.ListReportTypes())
}

// ListDataTypes handles GET /reports/types/:type/data-types
func (h *ReportHandler) ListDataTypes(c *gin.Context) {
	dataTypes, err := h.reportService.ListDataTypes(c.Param("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dataTypes)
}

// CreateReport handles POST /reports
// @Summary Define and run a report
// @Tags reports
// @Accept json
// @Produce json
// @Param report body service.ReportRequest true "Report definition"
// @Success 201 {object} service.ReportResponse
// @Failure 400 {object} ErrorResponse "Invalid filter or column"
// @Failure 404 {object} ErrorResponse "Unknown report or data type"
// @Security BearerAuth
// @Router /reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req service.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	report, err := h.reportService.CreateReport(c.Request.Context(), auth.CallerFromContext(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// ListReports handles GET /reports
func (h *ReportHandler) ListReports(c *gin.Context) {
	page, pageSize := pagination(c)
	resp, err := h.reportService.ListReports(auth.CallerFromContext(c).CompanyID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetReport handles GET /reports/:id
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	report, err := h.reportService.GetReport(auth.CallerFromContext(c).CompanyID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// RerunReport handles POST /reports/:id/run
func (h *ReportHandler) RerunReport(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	report, err := h.reportService.RerunReport(c.Request.Context(), auth.CallerFromContext(c).CompanyID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// DeleteReport handles DELETE /reports/:id
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.reportService.DeleteReport(auth.CallerFromContext(c).CompanyID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Download handles GET /reports/:id/download?format=csv&values=name,email&order_by=-name
// @Summary Download a report's results
// @Tags reports
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Param format query string false "csv, xlsx or json" default(csv)
// @Param values query string false "Comma separated columns, in order"
// @Param order_by query string false "Field to sort by, prefixed with - for descending"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Report not run, bad format or column"
// @Security BearerAuth
// @Router /reports/{id}/download [get]
func (h *ReportHandler) Download(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var values []string
	if raw := c.Query("values"); raw != "" {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}

	var buf bytes.Buffer
	p, err := h.reportService.Download(auth.CallerFromContext(c).CompanyID, id,
		c.DefaultQuery("format", "csv"), values, c.Query("order_by"), &buf)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="report-%s.%s"`, id, p))
	c.Data(http.StatusOK, p.ContentType(), buf.Bytes())
}

// Help handles GET /reports/help?data_type=contacts&field=name&partial=ja
func (h *ReportHandler) Help(c *gin.Context) {
	dataType, field := c.Query("data_type"), c.Query("field")
	if dataType == "" || field == "" {
		badRequest(c, "data_type and field are required")
		return
	}
	values, err := h.reportService.Help(c.Request.Context(), auth.CallerFromContext(c).CompanyID, dataType, field, c.Query("partial"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}
