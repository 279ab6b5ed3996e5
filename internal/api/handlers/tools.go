package handlers

import (
	"net/http"
	"strconv"

	"myjobs/internal/addressparse"
	"myjobs/internal/service"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps feed and CSV uploads
const maxUploadBytes = 32 << 20

// ToolsHandler serves staff utilities: feed imports, bulk source codes and the address scorer
type ToolsHandler struct {
	importService     service.ImportServiceInterface
	automationService service.AutomationServiceInterface
}

// NewToolsHandler creates a new tools handler
func NewToolsHandler(importService service.ImportServiceInterface, automationService service.AutomationServiceInterface) *ToolsHandler {
	return &ToolsHandler{
		importService:     importService,
		automationService: automationService,
	}
}

// AddressScoreRequest is a string to score
type AddressScoreRequest struct {
	Address string `json:"address" binding:"required"`
}

// AddressScoreResponse is the scorer's verdict
type AddressScoreResponse struct {
	addressparse.Result
	IsAddress bool `json:"is_address"`
}

// ScoreAddress handles POST /tools/address-score
// @Summary Score how likely a string is a postal address
// @Tags tools
// @Accept json
// @Produce json
// @Param body body AddressScoreRequest true "Text to score"
// @Success 200 {object} AddressScoreResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tools/address-score [post]
func (h *ToolsHandler) ScoreAddress(c *gin.Context) {
	var req AddressScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	res := addressparse.Parse(req.Address)
	c.JSON(http.StatusOK, AddressScoreResponse{
		Result:    res,
		IsAddress: res.Score >= addressparse.Threshold,
	})
}

// ImportFeed handles POST /imports/:buid with the feed uploaded as the "feed" form file
// @Summary Import a job feed for a business unit
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param buid path int true "Business unit ID"
// @Param feed formData file true "XML feed"
// @Success 200 {object} service.ImportSummary
// @Failure 400 {object} ErrorResponse "Invalid feed"
// @Failure 404 {object} ErrorResponse "Business unit not found"
// @Security BearerAuth
// @Router /imports/{buid} [post]
func (h *ToolsHandler) ImportFeed(c *gin.Context) {
	buid, ok := intParam(c, "buid")
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	header, err := c.FormFile("feed")
	if err != nil {
		badRequest(c, "feed file is required")
		return
	}
	f, err := header.Open()
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	defer f.Close()

	summary, err := h.importService.ImportFeed(c.Request.Context(), buid, f)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ListImports handles GET /imports/:buid
func (h *ToolsHandler) ListImports(c *gin.Context) {
	buid, ok := intParam(c, "buid")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	records, err := h.importService.ListImports(buid, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// ImportSourceCodes handles POST /automation/source-codes with the CSV uploaded as the "file" form file
func (h *ToolsHandler) ImportSourceCodes(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	header, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return
	}
	f, err := header.Open()
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	defer f.Close()

	results, err := h.automationService.ImportSourceCodes(f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
