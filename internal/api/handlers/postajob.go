package handlers

import (
	"net/http"

	"myjobs/internal/auth"
	"myjobs/internal/service"

	"github.com/gin-gonic/gin"
)

// PostajobHandler handles products, purchases and posted jobs
type PostajobHandler struct {
	postajobService service.PostajobServiceInterface
}

// NewPostajobHandler creates a new postajob handler
func NewPostajobHandler(postajobService service.PostajobServiceInterface) *PostajobHandler {
	return &PostajobHandler{postajobService: postajobService}
}

// CreateProduct handles POST /postajob/products
func (h *PostajobHandler) CreateProduct(c *gin.Context) {
	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	product, err := h.postajobService.CreateProduct(auth.CallerFromContext(c).CompanyID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// ListProducts handles GET /postajob/products
func (h *PostajobHandler) ListProducts(c *gin.Context) {
	products, err := h.postajobService.ListProducts(auth.CallerFromContext(c).CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /postajob/products/:id
func (h *PostajobHandler) GetProduct(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	product, err := h.postajobService.GetProduct(auth.CallerFromContext(c).CompanyID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProduct handles PUT /postajob/products/:id
func (h *PostajobHandler) UpdateProduct(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	product, err := h.postajobService.UpdateProduct(auth.CallerFromContext(c).CompanyID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /postajob/products/:id
func (h *PostajobHandler) DeleteProduct(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.postajobService.DeleteProduct(auth.CallerFromContext(c).CompanyID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSiteProducts handles GET /public/products, the products displayed on the site serving the request host
func (h *PostajobHandler) ListSiteProducts(c *gin.Context) {
	products, err := h.postajobService.ListSiteProducts(c.Request.Context(), c.Request.Host)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// PurchaseProduct handles POST /postajob/products/:id/purchase
// @Summary Purchase a job posting product
// @Tags postajob
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 201 {object} models.Purchase
// @Failure 404 {object} ErrorResponse "Product not found"
// @Security BearerAuth
// @Router /postajob/products/{id}/purchase [post]
func (h *PostajobHandler) PurchaseProduct(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	purchase, err := h.postajobService.PurchaseProduct(auth.CallerFromContext(c).CompanyID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, purchase)
}

// ListPurchases handles GET /postajob/purchases
func (h *PostajobHandler) ListPurchases(c *gin.Context) {
	purchases, err := h.postajobService.ListPurchases(auth.CallerFromContext(c).CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, purchases)
}

// GetPurchase handles GET /postajob/purchases/:id
func (h *PostajobHandler) GetPurchase(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	purchase, err := h.postajobService.GetPurchase(auth.CallerFromContext(c).CompanyID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, purchase)
}

// PostJob handles POST /postajob/purchases/:id/jobs
// @Summary Post a job against a purchase
// @Tags postajob
// @Accept json
// @Produce json
// @Param id path string true "Purchase ID (UUID)"
// @Param job body service.PostJobRequest true "Job data"
// @Success 201 {object} models.PostedJob
// @Failure 400 {object} ErrorResponse "No jobs remaining, job too long or apply method missing"
// @Failure 410 {object} ErrorResponse "Purchase expired"
// @Security BearerAuth
// @Router /postajob/purchases/{id}/jobs [post]
func (h *PostajobHandler) PostJob(c *gin.Context) {
	purchaseID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	job, err := h.postajobService.PostJob(c.Request.Context(), auth.CallerFromContext(c), purchaseID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// ListJobs handles GET /postajob/jobs
func (h *PostajobHandler) ListJobs(c *gin.Context) {
	page, pageSize := pagination(c)
	resp, err := h.postajobService.ListJobs(auth.CallerFromContext(c).CompanyID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListPendingJobs handles GET /postajob/jobs/pending, the jobs awaiting the seller's approval
func (h *PostajobHandler) ListPendingJobs(c *gin.Context) {
	jobs, err := h.postajobService.ListPendingJobs(auth.CallerFromContext(c).CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ApproveJob handles POST /postajob/jobs/:id/approve
func (h *PostajobHandler) ApproveJob(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	job, err := h.postajobService.ApproveJob(c.Request.Context(), auth.CallerFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob handles DELETE /postajob/jobs/:id
func (h *PostajobHandler) DeleteJob(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.postajobService.DeleteJob(c.Request.Context(), auth.CallerFromContext(c).CompanyID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
