package handlers

import (
	"net/http"

	"myjobs/internal/auth"
	"myjobs/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles registration, login and the caller's profile units
type AccountHandler struct {
	accountService service.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService service.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Register handles POST /auth/register
// @Summary Register a user
// @Tags auth
// @Accept json
// @Produce json
// @Param user body service.RegisterRequest true "Credentials"
// @Success 201 {object} service.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.accountService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles POST /auth/login
// @Summary Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Credentials"
// @Success 200 {object} service.LoginResponse
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 403 {object} ErrorResponse "Inactive account"
// @Router /auth/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.accountService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /me
func (h *AccountHandler) Me(c *gin.Context) {
	me, err := h.accountService.Me(auth.CallerFromContext(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, me)
}

// ListNames handles GET /me/names
func (h *AccountHandler) ListNames(c *gin.Context) {
	names, err := h.accountService.ListNames(auth.CallerFromContext(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// CreateName handles POST /me/names
func (h *AccountHandler) CreateName(c *gin.Context) {
	var req service.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	name, err := h.accountService.CreateName(auth.CallerFromContext(c).UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, name)
}

// UpdateName handles PUT /me/names/:id
func (h *AccountHandler) UpdateName(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	name, err := h.accountService.UpdateName(auth.CallerFromContext(c).UserID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, name)
}

// DeleteName handles DELETE /me/names/:id
func (h *AccountHandler) DeleteName(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.accountService.DeleteName(auth.CallerFromContext(c).UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAddresses handles GET /me/addresses
func (h *AccountHandler) ListAddresses(c *gin.Context) {
	addresses, err := h.accountService.ListAddresses(auth.CallerFromContext(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

// CreateAddress handles POST /me/addresses
func (h *AccountHandler) CreateAddress(c *gin.Context) {
	var req service.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	addr, err := h.accountService.CreateAddress(auth.CallerFromContext(c).UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, addr)
}

// UpdateAddress handles PUT /me/addresses/:id
func (h *AccountHandler) UpdateAddress(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	addr, err := h.accountService.UpdateAddress(auth.CallerFromContext(c).UserID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, addr)
}

// DeleteAddress handles DELETE /me/addresses/:id
func (h *AccountHandler) DeleteAddress(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.accountService.DeleteAddress(auth.CallerFromContext(c).UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
