package auth

import (
	"myjobs/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	keyUserID      = "user_id"
	keyEmail       = "email"
	keyIsStaff     = "is_staff"
	keyClaims      = "auth_claims"
	keyCompanyID   = "company_id"
	keyCompanyRole = "company_role"
	keyCompany     = "company"
)

// Caller is the authenticated user and the company they act for
type Caller struct {
	UserID    uuid.UUID
	Email     string
	IsStaff   bool
	CompanyID uuid.UUID
	Role      models.CompanyRole
}

// IsAdmin reports whether the caller administers the company
func (c Caller) IsAdmin() bool {
	return c.IsStaff || c.Role == models.CompanyRoleAdmin
}

// CallerFromContext collects what RequireAuth and RequireCompany stored
func CallerFromContext(c *gin.Context) Caller {
	caller := Caller{IsStaff: c.GetBool(keyIsStaff), Email: c.GetString(keyEmail)}
	caller.UserID, _ = GetUserID(c)
	caller.CompanyID, _ = GetCompanyID(c)
	if role, ok := c.Get(keyCompanyRole); ok {
		caller.Role, _ = role.(models.CompanyRole)
	}
	return caller
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(keyUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(keyEmail)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}

// GetCompanyID returns the company resolved by RequireCompany
func GetCompanyID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(keyCompanyID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetCompany returns the company row resolved by RequireCompany
func GetCompany(c *gin.Context) (*models.Company, bool) {
	v, exists := c.Get(keyCompany)
	if !exists {
		return nil, false
	}
	company, ok := v.(*models.Company)
	return company, ok && company != nil
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(keyClaims)
	if !exists {
		return nil, false
	}
	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

// SetCaller stores a caller the way RequireAuth and RequireCompany do
func SetCaller(c *gin.Context, caller Caller) {
	c.Set(keyUserID, caller.UserID)
	c.Set(keyEmail, caller.Email)
	c.Set(keyIsStaff, caller.IsStaff)
	if caller.CompanyID != uuid.Nil {
		c.Set(keyCompanyID, caller.CompanyID)
		c.Set(keyCompanyRole, caller.Role)
	}
}
