package auth

import (
	"errors"
	"net/http"
	"strings"

	"myjobs/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyHeader selects the company a request acts for
const CompanyHeader = "X-Company-ID"

// Features a company can be granted
const (
	FeaturePRM     = "prm"
	FeaturePosting = "posting"
	FeatureProduct = "product"
	FeatureReports = "reports"
)

// CompanyDirectory resolves company memberships for the middleware
type CompanyDirectory interface {
	GetByID(id uuid.UUID) (*models.Company, error)
	GetMembership(companyID, userID uuid.UUID) (*models.CompanyUser, error)
	ListForUser(userID uuid.UUID) ([]models.CompanyUser, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service   *AuthService
	companies CompanyDirectory
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, companies CompanyDirectory) *AuthMiddleware {
	return &AuthMiddleware{service: service, companies: companies}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}

		userID, _ := uuid.Parse(claims.UserID)
		SetCaller(c, Caller{UserID: userID, Email: claims.Email, IsStaff: claims.IsStaff})
		c.Set(keyClaims, claims)

		c.Next()
	}
}

// RequireStaff allows only staff users. Must run after RequireAuth.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(keyIsStaff) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff access required"})
			return
		}
		c.Next()
	}
}

// RequireCompany resolves the company the caller acts for from the X-Company-ID
// header, or the caller's only company when the header is absent, and checks
// membership. When roles are given the membership must hold one of them.
// Staff users may act for any company as admins.
func (m *AuthMiddleware) RequireCompany(roles ...models.CompanyRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		companyID, err := m.resolveCompanyID(c, userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var (
			company *models.Company
			role    models.CompanyRole
		)
		membership, err := m.companies.GetMembership(companyID, userID)
		switch {
		case err == nil:
			company, role = membership.Company, membership.Role
		case errors.Is(err, gorm.ErrRecordNotFound) && c.GetBool(keyIsStaff):
			company, err = m.companies.GetByID(companyID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "company not found"})
					return
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load company", "details": err.Error()})
				return
			}
			role = models.CompanyRoleAdmin
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "user is not a member of this company"})
			return
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to check membership", "details": err.Error()})
			return
		}

		if c.GetBool(keyIsStaff) {
			role = models.CompanyRoleAdmin
		}
		if len(roles) > 0 && !hasRole(role, roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient company role"})
			return
		}

		c.Set(keyCompanyID, companyID)
		c.Set(keyCompanyRole, role)
		if company != nil {
			c.Set(keyCompany, company)
		}
		c.Next()
	}
}

// RequireFeature checks the resolved company has been granted an app. Must run after RequireCompany.
func (m *AuthMiddleware) RequireFeature(feature string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetBool(keyIsStaff) {
			c.Next()
			return
		}
		company, ok := GetCompany(c)
		if !ok || !companyHasFeature(company, feature) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "feature is not enabled for this company"})
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) resolveCompanyID(c *gin.Context, userID uuid.UUID) (uuid.UUID, error) {
	if header := c.GetHeader(CompanyHeader); header != "" {
		id, err := uuid.Parse(header)
		if err != nil {
			return uuid.Nil, errors.New("invalid company id")
		}
		return id, nil
	}

	memberships, err := m.companies.ListForUser(userID)
	if err != nil {
		return uuid.Nil, err
	}
	if len(memberships) != 1 {
		return uuid.Nil, errors.New("company context is required")
	}
	return memberships[0].CompanyID, nil
}

func hasRole(role models.CompanyRole, allowed []models.CompanyRole) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func companyHasFeature(company *models.Company, feature string) bool {
	switch feature {
	case FeaturePRM:
		return company.PRMAccess
	case FeaturePosting:
		return company.PostingAccess
	case FeatureProduct:
		return company.ProductAccess
	case FeatureReports:
		return company.ReportsAccess
	}
	return false
}
