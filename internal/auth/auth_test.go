package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"myjobs/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-signing-key-0123456789"

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	s, err := NewAuthService(NewAuthConfig(testSecret, 60))
	require.NoError(t, err)
	return s
}

func testUser(staff bool) *models.User {
	u := &models.User{Email: "jane@example.com", IsStaff: staff, IsActive: true}
	u.ID = uuid.New()
	return u
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, NewAuthConfig(testSecret, 30).ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		err := NewAuthConfig("", 30).ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("short jwt secret", func(t *testing.T) {
		err := NewAuthConfig("short", 30).ValidateConfig()
		assert.Error(t, err)
	})

	t.Run("zero ttl falls back to an hour", func(t *testing.T) {
		assert.Equal(t, time.Hour, NewAuthConfig(testSecret, 0).TokenTTL)
	})
}

func TestJWTOperations(t *testing.T) {
	s := newTestService(t)
	user := testUser(true)

	resp, err := s.GenerateJWT(user)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := s.ValidateJWT(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.True(t, claims.IsStaff)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService(NewAuthConfig("another-signing-key-987654", 60))
		require.NoError(t, err)
		_, err = other.ValidateJWT(resp.AccessToken)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := s.ValidateJWT("not-a-token")
		assert.Error(t, err)
	})
}

func TestJWTExpiration(t *testing.T) {
	s := newTestService(t)
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issued }

	resp, err := s.GenerateJWT(testUser(false))
	require.NoError(t, err)

	s.now = func() time.Time { return issued.Add(59 * time.Minute) }
	_, err = s.ValidateJWT(resp.AccessToken)
	assert.NoError(t, err)

	s.now = func() time.Time { return issued.Add(61 * time.Minute) }
	_, err = s.ValidateJWT(resp.AccessToken)
	assert.Error(t, err)
}

func TestUnsubscribeToken(t *testing.T) {
	s := newTestService(t)
	searchID := uuid.New()

	token, err := s.GenerateUnsubscribeToken(searchID)
	require.NoError(t, err)

	got, err := s.ValidateUnsubscribeToken(token)
	require.NoError(t, err)
	assert.Equal(t, searchID, got)

	t.Run("access token is not an unsubscribe token", func(t *testing.T) {
		resp, err := s.GenerateJWT(testUser(false))
		require.NoError(t, err)
		_, err = s.ValidateUnsubscribeToken(resp.AccessToken)
		assert.Error(t, err)
	})

	t.Run("unsubscribe token is not an access token", func(t *testing.T) {
		_, err := s.ValidateJWT(token)
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "correct horse"))
	assert.False(t, CheckPassword(hash, "wrong horse"))

	_, err = HashPassword("short")
	assert.Error(t, err)
}

type fakeDirectory struct {
	companies   map[uuid.UUID]*models.Company
	memberships map[uuid.UUID][]models.CompanyUser
}

func (f *fakeDirectory) GetByID(id uuid.UUID) (*models.Company, error) {
	if c, ok := f.companies[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDirectory) GetMembership(companyID, userID uuid.UUID) (*models.CompanyUser, error) {
	for _, m := range f.memberships[userID] {
		if m.CompanyID == companyID {
			m := m
			return &m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDirectory) ListForUser(userID uuid.UUID) ([]models.CompanyUser, error) {
	return f.memberships[userID], nil
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newTestService(t)

	company := &models.Company{Name: "Acme", Slug: "acme", PRMAccess: true}
	company.ID = uuid.New()
	other := &models.Company{Name: "Other", Slug: "other"}
	other.ID = uuid.New()

	member := testUser(false)
	admin := testUser(false)
	staff := testUser(true)

	dir := &fakeDirectory{
		companies: map[uuid.UUID]*models.Company{company.ID: company, other.ID: other},
		memberships: map[uuid.UUID][]models.CompanyUser{
			member.ID: {{CompanyID: company.ID, UserID: member.ID, Role: models.CompanyRoleMember, Company: company}},
			admin.ID: {
				{CompanyID: company.ID, UserID: admin.ID, Role: models.CompanyRoleAdmin, Company: company},
				{CompanyID: other.ID, UserID: admin.ID, Role: models.CompanyRoleAdmin, Company: other},
			},
		},
	}
	mw := NewAuthMiddleware(s, dir)

	router := gin.New()
	api := router.Group("/api", mw.RequireAuth())
	api.GET("/me", func(c *gin.Context) {
		caller := CallerFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": caller.UserID.String()})
	})
	api.GET("/staff", mw.RequireStaff(), func(c *gin.Context) { c.Status(http.StatusOK) })
	api.GET("/company", mw.RequireCompany(), func(c *gin.Context) {
		caller := CallerFromContext(c)
		c.JSON(http.StatusOK, gin.H{"company_id": caller.CompanyID.String(), "admin": caller.IsAdmin()})
	})
	api.GET("/company/admin", mw.RequireCompany(models.CompanyRoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })
	api.GET("/company/prm", mw.RequireCompany(), mw.RequireFeature(FeaturePRM), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(path string, user *models.User, headers map[string]string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if user != nil {
			tok, err := s.GenerateJWT(user)
			require.NoError(t, err)
			req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("/api/me", nil, nil).Code)
	})

	t.Run("bad header format", func(t *testing.T) {
		w := do("/api/me", nil, map[string]string{"Authorization": "Token abc"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := do("/api/me", member, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), member.ID.String())
	})

	t.Run("staff only", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, do("/api/staff", member, nil).Code)
		assert.Equal(t, http.StatusOK, do("/api/staff", staff, nil).Code)
	})

	t.Run("single membership resolves without header", func(t *testing.T) {
		w := do("/api/company", member, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), company.ID.String())
	})

	t.Run("several memberships need the header", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do("/api/company", admin, nil).Code)
		w := do("/api/company", admin, map[string]string{CompanyHeader: other.ID.String()})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), other.ID.String())
	})

	t.Run("non member is forbidden", func(t *testing.T) {
		w := do("/api/company", member, map[string]string{CompanyHeader: other.ID.String()})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("role check", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, do("/api/company/admin", member, nil).Code)
		h := map[string]string{CompanyHeader: company.ID.String()}
		assert.Equal(t, http.StatusOK, do("/api/company/admin", admin, h).Code)
	})

	t.Run("staff acts as admin of any company", func(t *testing.T) {
		h := map[string]string{CompanyHeader: other.ID.String()}
		w := do("/api/company", staff, h)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"admin":true`)
		assert.Equal(t, http.StatusNotFound, do("/api/company", staff, map[string]string{CompanyHeader: uuid.NewString()}).Code)
	})

	t.Run("feature flag", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do("/api/company/prm", member, nil).Code)
		h := map[string]string{CompanyHeader: other.ID.String()}
		assert.Equal(t, http.StatusForbidden, do("/api/company/prm", admin, h).Code)
	})
}
