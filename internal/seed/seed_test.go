package seed

import (
	"os"
	"path/filepath"
	"testing"

	"myjobs/internal/auth"
	"myjobs/internal/database"
	"myjobs/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const companiesYAML = `
view_sources:
  - id: 294
    name: indeed
    friendly_name: Indeed
users:
  - email: Admin@Acme.com
    password: s3cret-pass
  - email: staff@my.jobs
    password: s3cret-pass
    is_staff: true
companies:
  - name: Acme
    slug: acme
    member: true
    posting_access: true
    users:
      - email: admin@acme.com
        role: admin
      - email: nobody@acme.com
        role: member
    business_units:
      - id: 1001
        title: Acme Jobs
`

const sitesYAML = `
sites:
  - domain: Jobs.Acme.com
    name: Acme Careers
    company_slug: acme
    default_view_source: 294
    business_units: [1001]
products:
  - name: Five pack
    company_slug: acme
    cost: "99.50"
    num_jobs_allowed: 5
  - name: Broken
    company_slug: acme
    cost: free
`

type SeedTestSuite struct {
	suite.Suite
	db  *gorm.DB
	dir string
}

func (suite *SeedTestSuite) SetupTest() {
	db, err := database.OpenSQLite(filepath.Join(suite.T().TempDir(), "seed.db"))
	suite.Require().NoError(err)
	suite.db = db

	suite.dir = suite.T().TempDir()
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.dir, "companies.yaml"), []byte(companiesYAML), 0o600))
	suite.Require().NoError(os.MkdirAll(filepath.Join(suite.dir, "acme"), 0o755))
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.dir, "acme", "sites.yml"), []byte(sitesYAML), 0o600))
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.dir, "README.md"), []byte("not yaml: ["), 0o600))
}

func (suite *SeedTestSuite) TestReadDir_MergesFiles() {
	f, err := ReadDir(suite.dir)

	suite.Require().NoError(err)
	suite.Len(f.Users, 2)
	suite.Len(f.Companies, 1)
	suite.Len(f.Sites, 1)
	suite.Len(f.Products, 2)
	suite.Len(f.ViewSources, 1)
}

func (suite *SeedTestSuite) TestReadDir_InvalidYAML() {
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.dir, "bad.yaml"), []byte("users: [\n"), 0o600))

	_, err := ReadDir(suite.dir)

	suite.Error(err)
	suite.Contains(err.Error(), "bad.yaml")
}

func (suite *SeedTestSuite) TestLoad_CreatesEverything() {
	f, err := ReadDir(suite.dir)
	suite.Require().NoError(err)

	summary, err := Load(suite.db, f)

	suite.Require().NoError(err)
	suite.Equal(&Summary{Users: 2, Companies: 1, Units: 1, Sites: 1, Products: 1, ViewSources: 1}, summary)

	var user models.User
	suite.Require().NoError(suite.db.Where("email = ?", "admin@acme.com").First(&user).Error)
	suite.True(auth.CheckPassword(user.PasswordHash, "s3cret-pass"))

	var membership models.CompanyUser
	suite.Require().NoError(suite.db.Where("user_id = ?", user.ID).First(&membership).Error)
	suite.Equal(models.CompanyRoleAdmin, membership.Role)

	var site models.SeoSite
	suite.Require().NoError(suite.db.Preload("BusinessUnits").Where("domain = ?", "jobs.acme.com").First(&site).Error)
	suite.Equal([]int{1001}, site.BUIDs())
	suite.Equal(294, site.DefaultViewSource)

	var product models.Product
	suite.Require().NoError(suite.db.Where("name = ?", "Five pack").First(&product).Error)
	suite.Equal("99.5", product.Cost.String())
	suite.Equal(30, product.PostingWindowDays)
}

func (suite *SeedTestSuite) TestLoad_IsIdempotent() {
	f, err := ReadDir(suite.dir)
	suite.Require().NoError(err)
	_, err = Load(suite.db, f)
	suite.Require().NoError(err)

	summary, err := Load(suite.db, f)

	suite.Require().NoError(err)
	suite.Equal(&Summary{}, summary)

	var count int64
	suite.db.Model(&models.CompanyUser{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *SeedTestSuite) TestLoad_UnknownCompany() {
	_, err := Load(suite.db, &File{Sites: []SiteData{{Domain: "x.example.com", CompanySlug: "missing"}}})

	suite.Error(err)
	suite.Contains(err.Error(), "company missing not found")
}

func TestSeedTestSuite(t *testing.T) {
	suite.Run(t, new(SeedTestSuite))
}

func TestDefaultInt(t *testing.T) {
	assert.Equal(t, 30, defaultInt(0, 30))
	assert.Equal(t, 30, defaultInt(-2, 30))
	require.Equal(t, 7, defaultInt(7, 30))
}
