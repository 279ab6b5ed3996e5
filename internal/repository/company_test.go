//go:build integration

package repository

import (
	"testing"

	"myjobs/internal/database/models"
	"myjobs/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CompanyRepositoryTestSuite tests companies, business units and sites
type CompanyRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	companies     *CompanyRepository
	units         *BusinessUnitRepository
	sites         *SiteRepository
	users         *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CompanyRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.companies = NewCompanyRepository(db)
	suite.units = NewBusinessUnitRepository(db)
	suite.sites = NewSiteRepository(db)
	suite.users = NewUserRepository(db)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CompanyRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CompanyRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TestMembership tests adding, reading and removing company users
func (suite *CompanyRepositoryTestSuite) TestMembership() {
	company := suite.factories.Company.Create()
	suite.Require().NoError(suite.companies.Create(company))
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.users.Create(user))

	suite.Require().NoError(suite.companies.AddUser(&models.CompanyUser{
		CompanyID: company.ID, UserID: user.ID, Role: models.CompanyRoleAdmin,
	}))
	err := suite.companies.AddUser(&models.CompanyUser{CompanyID: company.ID, UserID: user.ID})
	suite.Error(err, "duplicate membership must be rejected")

	cu, err := suite.companies.GetMembership(company.ID, user.ID)
	suite.Require().NoError(err)
	suite.Equal(models.CompanyRoleAdmin, cu.Role)
	suite.Equal(company.Name, cu.Company.Name)

	memberships, err := suite.companies.ListForUser(user.ID)
	suite.Require().NoError(err)
	suite.Len(memberships, 1)

	suite.NoError(suite.companies.RemoveUser(company.ID, user.ID))
	suite.ErrorIs(suite.companies.RemoveUser(company.ID, user.ID), gorm.ErrRecordNotFound)
}

// TestBusinessUnitsAndSites tests BUID assignment and site lookups by domain
func (suite *CompanyRepositoryTestSuite) TestBusinessUnitsAndSites() {
	company := suite.factories.Company.Create()
	suite.Require().NoError(suite.companies.Create(company))

	for _, id := range []int{13, 7} {
		suite.Require().NoError(suite.units.Create(&models.BusinessUnit{ID: id, Title: "BU"}))
		suite.Require().NoError(suite.units.AssignToCompany(id, &company.ID))
	}
	ids, err := suite.units.IDsForCompany(company.ID)
	suite.Require().NoError(err)
	suite.Equal([]int{7, 13}, ids)

	site := suite.factories.Site.WithCompany(company.ID)
	site.Domain = "Jobs.Example.COM"
	suite.Require().NoError(suite.sites.Create(site))
	suite.Require().NoError(suite.sites.SetBusinessUnits(site, []int{7, 13}))

	found, err := suite.sites.GetByDomain("jobs.example.com")
	suite.Require().NoError(err)
	suite.ElementsMatch([]int{7, 13}, found.BUIDs())

	suite.Require().NoError(suite.sites.Delete(site.ID))
	_, err = suite.sites.GetByDomain("jobs.example.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCompanyRepositoryTestSuite runs the test suite
func TestCompanyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyRepositoryTestSuite))
}
