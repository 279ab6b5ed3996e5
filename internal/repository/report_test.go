//go:build integration

package repository

import (
	"context"
	"encoding/json"
	"testing"

	"myjobs/internal/database/models"
	"myjobs/internal/reporting"
	"myjobs/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ReportRepositoryTestSuite runs generated report SQL against Postgres
type ReportRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	reports       *ReportRepository
	registry      *reporting.Registry
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ReportRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.reports = NewReportRepository(suite.baseTestSuite.DB)
	registry, err := reporting.LoadRegistry()
	suite.Require().NoError(err)
	suite.registry = registry
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ReportRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ReportRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TestExecutePartnerReport tests tenant scoping, filters and tag aggregation
func (suite *ReportRepositoryTestSuite) TestExecutePartnerReport() {
	db := suite.baseTestSuite.DB
	companies := NewCompanyRepository(db)
	partners := NewPartnerRepository(db)
	tags := NewTagRepository(db)

	mine := suite.factories.Company.Create()
	theirs := suite.factories.Company.Create()
	suite.Require().NoError(companies.Create(mine))
	suite.Require().NoError(companies.Create(theirs))

	alpha := suite.factories.PRM.Partner(mine.ID, "Alpha")
	beta := suite.factories.PRM.Partner(mine.ID, "Beta")
	foreign := suite.factories.PRM.Partner(theirs.ID, "Alpha Foreign")
	for _, p := range []*models.Partner{alpha, beta, foreign} {
		suite.Require().NoError(partners.Create(p))
	}
	veterans, err := tags.GetOrCreate(mine.ID, []string{"Veterans"})
	suite.Require().NoError(err)
	suite.Require().NoError(partners.ReplaceTags(alpha, veterans))

	dt, err := suite.registry.DataType("partners")
	suite.Require().NoError(err)

	q, err := reporting.Build(dt, mine.ID, reporting.Filters{
		"name": json.RawMessage(`{"icontains": "alp"}`),
	}, nil, "")
	suite.Require().NoError(err)

	rows, err := suite.reports.Execute(context.Background(), q.SQL, q.Args)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("Alpha", rows[0]["name"])
	suite.Equal("Veterans", rows[0]["tags"])

	q, err = reporting.Build(dt, mine.ID, reporting.Filters{"tags": json.RawMessage(`{"and": ["veterans"]}`)}, nil, "-name")
	suite.Require().NoError(err)
	rows, err = suite.reports.Execute(context.Background(), q.SQL, q.Args)
	suite.Require().NoError(err)
	suite.Len(rows, 1)

	help, err := reporting.BuildHelp(dt, mine.ID, "name", "b")
	suite.Require().NoError(err)
	rows, err = suite.reports.Execute(context.Background(), help.SQL, help.Args)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
}

// TestCRUDScopedToCompany tests that reports are only visible to their company
func (suite *ReportRepositoryTestSuite) TestCRUDScopedToCompany() {
	companies := NewCompanyRepository(suite.baseTestSuite.DB)
	company := suite.factories.Company.Create()
	suite.Require().NoError(companies.Create(company))

	report := &models.Report{CompanyID: company.ID, Name: "Partners", ReportType: "prm", DataType: "partners",
		Filters: json.RawMessage(`{}`), Values: json.RawMessage(`["name"]`), Results: json.RawMessage(`[]`)}
	suite.Require().NoError(suite.reports.Create(report))

	_, err := suite.reports.GetByID(suite.factories.Company.Create().ID, report.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	list, total, err := suite.reports.ListByCompany(company.ID, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("Partners", list[0].Name)

	suite.NoError(suite.reports.Delete(company.ID, report.ID))
}

// TestReportRepositoryTestSuite runs the test suite
func TestReportRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ReportRepositoryTestSuite))
}
