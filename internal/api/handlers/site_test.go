package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"myjobs/internal/api/handlers"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/mocks"
	"myjobs/internal/search"
	"myjobs/internal/service"
	"myjobs/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SiteHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSiteServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *SiteHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSiteServiceInterface(suite.ctrl)
	handler := handlers.NewSiteHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/public/jobs", handler.SearchJobs)
	suite.httpSuite.Router.GET("/public/jobs/:guid", handler.GetJob)
}

func (suite *SiteHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SiteHandlerTestSuite) TestSearchJobs_UsesRequestHost() {
	suite.mockService.EXPECT().
		SearchJobs(gomock.Any(), "jobs.acme.example", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req *service.JobSearchRequest) (*search.Results, error) {
			assert.Equal(suite.T(), "welder", req.Q)
			assert.Equal(suite.T(), "Indianapolis", req.Location)
			assert.Equal(suite.T(), 2, req.Page)
			return &search.Results{Total: 1, Page: 2, Hits: []search.JobDocument{{GUID: testGUID, Title: "Welder"}}}, nil
		})

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/public/jobs?q=welder&location=Indianapolis&page=2", nil,
		map[string]string{"Host": "jobs.acme.example"})

	var results search.Results
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &results)
	assert.Equal(suite.T(), 1, results.Total)
	assert.Equal(suite.T(), "Welder", results.Hits[0].Title)
}

func (suite *SiteHandlerTestSuite) TestSearchJobs_UnknownSite() {
	suite.mockService.EXPECT().
		SearchJobs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrSiteNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/public/jobs?q=welder", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "site not found")
}

func (suite *SiteHandlerTestSuite) TestSearchJobs_IndexNotConfigured() {
	suite.mockService.EXPECT().
		SearchJobs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrSearchNotConfigured)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/public/jobs", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusServiceUnavailable, "not configured")
}

func (suite *SiteHandlerTestSuite) TestGetJob_OtherSitesJob() {
	suite.mockService.EXPECT().
		GetJob(gomock.Any(), gomock.Any(), testGUID).
		Return(nil, apperrors.ErrJobNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/public/jobs/"+testGUID, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "job not found")
}

func TestSiteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SiteHandlerTestSuite))
}
