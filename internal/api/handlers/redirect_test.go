package handlers_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"myjobs/internal/api/handlers"
	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/mocks"
	"myjobs/internal/service"
	"myjobs/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedirectHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRedirectServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *RedirectHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRedirectServiceInterface(suite.ctrl)
	handler := handlers.NewRedirectHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	router := suite.httpSuite.Router
	router.GET("/:guid", handler.Redirect)
	router.GET("/redirect/manipulations", handler.ListManipulations)
	router.GET("/redirect/manipulations/:id", handler.GetManipulation)
	router.GET("/redirect/actions", handler.ListActions)
}

func (suite *RedirectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

var testGUID = strings.Repeat("A", 32)

func (suite *RedirectHandlerTestSuite) TestRedirect_Found() {
	suite.mockService.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req service.ResolveRequest) (*service.Resolution, *service.ExpiredJob, error) {
			assert.Equal(suite.T(), testGUID+"20", req.Path)
			assert.Equal(suite.T(), "https://news.example.com/", req.Referrer)
			return &service.Resolution{GUID: testGUID, Destination: "https://acme.example/apply?src=jobs"}, nil, nil
		})

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/"+testGUID+"20", nil,
		map[string]string{"Referer": "https://news.example.com/"})

	assert.Equal(suite.T(), http.StatusFound, recorder.Code)
	assert.Equal(suite.T(), "https://acme.example/apply?src=jobs", recorder.Header().Get("Location"))
	assert.Equal(suite.T(), "noindex", recorder.Header().Get("X-Robots-Tag"))
}

func (suite *RedirectHandlerTestSuite) TestRedirect_Debug() {
	suite.mockService.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(&service.Resolution{GUID: testGUID, Destination: "https://acme.example/", Debug: true}, nil, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/"+testGUID+"+", nil)

	var res service.Resolution
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &res)
	assert.True(suite.T(), res.Debug)
	assert.Equal(suite.T(), "https://acme.example/", res.Destination)
}

func (suite *RedirectHandlerTestSuite) TestRedirect_Expired() {
	expired := &service.ExpiredJob{GUID: testGUID, Title: "Welder", CompanyName: "Acme", SearchURL: "https://www.my.jobs/jobs?q=Welder"}
	suite.mockService.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(nil, expired, apperrors.ErrRedirectExpired)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/"+testGUID, nil)

	var got service.ExpiredJob
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusGone, &got)
	assert.Equal(suite.T(), *expired, got)
	assert.Equal(suite.T(), "noindex", recorder.Header().Get("X-Robots-Tag"))
}

func (suite *RedirectHandlerTestSuite) TestRedirect_InvalidGUIDIsNotFound() {
	suite.mockService.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(nil, nil, apperrors.ErrInvalidGUID)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/favicon.ico", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "redirect not found")
}

func (suite *RedirectHandlerTestSuite) TestRedirect_UnknownGUID() {
	suite.mockService.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(nil, nil, apperrors.ErrRedirectNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/"+testGUID, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "redirect not found")
}

func (suite *RedirectHandlerTestSuite) TestListManipulations_RequiresBUID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/redirect/manipulations", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "buid is required")
}

func (suite *RedirectHandlerTestSuite) TestListManipulations() {
	resp := &service.ManipulationListResponse{
		Manipulations: []models.DestinationManipulation{{ID: 3, BUID: 1001, ActionType: 1, Action: "sourcecodetag"}},
		Total:         1,
		Page:          2,
		PageSize:      10,
	}
	suite.mockService.EXPECT().ListManipulations(1001, 2, 10).Return(resp, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/redirect/manipulations?buid=1001&page=2&page_size=10", nil)

	var got service.ManipulationListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Equal(suite.T(), "sourcecodetag", got.Manipulations[0].Action)
}

func (suite *RedirectHandlerTestSuite) TestGetManipulation_NotFound() {
	suite.mockService.EXPECT().GetManipulation(uint(9)).Return(nil, apperrors.ErrDestinationManipulationNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/redirect/manipulations/9", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "destination manipulation not found")
}

func (suite *RedirectHandlerTestSuite) TestListActions() {
	suite.mockService.EXPECT().KnownActions().Return([]string{"replacethenadd", "sourcecodetag"})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/redirect/actions", nil)

	var got []string
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), []string{"replacethenadd", "sourcecodetag"}, got)
}

func TestRedirectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RedirectHandlerTestSuite))
}
