package handlers_test

import (
	"io"
	"net/http"
	"testing"

	"myjobs/internal/api/handlers"
	"myjobs/internal/auth"
	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/mocks"
	"myjobs/internal/reporting"
	"myjobs/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockReportServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	companyID   uuid.UUID
}

func (suite *ReportHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockReportServiceInterface(suite.ctrl)
	handler := handlers.NewReportHandler(suite.mockService)
	suite.companyID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()
	reports := suite.httpSuite.Router.Group("/reports", withCaller(auth.Caller{
		UserID:    uuid.New(),
		CompanyID: suite.companyID,
		Role:      models.CompanyRoleMember,
	}))
	reports.GET("/:id/download", handler.Download)
	reports.GET("/help", handler.Help)
}

func (suite *ReportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportHandlerTestSuite) TestDownload_CSV() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Download(suite.companyID, id, "csv", []string{"name", "email"}, "-name", gomock.Any()).
		DoAndReturn(func(_, _ uuid.UUID, _ string, _ []string, _ string, w io.Writer) (reporting.PresentationType, error) {
			_, _ = io.WriteString(w, "Name,Email\nJane Doe,jane@example.com\n")
			return reporting.PresentationCSV, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/reports/"+id.String()+"/download?values=name,%20email&order_by=-name", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "text/csv", recorder.Header().Get("Content-Type"))
	assert.Equal(suite.T(), `attachment; filename="report-`+id.String()+`.csv"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(suite.T(), "Name,Email\nJane Doe,jane@example.com\n", recorder.Body.String())
}

func (suite *ReportHandlerTestSuite) TestDownload_NotRun() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Download(suite.companyID, id, "xlsx", nil, "", gomock.Any()).
		Return(reporting.PresentationType(""), apperrors.ErrReportNotRun)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/reports/"+id.String()+"/download?format=xlsx", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "no results")
}

func (suite *ReportHandlerTestSuite) TestDownload_InvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/reports/42/download", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid id")
}

func (suite *ReportHandlerTestSuite) TestHelp() {
	suite.mockService.EXPECT().
		Help(gomock.Any(), suite.companyID, "contacts", "name", "ja").
		Return([]string{"Jane Doe", "Jamal Ray"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/reports/help?data_type=contacts&field=name&partial=ja", nil)

	var values []string
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &values)
	assert.Equal(suite.T(), []string{"Jane Doe", "Jamal Ray"}, values)
}

func (suite *ReportHandlerTestSuite) TestHelp_RequiresField() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/reports/help?data_type=contacts", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "data_type and field are required")
}

func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
