package handlers_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"myjobs/internal/api/handlers"
	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/feed"
	"myjobs/internal/mocks"
	"myjobs/internal/service"
	"myjobs/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ToolsHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockImport     *mocks.MockImportServiceInterface
	mockAutomation *mocks.MockAutomationServiceInterface
	httpSuite      *testutils.HTTPTestSuite
}

func (suite *ToolsHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockImport = mocks.NewMockImportServiceInterface(suite.ctrl)
	suite.mockAutomation = mocks.NewMockAutomationServiceInterface(suite.ctrl)
	handler := handlers.NewToolsHandler(suite.mockImport, suite.mockAutomation)

	suite.httpSuite = testutils.SetupHTTPTest()
	router := suite.httpSuite.Router
	router.POST("/tools/address-score", handler.ScoreAddress)
	router.POST("/imports/:buid", handler.ImportFeed)
	router.GET("/imports/:buid", handler.ListImports)
	router.POST("/automation/source-codes", handler.ImportSourceCodes)
}

func (suite *ToolsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ToolsHandlerTestSuite) TestScoreAddress() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/tools/address-score",
		map[string]string{"address": "1600 Pennsylvania Ave NW, Washington, DC 20500"})

	var resp map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), true, resp["is_address"])
}

func (suite *ToolsHandlerTestSuite) TestScoreAddress_MissingAddress() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/tools/address-score", map[string]string{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *ToolsHandlerTestSuite) TestImportFeed() {
	body := []byte(`<source><job><guid>` + testGUID + `</guid></job></source>`)
	suite.mockImport.EXPECT().
		ImportFeed(gomock.Any(), 1001, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, r io.Reader) (*service.ImportSummary, error) {
			got, err := io.ReadAll(r)
			assert.NoError(suite.T(), err)
			assert.Equal(suite.T(), body, got)
			return &service.ImportSummary{
				Record:      models.ImportRecord{BUID: 1001, Added: 1, Errors: 1, Status: models.ImportStatusPartial},
				EntryErrors: []feed.EntryError{{Index: 1, Reason: "missing title"}},
			}, nil
		})

	recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/imports/1001", "feed", "feed.xml", body, nil)

	var summary service.ImportSummary
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &summary)
	assert.Equal(suite.T(), 1, summary.Record.Added)
	assert.Equal(suite.T(), models.ImportStatusPartial, summary.Record.Status)
	assert.Len(suite.T(), summary.EntryErrors, 1)
}

func (suite *ToolsHandlerTestSuite) TestImportFeed_MissingFile() {
	recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/imports/1001", "other", "feed.xml", []byte("x"), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "feed file is required")
}

func (suite *ToolsHandlerTestSuite) TestImportFeed_InvalidFeed() {
	suite.mockImport.EXPECT().ImportFeed(gomock.Any(), 1001, gomock.Any()).Return(nil, apperrors.ErrInvalidFeed)

	recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/imports/1001", "feed", "feed.xml", []byte("<oops"), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid job feed")
}

func (suite *ToolsHandlerTestSuite) TestImportFeed_InvalidBUID() {
	recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/imports/abc", "feed", "feed.xml", []byte("<source/>"), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid buid")
}

func (suite *ToolsHandlerTestSuite) TestListImports() {
	suite.mockImport.EXPECT().ListImports(1001, 5).Return([]models.ImportRecord{{BUID: 1001, Status: models.ImportStatusSuccess}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/imports/1001?limit=5", nil)

	var records []models.ImportRecord
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &records)
	assert.Len(suite.T(), records, 1)
}

func (suite *ToolsHandlerTestSuite) TestImportSourceCodes() {
	csv := []byte("buid,view_source,action,value_1\n1001,294,sourcecodetag,src=news\n")
	suite.mockAutomation.EXPECT().
		ImportSourceCodes(gomock.Any()).
		Return([]service.SourceCodeResult{{Line: 2, BUID: 1001, Action: "sourcecodetag", Status: "created"}}, nil)

	recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/automation/source-codes", "file", "codes.csv", csv, nil)

	var resp struct {
		Results []service.SourceCodeResult `json:"results"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), "created", resp.Results[0].Status)
}

func (suite *ToolsHandlerTestSuite) TestImportSourceCodes_MissingFile() {
	recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/automation/source-codes", "feed", "codes.csv", []byte("x"), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "file is required")
}

func TestToolsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ToolsHandlerTestSuite))
}
