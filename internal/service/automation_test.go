package service_test

import (
	"errors"
	"strings"
	"testing"

	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/mocks"
	"myjobs/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AutomationServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockManipulations *mocks.MockDestinationManipulationRepositoryInterface
	svc               *service.AutomationService
}

func (suite *AutomationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockManipulations = mocks.NewMockDestinationManipulationRepositoryInterface(suite.ctrl)
	suite.svc = service.NewAutomationService(suite.mockManipulations)
}

func (suite *AutomationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AutomationServiceTestSuite) TestImportSourceCodes_CreatesAndUpdates() {
	csvData := "\ufeffbuid,view_source,action_type,action,value_1,value_2\n" +
		"42,20,1,SourceCodeTag,src=indeed,\n" +
		"42,0,2,urlswap,https://apply.example.com,\n"

	suite.mockManipulations.EXPECT().FindByKey(42, 20, 1, "sourcecodetag").Return(nil, gorm.ErrRecordNotFound)
	suite.mockManipulations.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.DestinationManipulation) error {
		assert.Equal(suite.T(), "src=indeed", m.Value1)
		return nil
	})
	existing := &models.DestinationManipulation{ID: 7, BUID: 42, ActionType: 2, Action: "urlswap", Value1: "https://old.example.com"}
	suite.mockManipulations.EXPECT().FindByKey(42, 0, 2, "urlswap").Return(existing, nil)
	suite.mockManipulations.EXPECT().Update(existing).Return(nil)

	results, err := suite.svc.ImportSourceCodes(strings.NewReader(csvData))

	require.NoError(suite.T(), err)
	require.Len(suite.T(), results, 2)
	assert.Equal(suite.T(), service.SourceCodeCreated, results[0].Status)
	assert.Equal(suite.T(), 2, results[0].Line)
	assert.Equal(suite.T(), service.SourceCodeUpdated, results[1].Status)
	assert.Equal(suite.T(), "https://apply.example.com", existing.Value1)
}

func (suite *AutomationServiceTestSuite) TestImportSourceCodes_BadRowsAreReported() {
	csvData := "buid,view_source,action_type,action,value_1,value_2\n" +
		"abc,0,1,sourcecodetag,x,\n" +
		"42,0,3,sourcecodetag,x,\n" +
		"42,0,1,teleport,x,\n" +
		"42,0,1\n"

	results, err := suite.svc.ImportSourceCodes(strings.NewReader(csvData))

	require.NoError(suite.T(), err)
	require.Len(suite.T(), results, 4)
	for _, r := range results {
		assert.Equal(suite.T(), service.SourceCodeError, r.Status)
	}
	assert.Contains(suite.T(), results[0].Message, "invalid buid")
	assert.Contains(suite.T(), results[1].Message, "invalid action_type")
	assert.Contains(suite.T(), results[2].Message, "unknown action")
	assert.Contains(suite.T(), results[3].Message, "expected 6 fields")
}

func (suite *AutomationServiceTestSuite) TestImportSourceCodes_LookupFailure() {
	csvData := "buid,view_source,action_type,action,value_1,value_2\n42,0,1,sourcecodetag,x,\n"
	suite.mockManipulations.EXPECT().FindByKey(42, 0, 1, "sourcecodetag").Return(nil, errors.New("db down"))

	results, err := suite.svc.ImportSourceCodes(strings.NewReader(csvData))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.SourceCodeError, results[0].Status)
	assert.Contains(suite.T(), results[0].Message, "failed to look up")
}

func (suite *AutomationServiceTestSuite) TestImportSourceCodes_WrongHeader() {
	_, err := suite.svc.ImportSourceCodes(strings.NewReader("guid,url\n"))

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSourceCodeCSVFile)
}

func (suite *AutomationServiceTestSuite) TestImportSourceCodes_Empty() {
	_, err := suite.svc.ImportSourceCodes(strings.NewReader(""))

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSourceCodeCSVFile)
}

func TestAutomationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AutomationServiceTestSuite))
}
