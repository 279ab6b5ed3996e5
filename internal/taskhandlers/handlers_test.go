package taskhandlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"myjobs/internal/analytics"
	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/mailer"
	"myjobs/internal/mocks"
	"myjobs/internal/search"
	"myjobs/internal/service"
	"myjobs/internal/taskhandlers"
	"myjobs/internal/tasks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const guid = "0123456789ABCDEF0123456789ABCDEF"

type registry map[string]tasks.Handler

func (r registry) Register(name string, h tasks.Handler) { r[name] = h }

type HandlersTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockSender    *mocks.MockSender
	mockJobs      *mocks.MockPostedJobRepositoryInterface
	mockCompanies *mocks.MockCompanyRepositoryInterface
	mockIndex     *mocks.MockIndex
	mockImports   *mocks.MockImportServiceInterface
	mockAnalytics *mocks.MockAnalyticsServiceInterface
	handlers      *taskhandlers.Handlers

	ctx context.Context
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSender = mocks.NewMockSender(suite.ctrl)
	suite.mockJobs = mocks.NewMockPostedJobRepositoryInterface(suite.ctrl)
	suite.mockCompanies = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.mockIndex = mocks.NewMockIndex(suite.ctrl)
	suite.mockImports = mocks.NewMockImportServiceInterface(suite.ctrl)
	suite.mockAnalytics = mocks.NewMockAnalyticsServiceInterface(suite.ctrl)
	suite.handlers = taskhandlers.New(suite.mockSender, suite.mockJobs, suite.mockCompanies,
		suite.mockIndex, suite.mockImports, suite.mockAnalytics)
	suite.ctx = context.Background()
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *HandlersTestSuite) payload(v interface{}) json.RawMessage {
	raw, err := json.Marshal(v)
	require.NoError(suite.T(), err)
	return raw
}

func (suite *HandlersTestSuite) TestRegister_BindsEveryTask() {
	r := registry{}

	suite.handlers.Register(r)

	for _, name := range []string{tasks.SendEmail, tasks.IndexJob, tasks.RemoveJob, tasks.ImportFeed, tasks.RecordClick} {
		assert.Contains(suite.T(), r, name)
	}
}

func (suite *HandlersTestSuite) TestSendEmail() {
	suite.mockSender.EXPECT().Send(suite.ctx, mailer.Message{
		To: "jane@example.com", Subject: "Hi", HTML: "<p>Hi</p>", Event: models.EmailEvent("invoice"),
	}).Return(nil)

	err := suite.handlers.SendEmail(suite.ctx, suite.payload(tasks.SendEmailPayload{
		To: "jane@example.com", Subject: "Hi", HTML: "<p>Hi</p>", Event: "invoice",
	}))

	assert.NoError(suite.T(), err)
}

func (suite *HandlersTestSuite) TestSendEmail_BadPayload() {
	err := suite.handlers.SendEmail(suite.ctx, json.RawMessage(`[1,2]`))

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "invalid task payload")
}

func (suite *HandlersTestSuite) TestIndexJob_PushesLiveJob() {
	companyID := uuid.New()
	created := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.mockJobs.EXPECT().GetByGUID(guid).Return(&models.PostedJob{
		BaseModel:  models.BaseModel{CreatedAt: created},
		CompanyID:  companyID,
		GUID:       guid,
		BUID:       42,
		Title:      "Welder",
		City:       "Indianapolis",
		State:      "IN",
		ApplyEmail: "jobs@acme.com",
		IsApproved: true,
	}, nil)
	suite.mockCompanies.EXPECT().GetByID(companyID).Return(&models.Company{Name: "Acme"}, nil)
	suite.mockIndex.EXPECT().Upsert(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, doc search.JobDocument) error {
		assert.Equal(suite.T(), guid, doc.ID)
		assert.Equal(suite.T(), 42, doc.BUID)
		assert.Equal(suite.T(), "Acme", doc.Company)
		assert.Equal(suite.T(), "Indianapolis, IN", doc.Location)
		assert.Equal(suite.T(), "mailto:jobs@acme.com", doc.URL)
		assert.Equal(suite.T(), created.Unix(), doc.DateNew)
		assert.True(suite.T(), doc.IsPosted)
		return nil
	})

	err := suite.handlers.IndexJob(suite.ctx, suite.payload(tasks.IndexJobPayload{GUID: guid}))

	assert.NoError(suite.T(), err)
}

func (suite *HandlersTestSuite) TestIndexJob_SkipsExpired() {
	suite.mockJobs.EXPECT().GetByGUID(guid).Return(&models.PostedJob{GUID: guid, IsApproved: true, IsExpired: true}, nil)

	err := suite.handlers.IndexJob(suite.ctx, suite.payload(tasks.IndexJobPayload{GUID: guid}))

	assert.NoError(suite.T(), err)
}

func (suite *HandlersTestSuite) TestIndexJob_SkipsMissing() {
	suite.mockJobs.EXPECT().GetByGUID(guid).Return(nil, gorm.ErrRecordNotFound)

	err := suite.handlers.IndexJob(suite.ctx, suite.payload(tasks.IndexJobPayload{GUID: guid}))

	assert.NoError(suite.T(), err)
}

func (suite *HandlersTestSuite) TestIndexJob_IndexError() {
	suite.mockJobs.EXPECT().GetByGUID(guid).Return(&models.PostedJob{GUID: guid, IsApproved: true, ApplyLink: "https://acme.com/apply"}, nil)
	suite.mockCompanies.EXPECT().GetByID(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockIndex.EXPECT().Upsert(suite.ctx, gomock.Any()).Return(errors.New("typesense down"))

	err := suite.handlers.IndexJob(suite.ctx, suite.payload(tasks.IndexJobPayload{GUID: guid}))

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to index posted job")
}

func (suite *HandlersTestSuite) TestIndexJob_NoIndex() {
	h := taskhandlers.New(suite.mockSender, suite.mockJobs, suite.mockCompanies, nil, suite.mockImports, suite.mockAnalytics)

	err := h.IndexJob(suite.ctx, suite.payload(tasks.IndexJobPayload{GUID: guid}))

	assert.ErrorIs(suite.T(), err, apperrors.ErrSearchNotConfigured)
}

func (suite *HandlersTestSuite) TestRemoveJob() {
	suite.mockIndex.EXPECT().Delete(suite.ctx, guid).Return(nil)

	err := suite.handlers.RemoveJob(suite.ctx, suite.payload(tasks.RemoveJobPayload{GUID: guid}))

	assert.NoError(suite.T(), err)
}

func (suite *HandlersTestSuite) TestImportFeed_OpensFile() {
	path := filepath.Join(suite.T().TempDir(), "feed.xml")
	require.NoError(suite.T(), os.WriteFile(path, []byte("<jobs></jobs>"), 0o600))
	suite.mockImports.EXPECT().ImportFeed(suite.ctx, 42, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, r io.Reader) (*service.ImportSummary, error) {
			body, err := io.ReadAll(r)
			require.NoError(suite.T(), err)
			assert.Equal(suite.T(), "<jobs></jobs>", string(body))
			return &service.ImportSummary{Record: models.ImportRecord{Status: models.ImportStatusSuccess}}, nil
		})

	err := suite.handlers.ImportFeed(suite.ctx, suite.payload(tasks.ImportFeedPayload{BUID: 42, Path: path}))

	assert.NoError(suite.T(), err)
}

func (suite *HandlersTestSuite) TestImportFeed_MissingFile() {
	err := suite.handlers.ImportFeed(suite.ctx, suite.payload(tasks.ImportFeedPayload{BUID: 42, Path: "/nonexistent/feed.xml"}))

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to open feed")
}

func (suite *HandlersTestSuite) TestRecordClick() {
	at := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.mockAnalytics.EXPECT().RecordClick(suite.ctx, analytics.Click{
		GUID: guid, BUID: 42, ViewSource: 7, URL: "https://ats.example.com/1", At: at,
	}).Return(nil)

	err := suite.handlers.RecordClick(suite.ctx, suite.payload(tasks.RecordClickPayload{
		GUID: guid, BUID: 42, ViewSource: 7, URL: "https://ats.example.com/1", At: at,
	}))

	assert.NoError(suite.T(), err)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
