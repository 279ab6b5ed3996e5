package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"myjobs/internal/database"
	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/mocks"
	"myjobs/internal/repository"
	"myjobs/internal/search"
	"myjobs/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const importFeed = `<?xml version="1.0" encoding="UTF-8"?>
<jobs company="Acme Corp">
  <job>
    <guid>0123456789abcdef0123456789abcdef</guid>
    <title>Welder</title>
    <city>Indianapolis</city>
    <state>IN</state>
    <url>https://ats.example.com/jobs/1</url>
    <description>Weld things</description>
  </job>
  <job>
    <guid>FEDCBA9876543210FEDCBA9876543210</guid>
    <title>Nurse</title>
    <url>https://ats.example.com/jobs/2</url>
  </job>
  <job>
    <guid>bad</guid>
    <title>Broken</title>
    <url>https://ats.example.com/jobs/3</url>
  </job>
</jobs>`

type ImportServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockUnits     *mocks.MockBusinessUnitRepositoryInterface
	mockRedirects *mocks.MockRedirectRepositoryInterface
	mockRecords   *mocks.MockImportRecordRepositoryInterface
	mockIndex     *mocks.MockIndex
	svc           *service.ImportService

	ctx context.Context
}

func (suite *ImportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUnits = mocks.NewMockBusinessUnitRepositoryInterface(suite.ctrl)
	suite.mockRedirects = mocks.NewMockRedirectRepositoryInterface(suite.ctrl)
	suite.mockRecords = mocks.NewMockImportRecordRepositoryInterface(suite.ctrl)
	suite.mockIndex = mocks.NewMockIndex(suite.ctrl)
	suite.svc = service.NewImportService(suite.mockUnits, suite.mockRedirects, suite.mockRecords, suite.mockIndex)
	suite.ctx = context.Background()
}

func (suite *ImportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ImportServiceTestSuite) TestImportFeed_UpsertsAndExpires() {
	welder := "0123456789ABCDEF0123456789ABCDEF"
	nurse := "FEDCBA9876543210FEDCBA9876543210"
	suite.mockUnits.EXPECT().GetByID(42).Return(&models.BusinessUnit{ID: 42}, nil)
	suite.mockRedirects.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(r *models.Redirect) (bool, error) {
		assert.Equal(suite.T(), 42, r.BUID)
		assert.False(suite.T(), r.NewDate.IsZero())
		return r.GUID == welder, nil
	}).Times(2)
	suite.mockIndex.EXPECT().Upsert(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, doc search.JobDocument) error {
		assert.Equal(suite.T(), doc.GUID, doc.ID)
		if doc.GUID == welder {
			assert.Equal(suite.T(), "Indianapolis, IN", doc.Location)
			assert.Equal(suite.T(), "Acme Corp", doc.Company)
		}
		return nil
	}).Times(2)
	suite.mockRedirects.EXPECT().ExpireMissing(42, []string{welder, nurse}, gomock.Any()).Return(int64(3), nil)
	suite.mockIndex.EXPECT().DeleteByBUID(suite.ctx, 42, []string{welder, nurse}).Return(3, nil)
	suite.mockRecords.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.ImportRecord) error {
		assert.Equal(suite.T(), models.ImportStatusPartial, r.Status)
		assert.False(suite.T(), r.FinishedAt.IsZero())
		return nil
	})

	summary, err := suite.svc.ImportFeed(suite.ctx, 42, strings.NewReader(importFeed))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, summary.Record.Added)
	assert.Equal(suite.T(), 1, summary.Record.Updated)
	assert.Equal(suite.T(), 3, summary.Record.Expired)
	assert.Equal(suite.T(), 1, summary.Record.Errors)
	require.Len(suite.T(), summary.EntryErrors, 1)
	assert.Equal(suite.T(), "invalid guid", summary.EntryErrors[0].Reason)
}

func (suite *ImportServiceTestSuite) TestImportFeed_RedirectFailureSkipsJob() {
	suite.mockUnits.EXPECT().GetByID(42).Return(&models.BusinessUnit{ID: 42}, nil)
	gomock.InOrder(
		suite.mockRedirects.EXPECT().Upsert(gomock.Any()).Return(false, errors.New("db down")),
		suite.mockRedirects.EXPECT().Upsert(gomock.Any()).Return(true, nil),
	)
	suite.mockIndex.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockRedirects.EXPECT().ExpireMissing(42, []string{"FEDCBA9876543210FEDCBA9876543210"}, gomock.Any()).Return(int64(0), nil)
	suite.mockIndex.EXPECT().DeleteByBUID(gomock.Any(), 42, gomock.Any()).Return(0, nil)
	suite.mockRecords.EXPECT().Create(gomock.Any()).Return(nil)

	summary, err := suite.svc.ImportFeed(suite.ctx, 42, strings.NewReader(importFeed))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, summary.Record.Errors)
	assert.Contains(suite.T(), summary.EntryErrors[1].Reason, "redirect:")
}

func (suite *ImportServiceTestSuite) TestImportFeed_WithoutIndex() {
	svc := service.NewImportService(suite.mockUnits, suite.mockRedirects, suite.mockRecords, nil)
	suite.mockUnits.EXPECT().GetByID(42).Return(&models.BusinessUnit{ID: 42}, nil)
	suite.mockRedirects.EXPECT().Upsert(gomock.Any()).Return(true, nil).Times(2)
	suite.mockRedirects.EXPECT().ExpireMissing(42, gomock.Any(), gomock.Any()).Return(int64(0), nil)
	suite.mockRecords.EXPECT().Create(gomock.Any()).Return(nil)

	summary, err := svc.ImportFeed(suite.ctx, 42, strings.NewReader(importFeed))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, summary.Record.Added)
}

func (suite *ImportServiceTestSuite) TestImportFeed_BadDocumentIsAudited() {
	suite.mockUnits.EXPECT().GetByID(42).Return(&models.BusinessUnit{ID: 42}, nil)
	suite.mockRecords.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.ImportRecord) error {
		assert.Equal(suite.T(), models.ImportStatusFailed, r.Status)
		assert.NotEmpty(suite.T(), r.Message)
		return nil
	})

	_, err := suite.svc.ImportFeed(suite.ctx, 42, strings.NewReader("<rss></rss>"))

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidFeed)
}

func (suite *ImportServiceTestSuite) TestImportFeed_UnknownBusinessUnit() {
	suite.mockUnits.EXPECT().GetByID(99).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.ImportFeed(suite.ctx, 99, strings.NewReader(importFeed))

	assert.ErrorIs(suite.T(), err, apperrors.ErrBusinessUnitNotFound)
}

func (suite *ImportServiceTestSuite) TestListImports_ClampsLimit() {
	suite.mockRecords.EXPECT().ListByBUID(42, 20).Return([]models.ImportRecord{{BUID: 42}}, nil)

	records, err := suite.svc.ListImports(42, 1000)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), records, 1)
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}

func TestImportFeed_KeepsPostedJobRedirects(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "import.db"))
	require.NoError(t, err)
	redirects := repository.NewRedirectRepository(db, nil)
	records := repository.NewImportRecordRepository(db)
	svc := service.NewImportService(repository.NewBusinessUnitRepository(db), redirects, records, nil)
	require.NoError(t, db.Create(&models.BusinessUnit{ID: 42, Title: "Acme"}).Error)

	posted := strings.Repeat("D", 32)
	require.NoError(t, db.Create(&models.PostedJob{
		CompanyID: uuid.New(), Title: "Posted", GUID: posted, BUID: 42, DateExpired: time.Now().AddDate(0, 1, 0),
	}).Error)
	_, err = redirects.Upsert(&models.Redirect{GUID: posted, BUID: 42, URL: "https://my.jobs/posted"})
	require.NoError(t, err)
	stale := strings.Repeat("B", 32)
	_, err = redirects.Upsert(&models.Redirect{GUID: stale, BUID: 42, URL: "https://ats.example.com/old"})
	require.NoError(t, err)

	feedXML := `<jobs company="Acme Corp"><job><guid>` + strings.Repeat("A", 32) +
		`</guid><title>Welder</title><url>https://ats.example.com/jobs/1</url></job></jobs>`
	summary, err := svc.ImportFeed(context.Background(), 42, strings.NewReader(feedXML))

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Record.Added)
	assert.Equal(t, 1, summary.Record.Expired)

	got, err := redirects.Get(posted)
	require.NoError(t, err)
	assert.False(t, got.IsExpired())
	got, err = redirects.Get(stale)
	require.NoError(t, err)
	assert.True(t, got.IsExpired())

	audits, err := svc.ListImports(42, 5)
	require.NoError(t, err)
	assert.Len(t, audits, 1)
}
