package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"myjobs/internal/cache"
	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/mocks"
	"myjobs/internal/service"
	"myjobs/internal/tasks"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const testGUID = "0123456789ABCDEF0123456789ABCDEF"

type RedirectServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockPrimary       *mocks.MockRedirectRepositoryInterface
	mockArchive       *mocks.MockRedirectRepositoryInterface
	mockManipulations *mocks.MockDestinationManipulationRepositoryInterface
	mockViewSources   *mocks.MockViewSourceRepositoryInterface
	mockQueue         *mocks.MockEnqueuer
	svc               *service.RedirectService

	ctx context.Context
}

func (suite *RedirectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPrimary = mocks.NewMockRedirectRepositoryInterface(suite.ctrl)
	suite.mockArchive = mocks.NewMockRedirectRepositoryInterface(suite.ctrl)
	suite.mockManipulations = mocks.NewMockDestinationManipulationRepositoryInterface(suite.ctrl)
	suite.mockViewSources = mocks.NewMockViewSourceRepositoryInterface(suite.ctrl)
	suite.mockQueue = mocks.NewMockEnqueuer(suite.ctrl)
	suite.svc = suite.newService(nil)
	suite.ctx = context.Background()
}

func (suite *RedirectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RedirectServiceTestSuite) newService(c cache.Cache) *service.RedirectService {
	return service.NewRedirectService(
		suite.mockPrimary, suite.mockArchive, suite.mockManipulations, suite.mockViewSources,
		c, time.Minute, suite.mockQueue, "https://my.jobs/", validator.New(),
	)
}

func (suite *RedirectServiceTestSuite) activeRedirect() *models.Redirect {
	return &models.Redirect{
		GUID:    testGUID,
		BUID:    42,
		URL:     "https://careers.example.com/job/1",
		Title:   "Welder",
		NewDate: time.Now(),
	}
}

func (suite *RedirectServiceTestSuite) TestResolve_AppliesManipulationsAndRecordsClick() {
	suite.mockPrimary.EXPECT().Get(testGUID).Return(suite.activeRedirect(), nil)
	suite.mockManipulations.EXPECT().ListFor(42, 20).Return([]models.DestinationManipulation{
		{ID: 1, BUID: 42, ViewSource: 20, ActionType: 1, Action: "sourcecodetag", Value1: "src=myjobs"},
	}, nil)
	suite.mockQueue.EXPECT().Enqueue(suite.ctx, tasks.RecordClick, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, payload interface{}) error {
			click := payload.(tasks.RecordClickPayload)
			assert.Equal(suite.T(), testGUID, click.GUID)
			assert.Equal(suite.T(), 20, click.ViewSource)
			assert.Equal(suite.T(), "https://example.org/", click.Referrer)
			assert.Equal(suite.T(), "https://careers.example.com/job/1?src=myjobs", click.URL)
			return nil
		})

	res, expired, err := suite.svc.Resolve(suite.ctx, service.ResolveRequest{
		Path:     "/" + "0123456789abcdef0123456789abcdef" + "20",
		Referrer: "https://example.org/",
	})

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), expired)
	assert.Equal(suite.T(), "https://careers.example.com/job/1?src=myjobs", res.Destination)
	assert.Equal(suite.T(), "https://careers.example.com/job/1", res.Original)
	assert.Empty(suite.T(), res.Steps)
}

func (suite *RedirectServiceTestSuite) TestResolve_QueryViewSourceWins() {
	suite.mockPrimary.EXPECT().Get(testGUID).Return(suite.activeRedirect(), nil)
	suite.mockManipulations.EXPECT().ListFor(42, 5).Return(nil, nil)
	suite.mockQueue.EXPECT().Enqueue(gomock.Any(), tasks.RecordClick, gomock.Any()).Return(nil)

	res, _, err := suite.svc.Resolve(suite.ctx, service.ResolveRequest{Path: testGUID + "20", VS: "5"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, res.ViewSource)
}

func (suite *RedirectServiceTestSuite) TestResolve_DebugSkipsClick() {
	suite.mockPrimary.EXPECT().Get(testGUID).Return(suite.activeRedirect(), nil)
	suite.mockManipulations.EXPECT().ListFor(42, 0).Return([]models.DestinationManipulation{
		{ID: 1, ActionType: 1, Action: "sourcecodetag", Value1: "a=1"},
		{ID: 2, ActionType: 1, Action: "teleport"},
	}, nil)

	res, _, err := suite.svc.Resolve(suite.ctx, service.ResolveRequest{Path: testGUID + "+"})

	require.NoError(suite.T(), err)
	assert.True(suite.T(), res.Debug)
	require.Len(suite.T(), res.Steps, 2)
	assert.True(suite.T(), res.Steps[1].Skipped)
	assert.Equal(suite.T(), "https://careers.example.com/job/1?a=1", res.Destination)
}

func (suite *RedirectServiceTestSuite) TestResolve_FallsBackToArchive() {
	suite.mockPrimary.EXPECT().Get(testGUID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockArchive.EXPECT().Get(testGUID).Return(suite.activeRedirect(), nil)
	suite.mockManipulations.EXPECT().ListFor(42, 0).Return(nil, nil)
	suite.mockQueue.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, _, err := suite.svc.Resolve(suite.ctx, service.ResolveRequest{Path: testGUID})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), testGUID, res.GUID)
}

func (suite *RedirectServiceTestSuite) TestResolve_NotFoundAnywhere() {
	suite.mockPrimary.EXPECT().Get(testGUID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockArchive.EXPECT().Get(testGUID).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := suite.svc.Resolve(suite.ctx, service.ResolveRequest{Path: testGUID})

	assert.ErrorIs(suite.T(), err, apperrors.ErrRedirectNotFound)
}

func (suite *RedirectServiceTestSuite) TestResolve_InvalidGUID() {
	_, _, err := suite.svc.Resolve(suite.ctx, service.ResolveRequest{Path: "/not-a-guid"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidGUID)
}

func (suite *RedirectServiceTestSuite) TestResolve_Expired() {
	rd := suite.activeRedirect()
	gone := time.Now().Add(-time.Hour)
	rd.ExpiredDate = &gone
	rd.Title = "Night Nurse"
	rd.CompanyName = "Acme"
	suite.mockPrimary.EXPECT().Get(testGUID).Return(rd, nil)

	res, expired, err := suite.svc.Resolve(suite.ctx, service.ResolveRequest{Path: testGUID})

	assert.ErrorIs(suite.T(), err, apperrors.ErrRedirectExpired)
	assert.Nil(suite.T(), res)
	require.NotNil(suite.T(), expired)
	assert.Equal(suite.T(), "Acme", expired.CompanyName)
	assert.Equal(suite.T(), "https://my.jobs/jobs?q=Night+Nurse", expired.SearchURL)
}

func (suite *RedirectServiceTestSuite) TestResolve_EnqueueFailureStillRedirects() {
	suite.mockPrimary.EXPECT().Get(testGUID).Return(suite.activeRedirect(), nil)
	suite.mockManipulations.EXPECT().ListFor(42, 0).Return(nil, nil)
	suite.mockQueue.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	res, _, err := suite.svc.Resolve(suite.ctx, service.ResolveRequest{Path: testGUID})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "https://careers.example.com/job/1", res.Destination)
}

func (suite *RedirectServiceTestSuite) TestResolve_CachesLookups() {
	mem, err := cache.NewMemory(1 << 20)
	require.NoError(suite.T(), err)
	defer mem.Close()
	svc := suite.newService(mem)

	suite.mockPrimary.EXPECT().Get(testGUID).Return(suite.activeRedirect(), nil).Times(1)
	suite.mockManipulations.EXPECT().ListFor(42, 0).Return(nil, nil).Times(2)
	suite.mockQueue.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	for i := 0; i < 2; i++ {
		res, _, err := svc.Resolve(suite.ctx, service.ResolveRequest{Path: testGUID})
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 42, res.BUID)
	}
}

func (suite *RedirectServiceTestSuite) TestCreateManipulation_Success() {
	suite.mockManipulations.EXPECT().FindByKey(42, 0, 1, "sourcecodetag").Return(nil, gorm.ErrRecordNotFound)
	suite.mockManipulations.EXPECT().Create(gomock.Any()).Return(nil)

	m, err := suite.svc.CreateManipulation(&service.ManipulationRequest{
		BUID: 42, ActionType: 1, Action: " SourceCodeTag ", Value1: "src=1",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "sourcecodetag", m.Action)
}

func (suite *RedirectServiceTestSuite) TestCreateManipulation_Duplicate() {
	suite.mockManipulations.EXPECT().FindByKey(42, 0, 1, "sourcecodetag").Return(&models.DestinationManipulation{ID: 3}, nil)

	_, err := suite.svc.CreateManipulation(&service.ManipulationRequest{BUID: 42, ActionType: 1, Action: "sourcecodetag"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrDestinationManipulationExists)
}

func (suite *RedirectServiceTestSuite) TestCreateManipulation_UnknownAction() {
	_, err := suite.svc.CreateManipulation(&service.ManipulationRequest{BUID: 42, ActionType: 1, Action: "teleport"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnknownAction)
}

func (suite *RedirectServiceTestSuite) TestCreateManipulation_ValidationError() {
	_, err := suite.svc.CreateManipulation(&service.ManipulationRequest{BUID: 42, ActionType: 3, Action: "sourcecodetag"})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *RedirectServiceTestSuite) TestUpdateManipulation_ConflictWithOther() {
	suite.mockManipulations.EXPECT().GetByID(uint(1)).Return(&models.DestinationManipulation{ID: 1}, nil)
	suite.mockManipulations.EXPECT().FindByKey(42, 0, 2, "urlswap").Return(&models.DestinationManipulation{ID: 2}, nil)

	_, err := suite.svc.UpdateManipulation(1, &service.ManipulationRequest{BUID: 42, ActionType: 2, Action: "urlswap"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrDestinationManipulationExists)
}

func (suite *RedirectServiceTestSuite) TestUpdateManipulation_SameRecord() {
	suite.mockManipulations.EXPECT().GetByID(uint(1)).Return(&models.DestinationManipulation{ID: 1}, nil)
	suite.mockManipulations.EXPECT().FindByKey(42, 0, 2, "urlswap").Return(&models.DestinationManipulation{ID: 1}, nil)
	suite.mockManipulations.EXPECT().Update(gomock.Any()).Return(nil)

	m, err := suite.svc.UpdateManipulation(1, &service.ManipulationRequest{BUID: 42, ActionType: 2, Action: "urlswap", Value1: "https://x"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "https://x", m.Value1)
}

func (suite *RedirectServiceTestSuite) TestDeleteManipulation_NotFound() {
	suite.mockManipulations.EXPECT().Delete(uint(9)).Return(gorm.ErrRecordNotFound)

	err := suite.svc.DeleteManipulation(9)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDestinationManipulationNotFound)
}

func (suite *RedirectServiceTestSuite) TestListManipulations() {
	suite.mockManipulations.EXPECT().List(42, 20, 0).Return([]models.DestinationManipulation{{ID: 1}}, int64(1), nil)

	resp, err := suite.svc.ListManipulations(42, 0, 0)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Total)
}

func (suite *RedirectServiceTestSuite) TestCreateViewSource_Exists() {
	suite.mockViewSources.EXPECT().GetByID(20).Return(&models.ViewSource{ID: 20}, nil)

	_, err := suite.svc.CreateViewSource(&service.ViewSourceRequest{ID: 20, Name: "Indeed"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrViewSourceExists)
}

func (suite *RedirectServiceTestSuite) TestCreateViewSource_Success() {
	suite.mockViewSources.EXPECT().GetByID(21).Return(nil, gorm.ErrRecordNotFound)
	suite.mockViewSources.EXPECT().Create(gomock.Any()).Return(nil)

	vs, err := suite.svc.CreateViewSource(&service.ViewSourceRequest{ID: 21, Name: "LinkedIn", FriendlyName: "LinkedIn Jobs"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 21, vs.ID)
}

func (suite *RedirectServiceTestSuite) TestKnownActions() {
	assert.Contains(suite.T(), suite.svc.KnownActions(), "sourcecodetag")
}

func TestRedirectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RedirectServiceTestSuite))
}
