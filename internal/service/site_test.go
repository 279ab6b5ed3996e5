package service_test

import (
	"context"
	"testing"
	"time"

	"myjobs/internal/cache"
	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/mocks"
	"myjobs/internal/search"
	"myjobs/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type SiteServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *mocks.MockSiteRepositoryInterface
	mockUnits *mocks.MockBusinessUnitRepositoryInterface
	mockIndex *mocks.MockIndex
	mem       *cache.Memory
	svc       *service.SiteService

	ctx       context.Context
	companyID uuid.UUID
}

func (suite *SiteServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockSiteRepositoryInterface(suite.ctrl)
	suite.mockUnits = mocks.NewMockBusinessUnitRepositoryInterface(suite.ctrl)
	suite.mockIndex = mocks.NewMockIndex(suite.ctrl)
	mem, err := cache.NewMemory(1 << 20)
	require.NoError(suite.T(), err)
	suite.mem = mem
	suite.svc = service.NewSiteService(suite.mockRepo, suite.mockUnits, mem, time.Minute, suite.mockIndex, validator.New())
	suite.ctx = context.Background()
	suite.companyID = uuid.New()
}

func (suite *SiteServiceTestSuite) TearDownTest() {
	suite.mem.Close()
	suite.ctrl.Finish()
}

func (suite *SiteServiceTestSuite) site(buids ...int) *models.SeoSite {
	site := &models.SeoSite{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Domain:    "careers.acme.com",
		Name:      "Acme Careers",
		CompanyID: suite.companyID,
	}
	for _, id := range buids {
		site.BusinessUnits = append(site.BusinessUnits, models.BusinessUnit{ID: id})
	}
	return site
}

func (suite *SiteServiceTestSuite) TestCreateSite_Success() {
	suite.mockRepo.EXPECT().GetByDomain("careers.acme.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUnits.EXPECT().IDsForCompany(suite.companyID).Return([]int{42, 43}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockRepo.EXPECT().SetBusinessUnits(gomock.Any(), []int{42}).Return(nil)

	site, err := suite.svc.CreateSite(suite.ctx, suite.companyID, &service.SiteRequest{
		Domain: "Careers.Acme.com", Name: "Acme Careers", BusinessUnits: []int{42},
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "careers.acme.com", site.Domain)
	assert.Equal(suite.T(), suite.companyID, site.CompanyID)
}

func (suite *SiteServiceTestSuite) TestCreateSite_DomainTaken() {
	suite.mockRepo.EXPECT().GetByDomain("careers.acme.com").Return(suite.site(), nil)

	_, err := suite.svc.CreateSite(suite.ctx, suite.companyID, &service.SiteRequest{Domain: "careers.acme.com", Name: "Acme"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSiteExists)
}

func (suite *SiteServiceTestSuite) TestCreateSite_ForeignBusinessUnit() {
	suite.mockRepo.EXPECT().GetByDomain("careers.acme.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUnits.EXPECT().IDsForCompany(suite.companyID).Return([]int{42}, nil)

	_, err := suite.svc.CreateSite(suite.ctx, suite.companyID, &service.SiteRequest{
		Domain: "careers.acme.com", Name: "Acme", BusinessUnits: []int{99},
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *SiteServiceTestSuite) TestCreateSite_BadDomain() {
	_, err := suite.svc.CreateSite(suite.ctx, suite.companyID, &service.SiteRequest{Domain: "not a host", Name: "Acme"})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *SiteServiceTestSuite) TestGetSite_OtherCompany() {
	site := suite.site()
	site.CompanyID = uuid.New()
	suite.mockRepo.EXPECT().GetByID(site.ID).Return(site, nil)

	_, err := suite.svc.GetSite(suite.companyID, site.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSiteNotFound)
}

func (suite *SiteServiceTestSuite) TestGetSiteByDomain_CachesAndNormalizesHost() {
	suite.mockRepo.EXPECT().GetByDomain("careers.acme.com").Return(suite.site(42), nil).Times(1)

	first, err := suite.svc.GetSiteByDomain(suite.ctx, "Careers.Acme.com:8080")
	require.NoError(suite.T(), err)
	second, err := suite.svc.GetSiteByDomain(suite.ctx, "careers.acme.com")
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), first.ID, second.ID)
	assert.Equal(suite.T(), []int{42}, second.BUIDs())
}

func (suite *SiteServiceTestSuite) TestGetSiteByDomain_NotFound() {
	suite.mockRepo.EXPECT().GetByDomain("nowhere.example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.GetSiteByDomain(suite.ctx, "nowhere.example.com")

	assert.ErrorIs(suite.T(), err, apperrors.ErrSiteNotFound)
}

func (suite *SiteServiceTestSuite) TestUpdateSite_InvalidatesCache() {
	site := suite.site(42)
	gomock.InOrder(
		suite.mockRepo.EXPECT().GetByDomain("careers.acme.com").Return(site, nil),
		suite.mockRepo.EXPECT().GetByDomain("careers.acme.com").Return(site, nil),
	)
	suite.mockRepo.EXPECT().GetByID(site.ID).Return(site, nil)
	suite.mockRepo.EXPECT().Update(site).Return(nil)
	suite.mockRepo.EXPECT().SetBusinessUnits(site, []int(nil)).Return(nil)

	_, err := suite.svc.GetSiteByDomain(suite.ctx, "careers.acme.com")
	require.NoError(suite.T(), err)

	_, err = suite.svc.UpdateSite(suite.ctx, suite.companyID, site.ID, &service.SiteRequest{
		Domain: "careers.acme.com", Name: "Acme Jobs", PostajobEnabled: true,
	})
	require.NoError(suite.T(), err)

	again, err := suite.svc.GetSiteByDomain(suite.ctx, "careers.acme.com")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Jobs", again.Name)
}

func (suite *SiteServiceTestSuite) TestDeleteSite() {
	site := suite.site()
	suite.mockRepo.EXPECT().GetByID(site.ID).Return(site, nil)
	suite.mockRepo.EXPECT().Delete(site.ID).Return(nil)

	err := suite.svc.DeleteSite(suite.ctx, suite.companyID, site.ID)

	assert.NoError(suite.T(), err)
}

func (suite *SiteServiceTestSuite) TestSearchJobs_ScopedToSite() {
	suite.mockRepo.EXPECT().GetByDomain("careers.acme.com").Return(suite.site(42, 43), nil)
	suite.mockIndex.EXPECT().Search(suite.ctx, search.Query{
		Q: "welder", Location: "Indianapolis", BUIDs: []int{42, 43}, SortByDate: true, Page: 2, PerPage: 10,
	}).Return(&search.Results{Total: 11, Page: 2, Hits: []search.JobDocument{{GUID: testGUID}}}, nil)

	res, err := suite.svc.SearchJobs(suite.ctx, "careers.acme.com", &service.JobSearchRequest{
		Q: "welder", Location: "Indianapolis", Sort: "date", Page: 2, PerPage: 10,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 11, res.Total)
}

func (suite *SiteServiceTestSuite) TestSearchJobs_SiteWithoutUnits() {
	suite.mockRepo.EXPECT().GetByDomain("careers.acme.com").Return(suite.site(), nil)

	res, err := suite.svc.SearchJobs(suite.ctx, "careers.acme.com", &service.JobSearchRequest{Q: "welder"})

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), res.Hits)
}

func (suite *SiteServiceTestSuite) TestSearchJobs_BadSort() {
	_, err := suite.svc.SearchJobs(suite.ctx, "careers.acme.com", &service.JobSearchRequest{Sort: "salary"})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *SiteServiceTestSuite) TestSearchJobs_NotConfigured() {
	svc := service.NewSiteService(suite.mockRepo, suite.mockUnits, nil, time.Minute, nil, validator.New())

	_, err := svc.SearchJobs(suite.ctx, "careers.acme.com", &service.JobSearchRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSearchNotConfigured)
}

func (suite *SiteServiceTestSuite) TestGetJob_OtherBusinessUnit() {
	suite.mockRepo.EXPECT().GetByDomain("careers.acme.com").Return(suite.site(42), nil)
	suite.mockIndex.EXPECT().Get(suite.ctx, testGUID).Return(&search.JobDocument{GUID: testGUID, BUID: 7}, nil)

	_, err := suite.svc.GetJob(suite.ctx, "careers.acme.com", "0123456789abcdef0123456789abcdef")

	assert.ErrorIs(suite.T(), err, apperrors.ErrJobNotFound)
}

func (suite *SiteServiceTestSuite) TestGetJob_Success() {
	suite.mockRepo.EXPECT().GetByDomain("careers.acme.com").Return(suite.site(42), nil)
	suite.mockIndex.EXPECT().Get(suite.ctx, testGUID).Return(&search.JobDocument{GUID: testGUID, BUID: 42, Title: "Welder"}, nil)

	doc, err := suite.svc.GetJob(suite.ctx, "careers.acme.com", testGUID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Welder", doc.Title)
}

func TestSiteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SiteServiceTestSuite))
}
