package service_test

import (
	"errors"
	"testing"

	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/mocks"
	"myjobs/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type CompanyServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *mocks.MockCompanyRepositoryInterface
	mockUsers *mocks.MockUserRepositoryInterface
	mockUnits *mocks.MockBusinessUnitRepositoryInterface
	svc       *service.CompanyService
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockUnits = mocks.NewMockBusinessUnitRepositoryInterface(suite.ctrl)
	suite.svc = service.NewCompanyService(suite.mockRepo, suite.mockUsers, suite.mockUnits, validator.New())
}

func (suite *CompanyServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_DerivesSlug() {
	suite.mockRepo.EXPECT().GetBySlug("acme-staffing-inc").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	company, err := suite.svc.CreateCompany(&service.CreateCompanyRequest{Name: "Acme Staffing, Inc.", PRMAccess: true})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "acme-staffing-inc", company.Slug)
	assert.True(suite.T(), company.PRMAccess)
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_SlugTaken() {
	suite.mockRepo.EXPECT().GetBySlug("acme").Return(&models.Company{Slug: "acme"}, nil)

	_, err := suite.svc.CreateCompany(&service.CreateCompanyRequest{Name: "Other", Slug: "ACME"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyExists)
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_NoUsableSlug() {
	_, err := suite.svc.CreateCompany(&service.CreateCompanyRequest{Name: "!!!"})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_ValidationError() {
	_, err := suite.svc.CreateCompany(&service.CreateCompanyRequest{})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *CompanyServiceTestSuite) TestGetCompany_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.GetCompany(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyNotFound)
}

func (suite *CompanyServiceTestSuite) TestUpdateCompany_OnlyTouchesGivenFields() {
	id := uuid.New()
	company := &models.Company{Name: "Acme", PostingAccess: true, ReportsAccess: true}
	suite.mockRepo.EXPECT().GetByID(id).Return(company, nil)
	suite.mockRepo.EXPECT().Update(company).Return(nil)
	off := false
	name := "Acme Corp"

	updated, err := suite.svc.UpdateCompany(id, &service.UpdateCompanyRequest{Name: &name, PostingAccess: &off})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Corp", updated.Name)
	assert.False(suite.T(), updated.PostingAccess)
	assert.True(suite.T(), updated.ReportsAccess)
}

func (suite *CompanyServiceTestSuite) TestDeleteCompany_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().Delete(id).Return(gorm.ErrRecordNotFound)

	err := suite.svc.DeleteCompany(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyNotFound)
}

func (suite *CompanyServiceTestSuite) TestListCompanies() {
	suite.mockRepo.EXPECT().GetAll(20, 0).Return([]models.Company{{Name: "Acme"}}, int64(1), nil)

	resp, err := suite.svc.ListCompanies(1, 500)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 20, resp.PageSize)
	assert.Len(suite.T(), resp.Companies, 1)
}

func (suite *CompanyServiceTestSuite) TestAddCompanyUser_DefaultsToMember() {
	companyID := uuid.New()
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "jane@example.com"}
	suite.mockUsers.EXPECT().GetByEmail("jane@example.com").Return(user, nil)
	suite.mockRepo.EXPECT().GetMembership(companyID, user.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().AddUser(gomock.Any()).DoAndReturn(func(cu *models.CompanyUser) error {
		assert.Equal(suite.T(), models.CompanyRoleMember, cu.Role)
		return nil
	})

	resp, err := suite.svc.AddCompanyUser(companyID, &service.AddCompanyUserRequest{Email: "jane@example.com"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID, resp.UserID)
}

func (suite *CompanyServiceTestSuite) TestAddCompanyUser_AlreadyMember() {
	companyID := uuid.New()
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}
	suite.mockUsers.EXPECT().GetByEmail("jane@example.com").Return(user, nil)
	suite.mockRepo.EXPECT().GetMembership(companyID, user.ID).Return(&models.CompanyUser{}, nil)

	_, err := suite.svc.AddCompanyUser(companyID, &service.AddCompanyUserRequest{Email: "jane@example.com", Role: models.CompanyRoleAdmin})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyUserExists)
}

func (suite *CompanyServiceTestSuite) TestAddCompanyUser_UnknownUser() {
	suite.mockUsers.EXPECT().GetByEmail("ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.AddCompanyUser(uuid.New(), &service.AddCompanyUserRequest{Email: "ghost@example.com"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *CompanyServiceTestSuite) TestListCompanyUsers() {
	companyID := uuid.New()
	suite.mockRepo.EXPECT().ListUsers(companyID).Return([]models.CompanyUser{
		{UserID: uuid.New(), Role: models.CompanyRoleAdmin, User: &models.User{Email: "boss@example.com"}},
		{UserID: uuid.New(), Role: models.CompanyRoleMember},
	}, nil)

	users, err := suite.svc.ListCompanyUsers(companyID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), users, 2)
	assert.Equal(suite.T(), "boss@example.com", users[0].Email)
	assert.Empty(suite.T(), users[1].Email)
}

func (suite *CompanyServiceTestSuite) TestRemoveCompanyUser_NotFound() {
	companyID, userID := uuid.New(), uuid.New()
	suite.mockRepo.EXPECT().RemoveUser(companyID, userID).Return(gorm.ErrRecordNotFound)

	err := suite.svc.RemoveCompanyUser(companyID, userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyUserNotFound)
}

func (suite *CompanyServiceTestSuite) TestCreateBusinessUnit_Exists() {
	suite.mockUnits.EXPECT().GetByID(42).Return(&models.BusinessUnit{ID: 42}, nil)

	_, err := suite.svc.CreateBusinessUnit(&service.CreateBusinessUnitRequest{ID: 42})

	assert.ErrorIs(suite.T(), err, apperrors.ErrBusinessUnitExists)
}

func (suite *CompanyServiceTestSuite) TestCreateBusinessUnit_UnknownCompany() {
	companyID := uuid.New()
	suite.mockUnits.EXPECT().GetByID(42).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().GetByID(companyID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.CreateBusinessUnit(&service.CreateBusinessUnitRequest{ID: 42, CompanyID: &companyID})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyNotFound)
}

func (suite *CompanyServiceTestSuite) TestCreateBusinessUnit_Success() {
	suite.mockUnits.EXPECT().GetByID(42).Return(nil, gorm.ErrRecordNotFound)
	suite.mockUnits.EXPECT().Create(gomock.Any()).Return(nil)

	bu, err := suite.svc.CreateBusinessUnit(&service.CreateBusinessUnitRequest{ID: 42, Title: "Acme Careers"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 42, bu.ID)
	assert.Nil(suite.T(), bu.CompanyID)
}

func (suite *CompanyServiceTestSuite) TestAssignBusinessUnit_Detach() {
	suite.mockUnits.EXPECT().GetByID(42).Return(&models.BusinessUnit{ID: 42}, nil)
	suite.mockUnits.EXPECT().AssignToCompany(42, (*uuid.UUID)(nil)).Return(nil)

	err := suite.svc.AssignBusinessUnit(42, nil)

	assert.NoError(suite.T(), err)
}

func (suite *CompanyServiceTestSuite) TestAssignBusinessUnit_Error() {
	companyID := uuid.New()
	suite.mockUnits.EXPECT().GetByID(42).Return(&models.BusinessUnit{ID: 42}, nil)
	suite.mockRepo.EXPECT().GetByID(companyID).Return(&models.Company{}, nil)
	suite.mockUnits.EXPECT().AssignToCompany(42, &companyID).Return(errors.New("db down"))

	err := suite.svc.AssignBusinessUnit(42, &companyID)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to assign business unit")
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "acme-staffing", service.Slugify("  Acme   Staffing!! "))
	assert.Equal(t, "", service.Slugify("---"))
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
