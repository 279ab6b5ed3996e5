package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/mocks"
	"myjobs/internal/service"
	"myjobs/internal/tasks"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type EmailServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockTemplates *mocks.MockEmailTemplateRepositoryInterface
	mockLogs      *mocks.MockEmailLogRepositoryInterface
	mockCompanies *mocks.MockCompanyRepositoryInterface
	mockPurchases *mocks.MockPurchaseRepositoryInterface
	mockQueue     *mocks.MockEnqueuer
	svc           *service.EmailService

	ctx       context.Context
	companyID uuid.UUID
}

func (suite *EmailServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTemplates = mocks.NewMockEmailTemplateRepositoryInterface(suite.ctrl)
	suite.mockLogs = mocks.NewMockEmailLogRepositoryInterface(suite.ctrl)
	suite.mockCompanies = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.mockPurchases = mocks.NewMockPurchaseRepositoryInterface(suite.ctrl)
	suite.mockQueue = mocks.NewMockEnqueuer(suite.ctrl)
	suite.svc = service.NewEmailService(suite.mockTemplates, suite.mockLogs, suite.mockCompanies, suite.mockPurchases, suite.mockQueue, validator.New())
	suite.ctx = context.Background()
	suite.companyID = uuid.New()
}

func (suite *EmailServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EmailServiceTestSuite) TestCreateTemplate_Success() {
	suite.mockTemplates.EXPECT().Create(gomock.Any()).Return(nil)

	tpl, err := suite.svc.CreateTemplate(&suite.companyID, &service.EmailTemplateRequest{
		Name:    " Posted ",
		Event:   models.EmailEventJobPosted,
		Subject: "{{.Title}} is live",
		Body:    `<a href="{{.URL}}">{{.Title}}</a>`,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Posted", tpl.Name)
	assert.Equal(suite.T(), suite.companyID, *tpl.CompanyID)
}

func (suite *EmailServiceTestSuite) TestCreateTemplate_UnknownField() {
	_, err := suite.svc.CreateTemplate(&suite.companyID, &service.EmailTemplateRequest{
		Name:    "Broken",
		Event:   models.EmailEventJobPosted,
		Subject: "{{.NoSuchField}}",
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *EmailServiceTestSuite) TestCreateTemplate_UnknownEvent() {
	_, err := suite.svc.CreateTemplate(nil, &service.EmailTemplateRequest{Name: "x", Event: "birthday", Subject: "hi"})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *EmailServiceTestSuite) TestGetTemplate_GlobalIsReadable() {
	id := uuid.New()
	suite.mockTemplates.EXPECT().GetByID(id).Return(&models.EmailTemplate{BaseModel: models.BaseModel{ID: id}}, nil)

	tpl, err := suite.svc.GetTemplate(suite.companyID, id)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), tpl.CompanyID)
}

func (suite *EmailServiceTestSuite) TestGetTemplate_OtherCompany() {
	id := uuid.New()
	other := uuid.New()
	suite.mockTemplates.EXPECT().GetByID(id).Return(&models.EmailTemplate{CompanyID: &other}, nil)

	_, err := suite.svc.GetTemplate(suite.companyID, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailTemplateNotFound)
}

func (suite *EmailServiceTestSuite) TestUpdateTemplate_CannotTouchGlobal() {
	id := uuid.New()
	suite.mockTemplates.EXPECT().GetByID(id).Return(&models.EmailTemplate{BaseModel: models.BaseModel{ID: id}}, nil)

	_, err := suite.svc.UpdateTemplate(&suite.companyID, id, &service.EmailTemplateRequest{
		Name: "x", Event: models.EmailEventJobPosted, Subject: "hi",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailTemplateNotFound)
}

func (suite *EmailServiceTestSuite) TestDeleteTemplate_GlobalByStaff() {
	id := uuid.New()
	suite.mockTemplates.EXPECT().GetByID(id).Return(&models.EmailTemplate{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.mockTemplates.EXPECT().Delete(id).Return(nil)

	err := suite.svc.DeleteTemplate(nil, id)

	assert.NoError(suite.T(), err)
}

func (suite *EmailServiceTestSuite) TestResolveTemplate_FallsBackToDefault() {
	suite.mockTemplates.EXPECT().FindForEvent(&suite.companyID, models.EmailEventPurchaseExpiring).Return(nil, gorm.ErrRecordNotFound)

	tpl, err := suite.svc.ResolveTemplate(&suite.companyID, models.EmailEventPurchaseExpiring)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, tpl.DaysBefore)
	assert.Nil(suite.T(), tpl.CompanyID)
}

func (suite *EmailServiceTestSuite) TestResolveTemplate_DatabaseError() {
	suite.mockTemplates.EXPECT().FindForEvent(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := suite.svc.ResolveTemplate(&suite.companyID, models.EmailEventJobPosted)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to find email template")
}

func (suite *EmailServiceTestSuite) TestRenderEvent_CompanyTemplate() {
	suite.mockTemplates.EXPECT().FindForEvent(&suite.companyID, models.EmailEventJobPosted).Return(&models.EmailTemplate{
		Subject: "Live: {{.Title}}",
		Body:    "<b>{{.Title}}</b>",
	}, nil)

	subject, html, err := suite.svc.RenderEvent(&suite.companyID, models.EmailEventJobPosted, struct{ Title string }{"<Welder>"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Live: <Welder>", subject)
	assert.Equal(suite.T(), "<b>&lt;Welder&gt;</b>", html)
}

func (suite *EmailServiceTestSuite) TestListEmailLogs_NormalizesRecipient() {
	suite.mockLogs.EXPECT().List("jane@example.com", 20, 0).Return([]models.EmailLog{{To: "jane@example.com"}}, int64(1), nil)

	resp, err := suite.svc.ListEmailLogs(" Jane@Example.com ", 0, 0)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Logs, 1)
}

func (suite *EmailServiceTestSuite) TestSendPurchaseExpiryNotices_MatchingDay() {
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	purchase := models.Purchase{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		CompanyID:      suite.companyID,
		ExpirationDate: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		JobsRemaining:  2,
		Product:        &models.Product{Name: "Job pack"},
	}
	companyTpl := &models.EmailTemplate{
		CompanyID:  &suite.companyID,
		Event:      models.EmailEventPurchaseExpiring,
		Subject:    "{{.ProductName}} expires soon",
		Body:       "{{.JobsRemaining}} left",
		DaysBefore: 3,
	}

	suite.mockTemplates.EXPECT().DaysBeforeFor(models.EmailEventPurchaseExpiring).Return([]int{3, 7}, nil)
	suite.mockPurchases.EXPECT().ExpiringOn(time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)).Return([]models.Purchase{purchase}, nil)
	suite.mockPurchases.EXPECT().ExpiringOn(time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)).Return(nil, nil)
	suite.mockTemplates.EXPECT().FindForEvent(&suite.companyID, models.EmailEventPurchaseExpiring).Return(companyTpl, nil)
	suite.mockCompanies.EXPECT().GetByID(suite.companyID).Return(&models.Company{Name: "Acme"}, nil)
	suite.mockCompanies.EXPECT().ListUsers(suite.companyID).Return([]models.CompanyUser{
		{Role: models.CompanyRoleAdmin, User: &models.User{Email: "boss@example.com"}},
		{Role: models.CompanyRoleMember, User: &models.User{Email: "staff@example.com"}},
	}, nil)
	suite.mockQueue.EXPECT().Enqueue(suite.ctx, tasks.SendEmail, tasks.SendEmailPayload{
		To:      "boss@example.com",
		Subject: "Job pack expires soon",
		HTML:    "2 left",
		Event:   string(models.EmailEventPurchaseExpiring),
	}).Return(nil)

	sent, err := suite.svc.SendPurchaseExpiryNotices(suite.ctx, now)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, sent)
}

func (suite *EmailServiceTestSuite) TestSendPurchaseExpiryNotices_TemplateForOtherDay() {
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	purchase := models.Purchase{BaseModel: models.BaseModel{ID: uuid.New()}, CompanyID: suite.companyID}

	suite.mockTemplates.EXPECT().DaysBeforeFor(models.EmailEventPurchaseExpiring).Return([]int{}, nil)
	suite.mockPurchases.EXPECT().ExpiringOn(time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)).Return([]models.Purchase{purchase}, nil)
	suite.mockTemplates.EXPECT().FindForEvent(&suite.companyID, models.EmailEventPurchaseExpiring).Return(&models.EmailTemplate{DaysBefore: 3}, nil)

	sent, err := suite.svc.SendPurchaseExpiryNotices(suite.ctx, now)

	assert.NoError(suite.T(), err)
	assert.Zero(suite.T(), sent)
}

func (suite *EmailServiceTestSuite) TestSendPurchaseExpiryNotices_ListError() {
	suite.mockTemplates.EXPECT().DaysBeforeFor(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := suite.svc.SendPurchaseExpiryNotices(suite.ctx, time.Now())

	assert.Error(suite.T(), err)
}

func TestEmailServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmailServiceTestSuite))
}
