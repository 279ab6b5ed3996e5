package service_test

import (
	"errors"
	"testing"
	"time"

	"myjobs/internal/auth"
	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/mocks"
	"myjobs/internal/repository"
	"myjobs/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type PRMServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockTags     *mocks.MockTagRepositoryInterface
	mockPartners *mocks.MockPartnerRepositoryInterface
	mockContacts *mocks.MockContactRepositoryInterface
	mockRecords  *mocks.MockContactRecordRepositoryInterface
	mockLog      *mocks.MockContactLogRepositoryInterface
	prmService   *service.PRMService

	companyID uuid.UUID
	admin     auth.Caller
	member    auth.Caller
}

func (suite *PRMServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTags = mocks.NewMockTagRepositoryInterface(suite.ctrl)
	suite.mockPartners = mocks.NewMockPartnerRepositoryInterface(suite.ctrl)
	suite.mockContacts = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.mockRecords = mocks.NewMockContactRecordRepositoryInterface(suite.ctrl)
	suite.mockLog = mocks.NewMockContactLogRepositoryInterface(suite.ctrl)
	suite.prmService = service.NewPRMService(suite.mockTags, suite.mockPartners, suite.mockContacts, suite.mockRecords, suite.mockLog, validator.New())

	suite.companyID = uuid.New()
	suite.admin = auth.Caller{UserID: uuid.New(), CompanyID: suite.companyID, Role: models.CompanyRoleAdmin}
	suite.member = auth.Caller{UserID: uuid.New(), CompanyID: suite.companyID, Role: models.CompanyRoleMember}
}

func (suite *PRMServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PRMServiceTestSuite) partner() *models.Partner {
	return &models.Partner{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		CompanyID:      suite.companyID,
		Name:           "Acme Staffing",
		ApprovalStatus: models.ApprovalApproved,
	}
}

func (suite *PRMServiceTestSuite) TestCreatePartner_AdminIsApproved() {
	var logged *models.ContactLogEntry
	suite.mockPartners.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Partner) error {
		p.ID = uuid.New()
		return nil
	})
	suite.mockLog.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.ContactLogEntry) error {
		logged = e
		return nil
	})

	partner, err := suite.prmService.CreatePartner(suite.admin, &service.PartnerRequest{Name: "  Acme Staffing "})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Staffing", partner.Name)
	assert.Equal(suite.T(), models.ApprovalApproved, partner.ApprovalStatus)
	assert.Equal(suite.T(), suite.companyID, partner.CompanyID)
	if assert.NotNil(suite.T(), logged) {
		assert.Equal(suite.T(), models.LogActionAdd, logged.Action)
		assert.Equal(suite.T(), "partner", logged.ObjectType)
		assert.Equal(suite.T(), partner.ID, *logged.PartnerID)
		assert.Equal(suite.T(), suite.admin.UserID, *logged.UserID)
	}
}

func (suite *PRMServiceTestSuite) TestCreatePartner_MemberIsPending() {
	suite.mockPartners.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockLog.EXPECT().Create(gomock.Any()).Return(nil)

	partner, err := suite.prmService.CreatePartner(suite.member, &service.PartnerRequest{Name: "Acme"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ApprovalPending, partner.ApprovalStatus)
}

func (suite *PRMServiceTestSuite) TestCreatePartner_WithTagsAndPrimaryContact() {
	partnerID := uuid.New()
	tags := []models.Tag{{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "veterans"}}

	suite.mockPartners.EXPECT().CreateWithPrimaryContact(gomock.Any(), gomock.Any()).DoAndReturn(func(p *models.Partner, c *models.Contact) error {
		p.ID = partnerID
		c.ID = uuid.New()
		c.PartnerID = p.ID
		p.PrimaryContactID = &c.ID
		return nil
	})
	suite.mockTags.EXPECT().GetOrCreate(suite.companyID, []string{"veterans"}).Return(tags, nil)
	suite.mockPartners.EXPECT().ReplaceTags(gomock.Any(), tags).Return(nil)
	suite.mockLog.EXPECT().Create(gomock.Any()).Return(nil).Times(2)

	partner, err := suite.prmService.CreatePartner(suite.admin, &service.PartnerRequest{
		Name:           "Acme",
		Tags:           []string{"veterans", "veterans"},
		PrimaryContact: &service.ContactRequest{Name: "Jane Roe", Email: "Jane@Example.com"},
	})

	assert.NoError(suite.T(), err)
	if assert.NotNil(suite.T(), partner.PrimaryContact) {
		assert.Equal(suite.T(), "jane@example.com", partner.PrimaryContact.Email)
		assert.Equal(suite.T(), partnerID, partner.PrimaryContact.PartnerID)
		assert.Equal(suite.T(), partner.PrimaryContact.ID, *partner.PrimaryContactID)
	}
}

func (suite *PRMServiceTestSuite) TestCreatePartner_ValidationError() {
	_, err := suite.prmService.CreatePartner(suite.admin, &service.PartnerRequest{URI: "not a url"})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *PRMServiceTestSuite) TestCreatePartner_InvalidPrimaryContactCreatesNothing() {
	suite.mockPartners.EXPECT().Create(gomock.Any()).Times(0)
	suite.mockPartners.EXPECT().CreateWithPrimaryContact(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.prmService.CreatePartner(suite.admin, &service.PartnerRequest{
		Name:           "Acme",
		PrimaryContact: &service.ContactRequest{Name: "Jane Roe", Email: "not-an-email"},
	})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *PRMServiceTestSuite) TestCreatePartner_PrimaryContactFailureReturnsError() {
	suite.mockPartners.EXPECT().CreateWithPrimaryContact(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := suite.prmService.CreatePartner(suite.admin, &service.PartnerRequest{
		Name:           "Acme",
		PrimaryContact: &service.ContactRequest{Name: "Jane Roe"},
	})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to create partner")
}

func (suite *PRMServiceTestSuite) TestCreatePartner_LogFailureDoesNotFail() {
	suite.mockPartners.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockLog.EXPECT().Create(gomock.Any()).Return(errors.New("db down"))

	partner, err := suite.prmService.CreatePartner(suite.admin, &service.PartnerRequest{Name: "Acme"})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), partner)
}

func (suite *PRMServiceTestSuite) TestListPartners_Filters() {
	suite.mockPartners.EXPECT().List(repository.PartnerFilter{
		CompanyID: suite.companyID,
		Query:     "acme",
		Tags:      []string{"a", "b"},
		SortBy:    "name",
		Limit:     10,
		Offset:    10,
	}).Return([]models.Partner{*suite.partner()}, int64(11), nil)

	resp, err := suite.prmService.ListPartners(suite.companyID, &service.PartnerQuery{
		Q: " acme ", Tags: []string{"a", "b", "a"}, Sort: "name", Page: 2, PageSize: 10,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(11), resp.Total)
	assert.Equal(suite.T(), 2, resp.Page)
	assert.Len(suite.T(), resp.Partners, 1)
}

func (suite *PRMServiceTestSuite) TestListPartners_InvalidSort() {
	_, err := suite.prmService.ListPartners(suite.companyID, &service.PartnerQuery{Sort: "uri"})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *PRMServiceTestSuite) TestGetPartner_NotFound() {
	id := uuid.New()
	suite.mockPartners.EXPECT().GetByID(suite.companyID, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.prmService.GetPartner(suite.companyID, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPartnerNotFound)
}

func (suite *PRMServiceTestSuite) TestUpdatePartner_RecordsChangedFields() {
	p := suite.partner()
	var logged *models.ContactLogEntry
	suite.mockPartners.EXPECT().GetByID(suite.companyID, p.ID).Return(p, nil)
	suite.mockPartners.EXPECT().Update(p).Return(nil)
	suite.mockLog.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.ContactLogEntry) error {
		logged = e
		return nil
	})

	updated, err := suite.prmService.UpdatePartner(suite.member, p.ID, &service.PartnerRequest{
		Name: "Acme Staffing", URI: "https://acme.example.com", DataSource: "referral",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "https://acme.example.com", updated.URI)
	if assert.NotNil(suite.T(), logged) {
		assert.Equal(suite.T(), models.LogActionChange, logged.Action)
		assert.Equal(suite.T(), "Changed uri, data source.", logged.ChangeMessage)
	}
}

func (suite *PRMServiceTestSuite) TestUpdatePartner_NoChanges() {
	p := suite.partner()
	var logged *models.ContactLogEntry
	suite.mockPartners.EXPECT().GetByID(suite.companyID, p.ID).Return(p, nil)
	suite.mockPartners.EXPECT().Update(p).Return(nil)
	suite.mockLog.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.ContactLogEntry) error {
		logged = e
		return nil
	})

	_, err := suite.prmService.UpdatePartner(suite.member, p.ID, &service.PartnerRequest{Name: p.Name})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "No fields changed.", logged.ChangeMessage)
}

func (suite *PRMServiceTestSuite) TestUpdatePartner_PrimaryContactFromOtherPartner() {
	p := suite.partner()
	contactID := uuid.New()
	suite.mockPartners.EXPECT().GetByID(suite.companyID, p.ID).Return(p, nil)
	suite.mockContacts.EXPECT().GetByID(p.ID, contactID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.prmService.UpdatePartner(suite.member, p.ID, &service.PartnerRequest{Name: p.Name, PrimaryContactID: &contactID})

	assert.ErrorIs(suite.T(), err, apperrors.ErrContactNotInPartner)
}

func (suite *PRMServiceTestSuite) TestUpdatePartner_ArchivedPrimaryContact() {
	p := suite.partner()
	now := time.Now()
	contact := &models.Contact{BaseModel: models.BaseModel{ID: uuid.New()}, PartnerID: p.ID, Archivable: models.Archivable{ArchivedOn: &now}}
	suite.mockPartners.EXPECT().GetByID(suite.companyID, p.ID).Return(p, nil)
	suite.mockContacts.EXPECT().GetByID(p.ID, contact.ID).Return(contact, nil)

	_, err := suite.prmService.UpdatePartner(suite.member, p.ID, &service.PartnerRequest{Name: p.Name, PrimaryContactID: &contact.ID})

	var verr *apperrors.ValidationError
	assert.True(suite.T(), errors.As(err, &verr))
}

func (suite *PRMServiceTestSuite) TestSetPartnerApproval_RequiresAdmin() {
	_, err := suite.prmService.SetPartnerApproval(suite.member, uuid.New(), models.ApprovalApproved)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotCompanyAdmin)
}

func (suite *PRMServiceTestSuite) TestSetPartnerApproval_Success() {
	p := suite.partner()
	p.ApprovalStatus = models.ApprovalPending
	suite.mockPartners.EXPECT().GetByID(suite.companyID, p.ID).Return(p, nil)
	suite.mockPartners.EXPECT().Update(p).Return(nil)
	suite.mockLog.EXPECT().Create(gomock.Any()).Return(nil)

	updated, err := suite.prmService.SetPartnerApproval(suite.admin, p.ID, models.ApprovalDenied)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ApprovalDenied, updated.ApprovalStatus)
}

func (suite *PRMServiceTestSuite) TestArchiveAndRestorePartner() {
	p := suite.partner()
	suite.mockPartners.EXPECT().GetByID(suite.companyID, p.ID).Return(p, nil).Times(2)
	suite.mockPartners.EXPECT().SetArchived(suite.companyID, p.ID, gomock.Not(gomock.Nil())).Return(nil)
	suite.mockPartners.EXPECT().SetArchived(suite.companyID, p.ID, gomock.Nil()).Return(nil)

	var actions []models.LogAction
	suite.mockLog.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.ContactLogEntry) error {
		actions = append(actions, e.Action)
		return nil
	}).Times(2)

	assert.NoError(suite.T(), suite.prmService.ArchivePartner(suite.member, p.ID))
	assert.NoError(suite.T(), suite.prmService.RestorePartner(suite.member, p.ID))
	assert.Equal(suite.T(), []models.LogAction{models.LogActionArchive, models.LogActionRestore}, actions)
}

func (suite *PRMServiceTestSuite) TestArchiveContact_ClearsPrimaryContact() {
	p := suite.partner()
	contact := &models.Contact{BaseModel: models.BaseModel{ID: uuid.New()}, PartnerID: p.ID, Name: "Jane"}
	suite.mockPartners.EXPECT().GetByID(suite.companyID, p.ID).Return(p, nil)
	suite.mockContacts.EXPECT().GetByID(p.ID, contact.ID).Return(contact, nil)
	suite.mockContacts.EXPECT().SetArchived(p.ID, contact.ID, gomock.Not(gomock.Nil())).Return(nil)
	suite.mockPartners.EXPECT().ClearPrimaryContact(p.ID, contact.ID).Return(nil)
	suite.mockLog.EXPECT().Create(gomock.Any()).Return(nil)

	err := suite.prmService.ArchiveContact(suite.member, p.ID, contact.ID)

	assert.NoError(suite.T(), err)
}

func (suite *PRMServiceTestSuite) TestGetContact_PartnerOfOtherCompany() {
	partnerID := uuid.New()
	suite.mockPartners.EXPECT().GetByID(suite.companyID, partnerID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.prmService.GetContact(suite.companyID, partnerID, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrPartnerNotFound)
}

func (suite *PRMServiceTestSuite) TestUpdateContact_TagsCleared() {
	p := suite.partner()
	contact := &models.Contact{BaseModel: models.BaseModel{ID: uuid.New()}, PartnerID: p.ID, Name: "Jane", Email: "jane@example.com"}
	var logged *models.ContactLogEntry
	suite.mockPartners.EXPECT().GetByID(suite.companyID, p.ID).Return(p, nil)
	suite.mockContacts.EXPECT().GetByID(p.ID, contact.ID).Return(contact, nil)
	suite.mockContacts.EXPECT().Update(contact).Return(nil)
	suite.mockContacts.EXPECT().ReplaceTags(contact, []models.Tag{}).Return(nil)
	suite.mockLog.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.ContactLogEntry) error {
		logged = e
		return nil
	})

	_, err := suite.prmService.UpdateContact(suite.member, p.ID, contact.ID, &service.ContactRequest{
		Name: "Jane", Email: "jane@example.com", Phone: "555-0100", Tags: []string{},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Changed phone, tags.", logged.ChangeMessage)
}

func (suite *PRMServiceTestSuite) TestCreateRecord_EmailDefaultsFromContact() {
	p := suite.partner()
	contact := &models.Contact{BaseModel: models.BaseModel{ID: uuid.New()}, PartnerID: p.ID, Email: "jane@example.com"}
	suite.mockPartners.EXPECT().GetByID(suite.companyID, p.ID).Return(p, nil)
	suite.mockContacts.EXPECT().GetByID(p.ID, contact.ID).Return(contact, nil)
	suite.mockRecords.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockLog.EXPECT().Create(gomock.Any()).Return(nil)

	record, err := suite.prmService.CreateRecord(suite.member, p.ID, &service.ContactRecordRequest{
		ContactID:     &contact.ID,
		ContactType:   models.ContactTypeEmail,
		Subject:       "Intro",
		LengthMinutes: 30,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "jane@example.com", record.ContactEmail)
	assert.Equal(suite.T(), 0, record.LengthMinutes)
	assert.False(suite.T(), record.DateTime.IsZero())
	assert.Equal(suite.T(), suite.member.UserID, *record.CreatedByID)
}

func (suite *PRMServiceTestSuite) TestCreateRecord_MeetingKeepsLength() {
	p := suite.partner()
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	suite.mockPartners.EXPECT().GetByID(suite.companyID, p.ID).Return(p, nil)
	suite.mockRecords.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockLog.EXPECT().Create(gomock.Any()).Return(nil)

	record, err := suite.prmService.CreateRecord(suite.member, p.ID, &service.ContactRecordRequest{
		ContactType:   models.ContactTypeMeetingOrEvent,
		DateTime:      &at,
		LengthMinutes: 45,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 45, record.LengthMinutes)
	assert.Equal(suite.T(), at, record.DateTime)
}

func (suite *PRMServiceTestSuite) TestCreateRecord_EmailWithoutAddress() {
	p := suite.partner()
	suite.mockPartners.EXPECT().GetByID(suite.companyID, p.ID).Return(p, nil)

	_, err := suite.prmService.CreateRecord(suite.member, p.ID, &service.ContactRecordRequest{ContactType: models.ContactTypeEmail})

	assert.ErrorIs(suite.T(), err, apperrors.ErrContactEmailRequired)
}

func (suite *PRMServiceTestSuite) TestCreateRecord_ContactNotInPartner() {
	p := suite.partner()
	contactID := uuid.New()
	suite.mockPartners.EXPECT().GetByID(suite.companyID, p.ID).Return(p, nil)
	suite.mockContacts.EXPECT().GetByID(p.ID, contactID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.prmService.CreateRecord(suite.member, p.ID, &service.ContactRecordRequest{
		ContactID: &contactID, ContactType: models.ContactTypePhone,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrContactNotInPartner)
}

func (suite *PRMServiceTestSuite) TestCreateRecord_UnknownType() {
	p := suite.partner()
	suite.mockPartners.EXPECT().GetByID(suite.companyID, p.ID).Return(p, nil)

	_, err := suite.prmService.CreateRecord(suite.member, p.ID, &service.ContactRecordRequest{ContactType: "fax"})

	var verr *apperrors.ValidationError
	assert.True(suite.T(), errors.As(err, &verr))
}

func (suite *PRMServiceTestSuite) TestListRecords_InclusiveEndDay() {
	p := suite.partner()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	suite.mockPartners.EXPECT().GetByID(suite.companyID, p.ID).Return(p, nil)
	suite.mockRecords.EXPECT().List(gomock.Any()).DoAndReturn(func(f repository.ContactRecordFilter) ([]models.ContactRecord, int64, error) {
		assert.Equal(suite.T(), from, *f.From)
		assert.Equal(suite.T(), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *f.To)
		assert.Equal(suite.T(), "phone", f.ContactType)
		return []models.ContactRecord{}, int64(0), nil
	})

	resp, err := suite.prmService.ListRecords(suite.companyID, p.ID, &service.ContactRecordQuery{
		From: &from, To: &to, ContactType: "phone",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
}

func (suite *PRMServiceTestSuite) TestArchiveRecord_NotFound() {
	p := suite.partner()
	id := uuid.New()
	suite.mockPartners.EXPECT().GetByID(suite.companyID, p.ID).Return(p, nil)
	suite.mockRecords.EXPECT().GetByID(p.ID, id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.prmService.ArchiveRecord(suite.member, p.ID, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrContactRecordNotFound)
}

func (suite *PRMServiceTestSuite) TestListLog() {
	p := suite.partner()
	entries := []models.ContactLogEntry{{Action: models.LogActionAdd, ObjectType: "partner"}}
	suite.mockPartners.EXPECT().GetByID(suite.companyID, p.ID).Return(p, nil)
	suite.mockLog.EXPECT().ListByPartner(suite.companyID, p.ID, 20, 0).Return(entries, int64(1), nil)

	resp, err := suite.prmService.ListLog(suite.companyID, p.ID, 0, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Len(suite.T(), resp.Entries, 1)
}

func (suite *PRMServiceTestSuite) TestListTags_TrimsPrefix() {
	suite.mockTags.EXPECT().List(suite.companyID, "vet").Return([]models.Tag{{Name: "veterans"}}, nil)

	tags, err := suite.prmService.ListTags(suite.companyID, " vet ")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), tags, 1)
}

func TestPRMServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PRMServiceTestSuite))
}
