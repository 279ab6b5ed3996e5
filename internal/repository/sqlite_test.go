package repository

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"myjobs/internal/database"
	"myjobs/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SQLiteRepositoryTestSuite runs the repositories against a migrated SQLite file,
// so column names and defaults go through a real dialect without Docker.
type SQLiteRepositoryTestSuite struct {
	suite.Suite
	db *gorm.DB
}

func (suite *SQLiteRepositoryTestSuite) SetupTest() {
	db, err := database.OpenSQLite(filepath.Join(suite.T().TempDir(), "repository.db"))
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *SQLiteRepositoryTestSuite) TearDownTest() {
	if sqlDB, err := suite.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func sqliteGUID(c string) string {
	return strings.Repeat(c, 32)
}

func (suite *SQLiteRepositoryTestSuite) redirect(guid string, buid int) *models.Redirect {
	r := &models.Redirect{GUID: guid, BUID: buid, URL: "https://ats.example.com/" + guid[:4], Title: "Welder"}
	_, err := NewRedirectRepository(suite.db, nil).Upsert(r)
	suite.Require().NoError(err)
	return r
}

func (suite *SQLiteRepositoryTestSuite) postedJob(guid string, buid int, expired bool) {
	job := &models.PostedJob{
		CompanyID:   uuid.New(),
		Title:       "Posted welder",
		GUID:        guid,
		BUID:        buid,
		IsExpired:   expired,
		DateExpired: time.Now().AddDate(0, 1, 0),
	}
	suite.Require().NoError(suite.db.Create(job).Error)
}

func (suite *SQLiteRepositoryTestSuite) TestBUIDColumns() {
	m := suite.db.Migrator()
	for _, model := range []interface{}{
		&models.Redirect{},
		&models.DestinationManipulation{},
		&models.PostedJob{},
		&models.ImportRecord{},
	} {
		suite.True(m.HasColumn(model, "buid"), "%T has buid", model)
		suite.False(m.HasColumn(model, "b_uid"), "%T has b_uid", model)
	}
}

func (suite *SQLiteRepositoryTestSuite) TestRedirectUpsert() {
	repo := NewRedirectRepository(suite.db, nil)
	guid := sqliteGUID("A")

	created, err := repo.Upsert(&models.Redirect{GUID: guid, BUID: 42, URL: "https://ats.example.com/1"})
	suite.Require().NoError(err)
	suite.True(created)
	suite.Require().NoError(repo.Expire(guid, time.Now()))

	created, err = repo.Upsert(&models.Redirect{GUID: guid, BUID: 43, URL: "https://ats.example.com/2"})
	suite.Require().NoError(err)
	suite.False(created)

	got, err := repo.Get(guid)
	suite.Require().NoError(err)
	suite.Equal(43, got.BUID)
	suite.Equal("https://ats.example.com/2", got.URL)
	suite.False(got.IsExpired())

	guids, err := repo.ActiveGUIDs(43)
	suite.Require().NoError(err)
	suite.Equal([]string{guid}, guids)
}

func (suite *SQLiteRepositoryTestSuite) TestExpireMissing() {
	repo := NewRedirectRepository(suite.db, nil)
	kept, dropped, other := sqliteGUID("A"), sqliteGUID("B"), sqliteGUID("C")
	livePosted, expiredPosted := sqliteGUID("D"), sqliteGUID("E")
	suite.redirect(kept, 42)
	suite.redirect(dropped, 42)
	suite.redirect(other, 7)
	suite.redirect(livePosted, 42)
	suite.redirect(expiredPosted, 42)
	suite.postedJob(livePosted, 42, false)
	suite.postedJob(expiredPosted, 42, true)

	n, err := repo.ExpireMissing(42, []string{kept}, time.Now())

	suite.Require().NoError(err)
	suite.Equal(int64(2), n)
	for guid, expired := range map[string]bool{
		kept:          false,
		dropped:       true,
		other:         false,
		livePosted:    false,
		expiredPosted: true,
	} {
		got, err := repo.Get(guid)
		suite.Require().NoError(err)
		suite.Equal(expired, got.IsExpired(), guid)
	}
}

func (suite *SQLiteRepositoryTestSuite) TestExpireMissing_EmptyFeed() {
	repo := NewRedirectRepository(suite.db, nil)
	suite.redirect(sqliteGUID("A"), 42)
	suite.redirect(sqliteGUID("D"), 42)
	suite.postedJob(sqliteGUID("D"), 42, false)

	n, err := repo.ExpireMissing(42, nil, time.Now())

	suite.Require().NoError(err)
	suite.Equal(int64(1), n)
}

func (suite *SQLiteRepositoryTestSuite) TestManipulations() {
	repo := NewDestinationManipulationRepository(suite.db)
	for _, m := range []*models.DestinationManipulation{
		{BUID: 42, ViewSource: 7, ActionType: 2, Action: "sourcecodetag", Value1: "b=2"},
		{BUID: 42, ViewSource: 7, ActionType: 1, Action: "sourcecodetag", Value1: "a=1"},
		{BUID: 42, ViewSource: 8, ActionType: 1, Action: "sourcecodetag", Value1: "c=3"},
		{BUID: 43, ViewSource: 7, ActionType: 1, Action: "sourcecodetag", Value1: "d=4"},
	} {
		suite.Require().NoError(repo.Create(m))
	}

	ms, err := repo.ListFor(42, 7)
	suite.Require().NoError(err)
	suite.Require().Len(ms, 2)
	suite.Equal("a=1", ms[0].Value1)
	suite.Equal("b=2", ms[1].Value1)

	list, total, err := repo.List(42, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(list, 3)

	found, err := repo.FindByKey(42, 8, 1, "sourcecodetag")
	suite.Require().NoError(err)
	suite.Equal("c=3", found.Value1)
}

func (suite *SQLiteRepositoryTestSuite) TestImportRecordsByBUID() {
	repo := NewImportRecordRepository(suite.db)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	suite.Require().NoError(repo.Create(&models.ImportRecord{BUID: 42, Status: models.ImportStatusSuccess, StartedAt: start}))
	suite.Require().NoError(repo.Create(&models.ImportRecord{BUID: 42, Status: models.ImportStatusPartial, StartedAt: start.Add(time.Hour)}))
	suite.Require().NoError(repo.Create(&models.ImportRecord{BUID: 7, Status: models.ImportStatusSuccess, StartedAt: start}))

	records, err := repo.ListByBUID(42, 10)

	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal(models.ImportStatusPartial, records[0].Status)
}

func (suite *SQLiteRepositoryTestSuite) TestProductKeepsZeroValues() {
	repo := NewProductRepository(suite.db)
	companyID := uuid.New()
	product := &models.Product{
		CompanyID:         companyID,
		Name:              "Unlimited hidden",
		Cost:              decimal.NewFromInt(10),
		PostingWindowDays: 30,
		MaxJobLengthDays:  30,
		NumJobsAllowed:    0,
		IsDisplayed:       false,
	}
	suite.Require().NoError(repo.Create(product))

	got, err := repo.GetByID(product.ID)
	suite.Require().NoError(err)
	suite.Equal(0, got.NumJobsAllowed)
	suite.True(got.Unlimited())
	suite.False(got.IsDisplayed)

	displayed, err := repo.ListByCompany(companyID, true)
	suite.Require().NoError(err)
	suite.Empty(displayed)
}

func (suite *SQLiteRepositoryTestSuite) TestSavedSearchKeepsInactive() {
	repo := NewSavedSearchRepository(suite.db)
	search := &models.SavedSearch{
		UserID:    uuid.New(),
		Label:     "Welders",
		Email:     "alice@example.com",
		Frequency: models.FrequencyWeekly,
		IsActive:  false,
	}
	suite.Require().NoError(repo.Create(search))

	got, err := repo.GetByID(search.ID)
	suite.Require().NoError(err)
	suite.False(got.IsActive)

	active, err := repo.ListActive()
	suite.Require().NoError(err)
	suite.Empty(active)
}

func (suite *SQLiteRepositoryTestSuite) TestUserKeepsInactive() {
	repo := NewUserRepository(suite.db)
	user := &models.User{Email: "inactive@example.com", PasswordHash: "x", IsActive: false}
	suite.Require().NoError(repo.Create(user))

	got, err := repo.GetByID(user.ID)
	suite.Require().NoError(err)
	suite.False(got.IsActive)
}

func (suite *SQLiteRepositoryTestSuite) TestCreatePartnerWithPrimaryContact() {
	partners := NewPartnerRepository(suite.db)
	companyID := uuid.New()
	partner := &models.Partner{CompanyID: companyID, Name: "Acme Staffing", ApprovalStatus: models.ApprovalApproved}
	contact := &models.Contact{Name: "Jane Roe", Email: "jane@example.com"}

	suite.Require().NoError(partners.CreateWithPrimaryContact(partner, contact))

	got, err := partners.GetByID(companyID, partner.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(got.PrimaryContact)
	suite.Equal(contact.ID, got.PrimaryContact.ID)
	suite.Equal(partner.ID, got.PrimaryContact.PartnerID)
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}
