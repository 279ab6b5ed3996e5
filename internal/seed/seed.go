// Package seed loads initial users, companies, sites and products from YAML
// files. Loading is idempotent: rows that already exist are left alone.
package seed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"myjobs/internal/auth"
	"myjobs/internal/database/models"
	"myjobs/internal/logger"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type UserData struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	IsStaff  bool   `yaml:"is_staff"`
}

type MembershipData struct {
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type CompanyData struct {
	Name          string           `yaml:"name"`
	Slug          string           `yaml:"slug"`
	Member        bool             `yaml:"member"`
	ProductAccess bool             `yaml:"product_access"`
	PostingAccess bool             `yaml:"posting_access"`
	PRMAccess     bool             `yaml:"prm_access"`
	ReportsAccess bool             `yaml:"reports_access"`
	Users         []MembershipData `yaml:"users,omitempty"`
	BusinessUnits []BusinessUnit   `yaml:"business_units,omitempty"`
}

type BusinessUnit struct {
	ID    int    `yaml:"id"`
	Title string `yaml:"title"`
}

type SiteData struct {
	Domain            string `yaml:"domain"`
	Name              string `yaml:"name"`
	CompanySlug       string `yaml:"company_slug"`
	DefaultViewSource int    `yaml:"default_view_source"`
	PostajobEnabled   bool   `yaml:"postajob_enabled"`
	BusinessUnits     []int  `yaml:"business_units,omitempty"`
}

type ProductData struct {
	Name              string `yaml:"name"`
	CompanySlug       string `yaml:"company_slug"`
	Cost              string `yaml:"cost"`
	PostingWindowDays int    `yaml:"posting_window_days"`
	MaxJobLengthDays  int    `yaml:"max_job_length_days"`
	NumJobsAllowed    int    `yaml:"num_jobs_allowed"`
	RequiresApproval  bool   `yaml:"requires_approval"`
}

type ViewSourceData struct {
	ID           int    `yaml:"id"`
	Name         string `yaml:"name"`
	FriendlyName string `yaml:"friendly_name"`
}

// File is one YAML file. Any section may be absent.
type File struct {
	Users       []UserData       `yaml:"users"`
	Companies   []CompanyData    `yaml:"companies"`
	Sites       []SiteData       `yaml:"sites"`
	Products    []ProductData    `yaml:"products"`
	ViewSources []ViewSourceData `yaml:"view_sources"`
}

// Summary counts the rows created per section
type Summary struct {
	Users       int
	Companies   int
	Units       int
	Sites       int
	Products    int
	ViewSources int
}

// ReadDir merges every .yaml file under dir
func ReadDir(dir string) (*File, error) {
	var all File
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file File
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		all.Users = append(all.Users, file.Users...)
		all.Companies = append(all.Companies, file.Companies...)
		all.Sites = append(all.Sites, file.Sites...)
		all.Products = append(all.Products, file.Products...)
		all.ViewSources = append(all.ViewSources, file.ViewSources...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &all, nil
}

// Load creates everything in f that does not exist yet, in dependency order
func Load(db *gorm.DB, f *File) (*Summary, error) {
	log := logger.New()
	var summary Summary

	for _, vs := range f.ViewSources {
		created, err := createViewSource(db, vs)
		if err != nil {
			return nil, fmt.Errorf("failed to create view source %d: %w", vs.ID, err)
		}
		if created {
			summary.ViewSources++
		}
	}

	users := make(map[string]*models.User)
	for _, userData := range f.Users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		users[user.Email] = user
		if created {
			summary.Users++
		}
	}

	companies := make(map[string]*models.Company)
	for _, companyData := range f.Companies {
		company, created, err := createCompany(db, companyData)
		if err != nil {
			return nil, fmt.Errorf("failed to create company %s: %w", companyData.Slug, err)
		}
		companies[company.Slug] = company
		if created {
			summary.Companies++
		}

		for _, m := range companyData.Users {
			user := users[strings.ToLower(m.Email)]
			if user == nil {
				log.WithField("email", m.Email).Warn("skipping membership of unknown user")
				continue
			}
			if err := createMembership(db, company, user, models.CompanyRole(m.Role)); err != nil {
				return nil, fmt.Errorf("failed to add %s to %s: %w", m.Email, company.Slug, err)
			}
		}
		for _, bu := range companyData.BusinessUnits {
			created, err := createBusinessUnit(db, company, bu)
			if err != nil {
				return nil, fmt.Errorf("failed to create business unit %d: %w", bu.ID, err)
			}
			if created {
				summary.Units++
			}
		}
	}

	for _, siteData := range f.Sites {
		company := companies[siteData.CompanySlug]
		if company == nil {
			return nil, fmt.Errorf("company %s not found for site %s", siteData.CompanySlug, siteData.Domain)
		}
		created, err := createSite(db, company, siteData)
		if err != nil {
			return nil, fmt.Errorf("failed to create site %s: %w", siteData.Domain, err)
		}
		if created {
			summary.Sites++
		}
	}

	for _, productData := range f.Products {
		company := companies[productData.CompanySlug]
		if company == nil {
			return nil, fmt.Errorf("company %s not found for product %s", productData.CompanySlug, productData.Name)
		}
		created, err := createProduct(db, company, productData)
		if err != nil {
			log.WithError(err).WithField("product", productData.Name).Warn("failed to create product")
			continue
		}
		if created {
			summary.Products++
		}
	}

	return &summary, nil
}

func createViewSource(db *gorm.DB, data ViewSourceData) (bool, error) {
	var vs models.ViewSource
	err := db.First(&vs, "id = ?", data.ID).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query view source: %w", err)
	}
	vs = models.ViewSource{ID: data.ID, Name: data.Name, FriendlyName: data.FriendlyName}
	return true, db.Create(&vs).Error
}

func createUser(db *gorm.DB, data UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		return nil, false, err
	}
	user = models.User{Email: email, PasswordHash: hash, IsActive: true, IsStaff: data.IsStaff}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func createCompany(db *gorm.DB, data CompanyData) (*models.Company, bool, error) {
	var company models.Company
	err := db.Where("slug = ?", data.Slug).First(&company).Error
	if err == nil {
		return &company, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query company: %w", err)
	}

	company = models.Company{
		Name:          data.Name,
		Slug:          data.Slug,
		Member:        data.Member,
		ProductAccess: data.ProductAccess,
		PostingAccess: data.PostingAccess,
		PRMAccess:     data.PRMAccess,
		ReportsAccess: data.ReportsAccess,
	}
	if err := db.Create(&company).Error; err != nil {
		return nil, false, err
	}
	return &company, true, nil
}

func createMembership(db *gorm.DB, company *models.Company, user *models.User, role models.CompanyRole) error {
	if !role.IsValid() {
		role = models.CompanyRoleMember
	}
	var cu models.CompanyUser
	err := db.Where("company_id = ? AND user_id = ?", company.ID, user.ID).First(&cu).Error
	if err == nil || !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(&models.CompanyUser{CompanyID: company.ID, UserID: user.ID, Role: role}).Error
}

func createBusinessUnit(db *gorm.DB, company *models.Company, data BusinessUnit) (bool, error) {
	var bu models.BusinessUnit
	err := db.First(&bu, "id = ?", data.ID).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	companyID := company.ID
	bu = models.BusinessUnit{ID: data.ID, Title: data.Title, CompanyID: &companyID}
	return true, db.Create(&bu).Error
}

func createSite(db *gorm.DB, company *models.Company, data SiteData) (bool, error) {
	var site models.SeoSite
	err := db.Where("domain = ?", strings.ToLower(data.Domain)).First(&site).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	var units []models.BusinessUnit
	if len(data.BusinessUnits) > 0 {
		if err := db.Where("id IN ?", data.BusinessUnits).Find(&units).Error; err != nil {
			return false, err
		}
	}
	site = models.SeoSite{
		Domain:            strings.ToLower(data.Domain),
		Name:              data.Name,
		CompanyID:         company.ID,
		DefaultViewSource: data.DefaultViewSource,
		PostajobEnabled:   data.PostajobEnabled,
		BusinessUnits:     units,
	}
	return true, db.Create(&site).Error
}

func createProduct(db *gorm.DB, company *models.Company, data ProductData) (bool, error) {
	var product models.Product
	err := db.Where("company_id = ? AND name = ?", company.ID, data.Name).First(&product).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	cost, err := decimal.NewFromString(data.Cost)
	if err != nil {
		return false, fmt.Errorf("invalid cost %q: %w", data.Cost, err)
	}
	product = models.Product{
		CompanyID:         company.ID,
		Name:              data.Name,
		Cost:              cost,
		PostingWindowDays: defaultInt(data.PostingWindowDays, 30),
		MaxJobLengthDays:  defaultInt(data.MaxJobLengthDays, 30),
		NumJobsAllowed:    data.NumJobsAllowed,
		IsDisplayed:       true,
		RequiresApproval:  data.RequiresApproval,
	}
	return true, db.Create(&product).Error
}

func defaultInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
