package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// CompanyService handles companies, their users and business units
type CompanyService struct {
	repo      repository.CompanyRepositoryInterface
	users     repository.UserRepositoryInterface
	units     repository.BusinessUnitRepositoryInterface
	validator *validator.Validate
}

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.CompanyRepositoryInterface, users repository.UserRepositoryInterface, units repository.BusinessUnitRepositoryInterface, validator *validator.Validate) *CompanyService {
	return &CompanyService{
		repo:      repo,
		users:     users,
		units:     units,
		validator: validator,
	}
}

// CreateCompanyRequest represents the request to create a company
type CreateCompanyRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Slug          string `json:"slug" validate:"omitempty,max=200"`
	Member        bool   `json:"member"`
	ProductAccess bool   `json:"product_access"`
	PostingAccess bool   `json:"posting_access"`
	PRMAccess     bool   `json:"prm_access"`
	ReportsAccess bool   `json:"reports_access"`
}

// UpdateCompanyRequest represents the request to update a company.
// Nil fields are left unchanged.
type UpdateCompanyRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Member        *bool   `json:"member,omitempty"`
	ProductAccess *bool   `json:"product_access,omitempty"`
	PostingAccess *bool   `json:"posting_access,omitempty"`
	PRMAccess     *bool   `json:"prm_access,omitempty"`
	ReportsAccess *bool   `json:"reports_access,omitempty"`
}

// AddCompanyUserRequest adds an existing user to a company
type AddCompanyUserRequest struct {
	Email string             `json:"email" validate:"required,email"`
	Role  models.CompanyRole `json:"role" validate:"omitempty,oneof=admin member"`
}

// CreateBusinessUnitRequest represents the request to register a BUID
type CreateBusinessUnitRequest struct {
	ID        int        `json:"id" validate:"required,min=1"`
	Title     string     `json:"title" validate:"max=500"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
}

// CompanyListResponse represents a paginated list of companies
type CompanyListResponse struct {
	Companies []models.Company `json:"companies"`
	Total     int64            `json:"total"`
	Page      int              `json:"page"`
	PageSize  int              `json:"page_size"`
}

// CompanyUserResponse is one member of a company
type CompanyUserResponse struct {
	UserID uuid.UUID          `json:"user_id"`
	Email  string             `json:"email"`
	Role   models.CompanyRole `json:"role"`
}

// BusinessUnitListResponse represents a paginated list of business units
type BusinessUnitListResponse struct {
	BusinessUnits []models.BusinessUnit `json:"business_units"`
	Total         int64                 `json:"total"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"page_size"`
}

// CreateCompany creates a new company. The slug is derived from the name when omitted.
func (s *CompanyService) CreateCompany(req *CreateCompanyRequest) (*models.Company, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	slug := Slugify(req.Slug)
	if slug == "" {
		slug = Slugify(req.Name)
	}
	if slug == "" {
		return nil, apperrors.NewValidationError("slug", "must contain letters or digits")
	}

	existing, err := s.repo.GetBySlug(slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing company: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCompanyExists
	}

	company := &models.Company{
		Name:          req.Name,
		Slug:          slug,
		Member:        req.Member,
		ProductAccess: req.ProductAccess,
		PostingAccess: req.PostingAccess,
		PRMAccess:     req.PRMAccess,
		ReportsAccess: req.ReportsAccess,
	}
	if err := s.repo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return company, nil
}

// GetCompany retrieves a company by ID
func (s *CompanyService) GetCompany(id uuid.UUID) (*models.Company, error) {
	company, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrCompanyNotFound, "get company")
	}
	return company, nil
}

// ListCompanies lists companies with pagination
func (s *CompanyService) ListCompanies(page, pageSize int) (*CompanyListResponse, error) {
	page, pageSize, limit, offset := normalizePage(page, pageSize)
	companies, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return &CompanyListResponse{Companies: companies, Total: total, Page: page, PageSize: pageSize}, nil
}

// UpdateCompany updates a company's name and app access flags
func (s *CompanyService) UpdateCompany(id uuid.UUID, req *UpdateCompanyRequest) (*models.Company, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	company, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrCompanyNotFound, "get company")
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	setBool(&company.Member, req.Member)
	setBool(&company.ProductAccess, req.ProductAccess)
	setBool(&company.PostingAccess, req.PostingAccess)
	setBool(&company.PRMAccess, req.PRMAccess)
	setBool(&company.ReportsAccess, req.ReportsAccess)

	if err := s.repo.Update(company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}

// DeleteCompany deletes a company
func (s *CompanyService) DeleteCompany(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return notFound(err, apperrors.ErrCompanyNotFound, "delete company")
	}
	return nil
}

// ListCompanyUsers lists a company's members
func (s *CompanyService) ListCompanyUsers(companyID uuid.UUID) ([]CompanyUserResponse, error) {
	members, err := s.repo.ListUsers(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company users: %w", err)
	}
	out := make([]CompanyUserResponse, 0, len(members))
	for _, m := range members {
		r := CompanyUserResponse{UserID: m.UserID, Role: m.Role}
		if m.User != nil {
			r.Email = m.User.Email
		}
		out = append(out, r)
	}
	return out, nil
}

// AddCompanyUser adds an existing account to the company
func (s *CompanyService) AddCompanyUser(companyID uuid.UUID, req *AddCompanyUserRequest) (*CompanyUserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "get user")
	}

	existing, err := s.repo.GetMembership(companyID, user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCompanyUserExists
	}

	role := req.Role
	if role == "" {
		role = models.CompanyRoleMember
	}
	cu := &models.CompanyUser{CompanyID: companyID, UserID: user.ID, Role: role}
	if err := s.repo.AddUser(cu); err != nil {
		return nil, fmt.Errorf("failed to add company user: %w", err)
	}
	return &CompanyUserResponse{UserID: user.ID, Email: user.Email, Role: role}, nil
}

// RemoveCompanyUser removes a member from the company
func (s *CompanyService) RemoveCompanyUser(companyID, userID uuid.UUID) error {
	if err := s.repo.RemoveUser(companyID, userID); err != nil {
		return notFound(err, apperrors.ErrCompanyUserNotFound, "remove company user")
	}
	return nil
}

// CreateBusinessUnit registers a BUID, optionally owned by a company
func (s *CompanyService) CreateBusinessUnit(req *CreateBusinessUnitRequest) (*models.BusinessUnit, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.units.GetByID(req.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing business unit: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrBusinessUnitExists
	}

	if req.CompanyID != nil {
		if _, err := s.repo.GetByID(*req.CompanyID); err != nil {
			return nil, notFound(err, apperrors.ErrCompanyNotFound, "verify company")
		}
	}

	bu := &models.BusinessUnit{ID: req.ID, Title: req.Title, CompanyID: req.CompanyID}
	if err := s.units.Create(bu); err != nil {
		return nil, fmt.Errorf("failed to create business unit: %w", err)
	}
	return bu, nil
}

// ListBusinessUnits lists business units with pagination
func (s *CompanyService) ListBusinessUnits(page, pageSize int) (*BusinessUnitListResponse, error) {
	page, pageSize, limit, offset := normalizePage(page, pageSize)
	units, total, err := s.units.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list business units: %w", err)
	}
	return &BusinessUnitListResponse{BusinessUnits: units, Total: total, Page: page, PageSize: pageSize}, nil
}

// CompanyBusinessUnits lists the business units owned by a company
func (s *CompanyService) CompanyBusinessUnits(companyID uuid.UUID) ([]models.BusinessUnit, error) {
	units, err := s.units.GetByCompanyID(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list business units: %w", err)
	}
	return units, nil
}

// AssignBusinessUnit moves a business unit to a company, or detaches it when companyID is nil
func (s *CompanyService) AssignBusinessUnit(id int, companyID *uuid.UUID) error {
	if _, err := s.units.GetByID(id); err != nil {
		return notFound(err, apperrors.ErrBusinessUnitNotFound, "get business unit")
	}
	if companyID != nil {
		if _, err := s.repo.GetByID(*companyID); err != nil {
			return notFound(err, apperrors.ErrCompanyNotFound, "verify company")
		}
	}
	if err := s.units.AssignToCompany(id, companyID); err != nil {
		return fmt.Errorf("failed to assign business unit: %w", err)
	}
	return nil
}

// Slugify lower-cases s and joins its alphanumeric runs with hyphens
func Slugify(s string) string {
	return strings.Trim(slugInvalid.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
