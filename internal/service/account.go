package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"myjobs/internal/auth"
	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountService handles registration, login and profile units
type AccountService struct {
	users     repository.UserRepositoryInterface
	profiles  repository.ProfileRepositoryInterface
	tokens    *auth.AuthService
	validator *validator.Validate
}

// NewAccountService creates a new account service
func NewAccountService(users repository.UserRepositoryInterface, profiles repository.ProfileRepositoryInterface, tokens *auth.AuthService, validator *validator.Validate) *AccountService {
	return &AccountService{
		users:     users,
		profiles:  profiles,
		tokens:    tokens,
		validator: validator,
	}
}

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// NameRequest creates or updates a name profile unit
type NameRequest struct {
	GivenName  string `json:"given_name" validate:"required,max=30"`
	FamilyName string `json:"family_name" validate:"required,max=30"`
	Primary    bool   `json:"primary"`
}

// AddressRequest creates or updates an address profile unit
type AddressRequest struct {
	Label      string `json:"label" validate:"max=60"`
	Line1      string `json:"line1" validate:"max=255"`
	Line2      string `json:"line2" validate:"max=255"`
	City       string `json:"city" validate:"max=255"`
	Region     string `json:"region" validate:"max=255"`
	PostalCode string `json:"postal_code" validate:"max=12"`
	Country    string `json:"country" validate:"omitempty,len=3"`
}

// UserResponse represents a user account
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	IsActive  bool       `json:"is_active"`
	IsStaff   bool       `json:"is_staff"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt string     `json:"created_at"`
}

// MembershipResponse is one company the user belongs to
type MembershipResponse struct {
	CompanyID   uuid.UUID          `json:"company_id"`
	CompanyName string             `json:"company_name"`
	CompanySlug string             `json:"company_slug"`
	Role        models.CompanyRole `json:"role"`
}

// MeResponse is the authenticated user's account with names and companies
type MeResponse struct {
	UserResponse
	Names     []models.Name        `json:"names"`
	Companies []MembershipResponse `json:"companies"`
}

// LoginResponse carries the issued token and the user
type LoginResponse struct {
	auth.TokenResponse
	User UserResponse `json:"user"`
}

// Register creates a new account
func (s *AccountService) Register(req *RegisterRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.users.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewValidationError("password", err.Error())
	}

	user := &models.User{Email: email, PasswordHash: hash, IsActive: true}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// Login checks the credentials and issues an access token
func (s *AccountService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrInactiveUser
	}

	token, err := s.tokens.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(user.ID, now); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}
	user.LastLogin = &now

	return &LoginResponse{TokenResponse: *token, User: toUserResponse(user)}, nil
}

// Me returns the user's account with names and company memberships
func (s *AccountService) Me(userID uuid.UUID) (*MeResponse, error) {
	user, err := s.users.GetWithCompanies(userID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "get user")
	}

	resp := &MeResponse{
		UserResponse: toUserResponse(user),
		Names:        user.Names,
		Companies:    make([]MembershipResponse, 0, len(user.Companies)),
	}
	if resp.Names == nil {
		resp.Names = []models.Name{}
	}
	for _, cu := range user.Companies {
		m := MembershipResponse{CompanyID: cu.CompanyID, Role: cu.Role}
		if cu.Company != nil {
			m.CompanyName = cu.Company.Name
			m.CompanySlug = cu.Company.Slug
		}
		resp.Companies = append(resp.Companies, m)
	}
	return resp, nil
}

// ListNames lists the user's names, primary first
func (s *AccountService) ListNames(userID uuid.UUID) ([]models.Name, error) {
	names, err := s.profiles.ListNames(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list names: %w", err)
	}
	return names, nil
}

// CreateName adds a name. A primary name demotes the previous one.
func (s *AccountService) CreateName(userID uuid.UUID, req *NameRequest) (*models.Name, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	name := &models.Name{UserID: userID, GivenName: req.GivenName, FamilyName: req.FamilyName, Primary: req.Primary}
	if err := s.profiles.SaveName(name); err != nil {
		return nil, fmt.Errorf("failed to save name: %w", err)
	}
	return name, nil
}

// UpdateName updates one of the user's names
func (s *AccountService) UpdateName(userID, id uuid.UUID, req *NameRequest) (*models.Name, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	name, err := s.profiles.GetName(userID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrNameNotFound, "get name")
	}
	name.GivenName = req.GivenName
	name.FamilyName = req.FamilyName
	name.Primary = req.Primary
	if err := s.profiles.SaveName(name); err != nil {
		return nil, fmt.Errorf("failed to save name: %w", err)
	}
	return name, nil
}

// DeleteName deletes one of the user's names
func (s *AccountService) DeleteName(userID, id uuid.UUID) error {
	if err := s.profiles.DeleteName(userID, id); err != nil {
		return notFound(err, apperrors.ErrNameNotFound, "delete name")
	}
	return nil
}

// ListAddresses lists the user's addresses
func (s *AccountService) ListAddresses(userID uuid.UUID) ([]models.Address, error) {
	addresses, err := s.profiles.ListAddresses(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}

// CreateAddress adds an address
func (s *AccountService) CreateAddress(userID uuid.UUID, req *AddressRequest) (*models.Address, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	address := &models.Address{UserID: userID}
	applyAddress(address, req)
	if err := s.profiles.SaveAddress(address); err != nil {
		return nil, fmt.Errorf("failed to save address: %w", err)
	}
	return address, nil
}

// UpdateAddress updates one of the user's addresses
func (s *AccountService) UpdateAddress(userID, id uuid.UUID, req *AddressRequest) (*models.Address, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	address, err := s.profiles.GetAddress(userID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAddressNotFound, "get address")
	}
	applyAddress(address, req)
	if err := s.profiles.SaveAddress(address); err != nil {
		return nil, fmt.Errorf("failed to save address: %w", err)
	}
	return address, nil
}

// DeleteAddress deletes one of the user's addresses
func (s *AccountService) DeleteAddress(userID, id uuid.UUID) error {
	if err := s.profiles.DeleteAddress(userID, id); err != nil {
		return notFound(err, apperrors.ErrAddressNotFound, "delete address")
	}
	return nil
}

func applyAddress(a *models.Address, req *AddressRequest) {
	a.Label = req.Label
	a.Line1 = req.Line1
	a.Line2 = req.Line2
	a.City = req.City
	a.Region = req.Region
	a.PostalCode = req.PostalCode
	a.Country = strings.ToUpper(req.Country)
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		IsActive:  u.IsActive,
		IsStaff:   u.IsStaff,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
