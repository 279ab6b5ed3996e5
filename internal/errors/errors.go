package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this company"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ExpiredError represents a resource that existed but is no longer available
type ExpiredError struct {
	Entity string
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("%s has expired", e.Entity)
}

// Is enables errors.Is() comparison for ExpiredError
func (e *ExpiredError) Is(target error) bool {
	t, ok := target.(*ExpiredError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// Entity Not Found Errors
var (
	ErrUserNotFound                    = &NotFoundError{Entity: "user"}
	ErrCompanyNotFound                 = &NotFoundError{Entity: "company"}
	ErrCompanyUserNotFound             = &NotFoundError{Entity: "company user"}
	ErrBusinessUnitNotFound            = &NotFoundError{Entity: "business unit"}
	ErrSiteNotFound                    = &NotFoundError{Entity: "site"}
	ErrNameNotFound                    = &NotFoundError{Entity: "name"}
	ErrAddressNotFound                 = &NotFoundError{Entity: "address"}
	ErrPartnerNotFound                 = &NotFoundError{Entity: "partner"}
	ErrContactNotFound                 = &NotFoundError{Entity: "contact"}
	ErrContactRecordNotFound           = &NotFoundError{Entity: "contact record"}
	ErrTagNotFound                     = &NotFoundError{Entity: "tag"}
	ErrProductNotFound                 = &NotFoundError{Entity: "product"}
	ErrPurchaseNotFound                = &NotFoundError{Entity: "purchase"}
	ErrPostedJobNotFound               = &NotFoundError{Entity: "posted job"}
	ErrSavedSearchNotFound             = &NotFoundError{Entity: "saved search"}
	ErrEmailTemplateNotFound           = &NotFoundError{Entity: "email template"}
	ErrReportNotFound                  = &NotFoundError{Entity: "report"}
	ErrReportTypeNotFound              = &NotFoundError{Entity: "report type"}
	ErrDataTypeNotFound                = &NotFoundError{Entity: "data type"}
	ErrRedirectNotFound                = &NotFoundError{Entity: "redirect"}
	ErrViewSourceNotFound              = &NotFoundError{Entity: "view source"}
	ErrDestinationManipulationNotFound = &NotFoundError{Entity: "destination manipulation"}
	ErrJobNotFound                     = &NotFoundError{Entity: "job"}
)

// Already Exists Errors
var (
	ErrUserExists                    = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrCompanyExists                 = &AlreadyExistsError{Entity: "company", Context: "with this slug"}
	ErrCompanyUserExists             = &AlreadyExistsError{Entity: "company user", Context: "for this company"}
	ErrBusinessUnitExists            = &AlreadyExistsError{Entity: "business unit", Context: "with this id"}
	ErrSiteExists                    = &AlreadyExistsError{Entity: "site", Context: "with this domain"}
	ErrPartnerExists                 = &AlreadyExistsError{Entity: "partner", Context: "with this name for this company"}
	ErrViewSourceExists              = &AlreadyExistsError{Entity: "view source", Context: "with this id"}
	ErrDestinationManipulationExists = &AlreadyExistsError{Entity: "destination manipulation", Context: "for this business unit and view source"}
)

// Expired Errors
var (
	ErrRedirectExpired = &ExpiredError{Entity: "job"}
	ErrPurchaseExpired = &ExpiredError{Entity: "purchase"}
)

// Business Logic Errors
var (
	ErrNoJobsRemaining          = errors.New("purchase has no jobs remaining")
	ErrJobLengthExceeded        = errors.New("job expiration exceeds the product's maximum job length")
	ErrApplyMethodRequired      = errors.New("exactly one of apply link or apply email is required")
	ErrContactNotInPartner      = errors.New("contact does not belong to this partner")
	ErrContactEmailRequired     = errors.New("contact email is required for email records")
	ErrInvalidFilter            = errors.New("invalid report filter")
	ErrInvalidColumn            = errors.New("invalid report column")
	ErrInvalidPresentation      = errors.New("invalid report presentation type")
	ErrUnknownAction            = errors.New("unknown destination manipulation action")
	ErrInvalidGUID              = errors.New("invalid job guid")
	ErrInvalidFrequency         = errors.New("invalid saved search frequency")
	ErrInvalidUnsubscribeToken  = errors.New("invalid unsubscribe token")
	ErrSearchEmailMismatch      = errors.New("saved search email must match the contact's email")
	ErrInvalidPaginationParams  = errors.New("invalid pagination parameters")
	ErrReportNotRun             = errors.New("report has no results yet")
	ErrCompanyContextRequired   = errors.New("company context is required")
	ErrInvalidFeed              = errors.New("invalid job feed")
	ErrInvalidSourceCodeCSVFile = errors.New("invalid source code csv")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid token"}
	ErrInactiveUser       = &AuthorizationError{Message: "user account is inactive"}
	ErrNotCompanyMember   = &AuthorizationError{Message: "user is not a member of this company"}
	ErrNotCompanyAdmin    = &AuthorizationError{Message: "company admin role required"}
	ErrStaffRequired      = &AuthorizationError{Message: "staff access required"}
	ErrFeatureNotEnabled  = &AuthorizationError{Message: "feature is not enabled for this company"}
)

// Configuration Errors
var (
	ErrSearchNotConfigured    = &ConfigurationError{Message: "search index is not configured"}
	ErrAnalyticsNotConfigured = &ConfigurationError{Message: "analytics store is not configured"}
	ErrMailerNotConfigured    = &ConfigurationError{Message: "no email backend configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsExpired checks if an error is an ExpiredError
func IsExpired(err error) bool {
	var expiredErr *ExpiredError
	return errors.As(err, &expiredErr)
}

// IsBadRequest reports the plain business-rule sentinels that map to HTTP 400
func IsBadRequest(err error) bool {
	for _, target := range []error{
		ErrNoJobsRemaining, ErrJobLengthExceeded, ErrApplyMethodRequired, ErrContactNotInPartner,
		ErrContactEmailRequired, ErrInvalidFilter, ErrInvalidColumn, ErrInvalidPresentation, ErrUnknownAction,
		ErrInvalidGUID, ErrInvalidFrequency, ErrSearchEmailMismatch, ErrInvalidPaginationParams, ErrReportNotRun,
		ErrCompanyContextRequired, ErrInvalidFeed, ErrInvalidSourceCodeCSVFile,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return IsValidation(err)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
