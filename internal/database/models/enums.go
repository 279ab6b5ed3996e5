package models

// CompanyRole is the role a user holds inside a company
type CompanyRole string

const (
	CompanyRoleAdmin  CompanyRole = "admin"
	CompanyRoleMember CompanyRole = "member"
)

// IsValid checks if the CompanyRole is valid
func (r CompanyRole) IsValid() bool {
	switch r {
	case CompanyRoleAdmin, CompanyRoleMember:
		return true
	}
	return false
}

// ApprovalStatus tracks partner moderation
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalDenied   ApprovalStatus = "denied"
)

// ContactType classifies a communication record
type ContactType string

const (
	ContactTypeEmail          ContactType = "email"
	ContactTypePhone          ContactType = "phone"
	ContactTypeMeetingOrEvent ContactType = "meetingorevent"
	ContactTypeJob            ContactType = "job"
	ContactTypePSSEmail       ContactType = "pssemail"
	ContactTypeFacebook       ContactType = "facebook"
	ContactTypeTwitter        ContactType = "twitter"
	ContactTypeLinkedIn       ContactType = "linkedin"
)

// IsValid checks if the ContactType is valid
func (c ContactType) IsValid() bool {
	switch c {
	case ContactTypeEmail, ContactTypePhone, ContactTypeMeetingOrEvent, ContactTypeJob,
		ContactTypePSSEmail, ContactTypeFacebook, ContactTypeTwitter, ContactTypeLinkedIn:
		return true
	}
	return false
}

// HasLength reports whether records of this type may carry a duration
func (c ContactType) HasLength() bool {
	return c == ContactTypePhone || c == ContactTypeMeetingOrEvent
}

// LogAction is the kind of mutation recorded in the PRM activity log
type LogAction string

const (
	LogActionAdd     LogAction = "add"
	LogActionChange  LogAction = "change"
	LogActionDelete  LogAction = "delete"
	LogActionArchive LogAction = "archive"
	LogActionRestore LogAction = "restore"
)

// Frequency is how often a saved search digest is sent
type Frequency string

const (
	FrequencyDaily   Frequency = "D"
	FrequencyWeekly  Frequency = "W"
	FrequencyMonthly Frequency = "M"
)

// IsValid checks if the Frequency is valid
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// EmailEvent names the trigger an email template is bound to
type EmailEvent string

const (
	EmailEventPurchaseExpiring  EmailEvent = "purchase_expiring"
	EmailEventJobPosted         EmailEvent = "job_posted"
	EmailEventSavedSearchDigest EmailEvent = "saved_search_digest"
)

// IsValid checks if the EmailEvent is valid
func (e EmailEvent) IsValid() bool {
	switch e {
	case EmailEventPurchaseExpiring, EmailEventJobPosted, EmailEventSavedSearchDigest:
		return true
	}
	return false
}

// EmailStatus is the outcome of a send attempt
type EmailStatus string

const (
	EmailStatusSent   EmailStatus = "sent"
	EmailStatusFailed EmailStatus = "failed"
)

// ImportStatus is the outcome of a feed import
type ImportStatus string

const (
	ImportStatusSuccess ImportStatus = "success"
	ImportStatusPartial ImportStatus = "partial"
	ImportStatusFailed  ImportStatus = "failed"
)
