package domain

// UserRole distinguishes distributor accounts from the admin console.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// IdentifierType selects which purchaser identifier a bill header carries.
type IdentifierType string

const (
	IdentifierGST     IdentifierType = "GST"
	IdentifierPAN     IdentifierType = "PAN"
	IdentifierAadhaar IdentifierType = "AADHAAR"
)

// AlertType classifies transient user-facing messages.
type AlertType string

const (
	AlertSuccess AlertType = "success"
	AlertError   AlertType = "error"
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
)

// SubmissionState tracks the bill submission coordinator.
type SubmissionState string

const (
	SubmissionIdle             SubmissionState = "idle"
	SubmissionHeaderSubmitting SubmissionState = "header_submitting"
	SubmissionItemsSubmitting  SubmissionState = "items_submitting"
	SubmissionDone             SubmissionState = "done"
)
