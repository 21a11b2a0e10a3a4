package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrSessionExpired      = errors.New("session token has expired")
	ErrNotLoggedIn         = errors.New("no active session")
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrInvalidQuantity     = errors.New("quantity plus free units exceeds available stock")
	ErrBatchNotInCatalog   = errors.New("selected batch is not in the stock catalog")
	ErrEmptyBill           = errors.New("bill has no line items")
	ErrMissingField        = errors.New("required field is missing")
	ErrInvalidIdentifier   = errors.New("purchaser identifier does not match its declared type")
	ErrInvalidDrugLicense  = errors.New("drug license number is malformed")
	ErrSubmissionInFlight  = errors.New("bill submission already in progress")
	ErrAmountNotComputable = errors.New("line amount is not computable yet")
	ErrBaseURLMissing      = errors.New("api base url is not configured")
)

// APIError is a failure reported by the billing backend. It wraps a sentinel
// domain error when the response maps onto one, so callers can errors.Is on
// either the sentinel or the concrete response details.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Err }
