package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Identifier and drug-license formats accepted on a bill header.
var (
	gstPattern     = regexp.MustCompile(`^(?i)[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panPattern     = regexp.MustCompile(`^(?i)[A-Z]{5}[0-9]{4}[A-Z]$`)
	aadhaarPattern = regexp.MustCompile(`^[2-9][0-9]{3}[0-9]{4}[0-9]{4}$`)
	dlPattern      = regexp.MustCompile(`^(?i)[A-Z0-9\-\/\s]{10,30}$`)
)

// identifierPatterns maps each declared identifier type to its format.
var identifierPatterns = map[IdentifierType]*regexp.Regexp{
	IdentifierGST:     gstPattern,
	IdentifierPAN:     panPattern,
	IdentifierAadhaar: aadhaarPattern,
}

// ValidIdentifier reports whether value matches the format of the given type.
func ValidIdentifier(t IdentifierType, value string) bool {
	p, ok := identifierPatterns[t]
	return ok && p.MatchString(value)
}

// ValidDrugLicense reports whether a drug license number is well formed.
func ValidDrugLicense(value string) bool {
	return dlPattern.MatchString(value)
}

// Validate checks all required header fields and their formats. It must pass
// before the creation flow may advance past the header step.
func (h *BillHeaderDraft) Validate() error {
	if h.PurchaserName == "" {
		return fmt.Errorf("purchaser name: %w", ErrMissingField)
	}
	if h.DL1 == "" || h.DL2 == "" {
		return fmt.Errorf("drug license numbers: %w", ErrMissingField)
	}
	if !ValidDrugLicense(h.DL1) || !ValidDrugLicense(h.DL2) {
		return ErrInvalidDrugLicense
	}
	if h.Identifier == "" {
		return fmt.Errorf("purchaser identifier: %w", ErrMissingField)
	}
	t := h.IdentifierType
	if t == "" {
		t = IdentifierGST
	}
	if !ValidIdentifier(t, h.Identifier) {
		return fmt.Errorf("%w (%s)", ErrInvalidIdentifier, t)
	}
	if h.InvoiceDate == "" {
		return fmt.Errorf("invoice date: %w", ErrMissingField)
	}
	return nil
}

// FormatDate normalizes a timestamp to the date-only form the backend stores.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
