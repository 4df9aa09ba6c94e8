// Package validation wires the validate struct tags used across the API
// request types and supplies the date/range checks shared by the report
// endpoints.
package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Struct validates a request struct against its validate tags
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// IsValidDate reports whether s is a real calendar date in YYYY-MM-DD
func IsValidDate(s string) bool {
	if !isoDateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ValidateDateRange checks both dates and their ordering. Empty strings are
// allowed; ordering is only enforced when both ends are present.
func ValidateDateRange(startDate, endDate string) error {
	if startDate != "" && !IsValidDate(startDate) {
		return fmt.Errorf("start date must be in YYYY-MM-DD format")
	}
	if endDate != "" && !IsValidDate(endDate) {
		return fmt.Errorf("end date must be in YYYY-MM-DD format")
	}
	if startDate != "" && endDate != "" && startDate > endDate {
		return fmt.Errorf("start date must be before end date")
	}
	return nil
}

// ValidateYearMonth bounds the monthly report parameters
func ValidateYearMonth(year, month int) error {
	if year < 1900 || year > 2100 || month < 1 || month > 12 {
		return fmt.Errorf("invalid year or month parameter")
	}
	return nil
}
