package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/NabeelAltarteer/GetEmpStatusBE/constants"
	"github.com/NabeelAltarteer/GetEmpStatusBE/errors"
	"github.com/NabeelAltarteer/GetEmpStatusBE/models"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
)

// nationalKeyRegex matches 3 letters followed by 4 digits, case-insensitive
var nationalKeyRegex = regexp.MustCompile(`^[a-zA-Z]{3}[0-9]{4}$`)

// IsValidNationalKey checks the LLLNNNN key format after trimming
func IsValidNationalKey(key string) bool {
	return nationalKeyRegex.MatchString(strings.TrimSpace(key))
}

// ValidateNationalKey validates the employee lookup key
func ValidateNationalKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "National key must not be empty", errors.ErrMissingRequired)
	}
	if !IsValidNationalKey(key) {
		return errors.NewAppError(errors.ErrCodeInvalidKey, "National key must be 3 letters followed by 4 digits", errors.ErrInvalidFormat)
	}
	return nil
}

// HasMinimumHistory checks whether enough salary records exist to compute a status
func HasMinimumHistory(count int) bool {
	return count >= constants.MinSalaryHistory
}

// IsActive checks the employee active flag
func IsActive(active bool) bool {
	return active
}

// ValidateSalaryShape validates every salary record, stopping at the first violation
func ValidateSalaryShape(records []models.Salary) error {
	for i, record := range records {
		if record.Amount < 0 {
			return errors.NewAppError(errors.ErrCodeValidation,
				fmt.Sprintf("Salary record %d has a negative amount: %.2f", i, record.Amount), errors.ErrInvalidInput)
		}
		if record.Month < constants.MinSalaryMonth || record.Month > constants.MaxSalaryMonth {
			return errors.NewAppError(errors.ErrCodeValidation,
				fmt.Sprintf("Salary record %d has an invalid month: %d", i, record.Month), errors.ErrInvalidInput)
		}
		if record.Year < constants.MinSalaryYear {
			return errors.NewAppError(errors.ErrCodeValidation,
				fmt.Sprintf("Salary record %d has an invalid year: %d", i, record.Year), errors.ErrInvalidInput)
		}
	}
	return nil
}

// RegisterBindings registers the custom nationalkey tag on gin's binding validator
func RegisterBindings() {
	if v, ok := binding.Validator.Engine().(*playground.Validate); ok {
		v.RegisterValidation("nationalkey", func(fl playground.FieldLevel) bool {
			return IsValidNationalKey(fl.Field().String())
		})
	}
}
