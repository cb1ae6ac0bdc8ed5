package swap

import (
	"github.com/okorolev/skillswap/internal/infrastructure/apperr"
)

const (
	CodeValidationFailed apperr.Code = "swap/validation_failed"
	CodeNotFound         apperr.Code = "swap/not_found"
	CodeNotAuthorized    apperr.Code = "swap/not_authorized"
	CodeNotPending       apperr.Code = "swap/not_pending"
)

const (
	FieldSwapID    apperr.Field = "swap_id"
	FieldUserID    apperr.Field = "user_id"
	FieldToUserID  apperr.Field = "toUserId"
	FieldFromSkill apperr.Field = "fromSkill"
	FieldToSkill   apperr.Field = "toSkill"
	FieldStatus    apperr.Field = "status"
)

// Validation errors

func ErrToUserRequired() error {
	return apperr.New("toUserId is required", CodeValidationFailed, apperr.ClassBadRequest, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldToUserID, Rule: apperr.RuleRequired,
		})
}

func ErrFromSkillRequired() error {
	return apperr.New("fromSkill is required", CodeValidationFailed, apperr.ClassBadRequest, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldFromSkill, Rule: apperr.RuleRequired,
		})
}

func ErrToSkillRequired() error {
	return apperr.New("toSkill is required", CodeValidationFailed, apperr.ClassBadRequest, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldToSkill, Rule: apperr.RuleRequired,
		})
}

func ErrInvalidStatus() error {
	return apperr.New("Status must be accepted or rejected", CodeValidationFailed, apperr.ClassBadRequest, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldStatus, Rule: apperr.RuleInvalidFormat,
		})
}

// Business logic errors

func ErrSwapNotFound() error {
	return apperr.New("Swap not found", CodeNotFound, apperr.ClassNotFound, apperr.LogLevelWarn)
}

func ErrNotAuthorized() error {
	return apperr.New("Not authorized", CodeNotAuthorized, apperr.ClassForbidden, apperr.LogLevelWarn)
}

// ErrSwapNotPending reports an attempt to resolve a swap that has
// already been accepted or rejected.
func ErrSwapNotPending() error {
	return apperr.New("Swap request already resolved", CodeNotPending, apperr.ClassConflict, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldStatus, Rule: apperr.RuleInvalidState,
		})
}
