package survey

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for survey validation.
// These can be compared with errors.Is().
var (
	// ErrSurveyValidation indicates a survey answer outside its closed set.
	ErrSurveyValidation = constError("survey validation failed")

	// ErrBonusRange indicates a bonus value outside [0, MaxBonus].
	// Score never produces one; this guards values arriving from files or flags.
	ErrBonusRange = constError("bonus out of range")
)
