package footprint

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// ErrHouseholdValidation indicates a household snapshot that violates the
// input contract: an unknown categorical value, a people count below one, or
// a malformed practice set. It can be compared with errors.Is().
var ErrHouseholdValidation = constError("household validation failed")
