package domain

import "errors"

// Domain errors.
var (
	ErrEventNotFound = errors.New("event not found")
	ErrNotPermitted  = errors.New("not permitted")

	ErrNameRequired        = errors.New("event name is required")
	ErrNameTooLong         = errors.New("event name is too long")
	ErrDescriptionRequired = errors.New("event description is required")
	ErrDescriptionTooLong  = errors.New("event description is too long")
	ErrInvalidDateTime     = errors.New("invalid date/time")
	ErrInvalidImageType    = errors.New("invalid image type")
	ErrNothingToEdit       = errors.New("no fields to edit")
)

// IsValidation reports whether err is a malformed-input error, i.e. one the
// requester can fix by changing their input.
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrNameRequired,
		ErrNameTooLong,
		ErrDescriptionRequired,
		ErrDescriptionTooLong,
		ErrInvalidDateTime,
		ErrInvalidImageType,
		ErrNothingToEdit,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
