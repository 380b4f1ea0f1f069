package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrInvalidRRN       = errors.New("invalid resident registration number")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmptyBeforeAddr  = errors.New("previous address is required")
	ErrEmptyAfterAddr   = errors.New("new address is required")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
