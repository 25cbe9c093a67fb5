package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPersonID = errors.New("invalid person ID")
	ErrEmptyName       = errors.New("name is required")
	ErrNameTooLong     = errors.New("name is too long")
	ErrNumberTooLong   = errors.New("number is too long")
)
