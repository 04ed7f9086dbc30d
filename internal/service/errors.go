package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure. The wrapped
	// validators error names the missing field.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
