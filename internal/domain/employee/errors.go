package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmailExists           = errors.New("email already registered")
	ErrInvalidRole           = errors.New("role must be telecaller, digitalmarketer or bde")
	ErrInvalidTargetMonth    = errors.New("target month is not a valid month name")
	ErrEmployeeAlreadyActive = errors.New("employee is already active")
	ErrEmployeeInactive      = errors.New("employee is inactive")
)
